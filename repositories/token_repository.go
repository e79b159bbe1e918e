package repositories

import (
	"context"
	"errors"
	"fmt"

	"blog/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TokenRepository interface {
	Create(ctx context.Context, token *models.UserToken) error
	// FindByToken loads the token row together with its owner.
	FindByToken(ctx context.Context, token string) (*models.UserToken, error)
}

type GormTokenRepository struct {
	db *gorm.DB
}

func NewGormTokenRepository(db *gorm.DB) *GormTokenRepository {
	if db == nil {
		panic("database connection cannot be nil for GormTokenRepository")
	}
	return &GormTokenRepository{db: db}
}

func (r *GormTokenRepository) Create(ctx context.Context, token *models.UserToken) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(token).Error
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateEntry
		}
		return fmt.Errorf("gorm: create token for user %d: %w", token.UserID, err)
	}
	return nil
}

func (r *GormTokenRepository) FindByToken(ctx context.Context, token string) (*models.UserToken, error) {
	var userToken models.UserToken
	err := r.db.WithContext(ctx).Preload("User").Where("token = ?", token).First(&userToken).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("gorm: find token: %w", err)
	}
	return &userToken, nil
}
