package repositories

import (
	"context"
	"errors"
	"fmt"

	"blog/models"

	"gorm.io/gorm"
)

// PostRepository persists posts. Lookups of a missing id return ErrNotFound.
type PostRepository interface {
	List(ctx context.Context) ([]models.Post, error)
	FindByID(ctx context.Context, id uint) (*models.Post, error)
	Create(ctx context.Context, post *models.Post) error
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, post *models.Post) error
}

type GormPostRepository struct {
	db *gorm.DB
}

func NewGormPostRepository(db *gorm.DB) *GormPostRepository {
	if db == nil {
		panic("database connection cannot be nil for GormPostRepository")
	}
	return &GormPostRepository{db: db}
}

func (r *GormPostRepository) List(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: list posts: %w", err)
	}
	return posts, nil
}

func (r *GormPostRepository) FindByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("gorm: find post by id %d: %w", id, err)
	}
	return &post, nil
}

func (r *GormPostRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return fmt.Errorf("gorm: create post: %w", err)
	}
	return nil
}

// Update writes title and content of an existing post and refreshes
// updated_at. It never inserts: a row deleted in the meantime yields
// ErrNotFound.
func (r *GormPostRepository) Update(ctx context.Context, post *models.Post) error {
	result := r.db.WithContext(ctx).Model(post).Select("title", "content", "updated_at").Updates(post)
	if result.Error != nil {
		return fmt.Errorf("gorm: update post %d: %w", post.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormPostRepository) Delete(ctx context.Context, post *models.Post) error {
	result := r.db.WithContext(ctx).Delete(post)
	if result.Error != nil {
		return fmt.Errorf("gorm: delete post %d: %w", post.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
