package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"blog/models"
	"blog/repositories"
	"blog/utils"

	"github.com/sirupsen/logrus"
)

// DefaultTokenTTL is how long an issued token is recorded as valid.
const DefaultTokenTTL = 24 * time.Hour

type AuthService struct {
	users  repositories.UserRepository
	tokens repositories.TokenRepository
	ttl    time.Duration
	log    logrus.FieldLogger
	now    func() time.Time
}

func NewAuthService(users repositories.UserRepository, tokens repositories.TokenRepository, ttl time.Duration, log logrus.FieldLogger) *AuthService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &AuthService{
		users:  users,
		tokens: tokens,
		ttl:    ttl,
		log:    log,
		now:    time.Now,
	}
}

// GenerateToken checks the credentials and issues a new bearer token.
// Any authentication failure is reported as ErrInvalidCredentials and leaves
// no token behind.
func (s *AuthService) GenerateToken(ctx context.Context, username, password string) (string, error) {
	logCtx := s.log.WithField("username", username)

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logCtx.Warn("Token request failed: user not found")
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !user.IsActive || !user.CheckPassword(password) {
		logCtx.Warn("Token request failed: invalid password or inactive user")
		return "", ErrInvalidCredentials
	}

	raw, err := utils.GenerateToken()
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	now := s.now()
	token := &models.UserToken{
		UserID:    user.ID,
		Token:     raw,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
		IsActive:  true,
	}
	if err := s.tokens.Create(ctx, token); err != nil {
		return "", err
	}

	logCtx.WithField("user_id", user.ID).Info("Token issued")
	return raw, nil
}

// Authenticate resolves a bearer token to its owner. Unknown tokens, inactive
// tokens and tokens of inactive users are rejected. Expiry is recorded but
// not checked.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	userToken, err := s.tokens.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	if !userToken.IsActive || !userToken.User.IsActive {
		return nil, ErrInvalidToken
	}

	return &userToken.User, nil
}
