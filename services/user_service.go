package services

import (
	"context"
	"errors"
	"strings"

	"blog/models"
	"blog/repositories"
)

type UserService struct {
	repo repositories.UserRepository
}

func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) CreateUser(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidUserInput
	}

	user := &models.User{
		Username: username,
		Password: password,
		IsActive: true,
	}

	if err := user.HashPassword(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEntry) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return user, nil
}
