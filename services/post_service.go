package services

import (
	"context"
	"errors"

	"blog/models"
	"blog/repositories"
)

type PostService struct {
	repo repositories.PostRepository
}

func NewPostService(repo repositories.PostRepository) *PostService {
	return &PostService{repo: repo}
}

func (s *PostService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return s.repo.List(ctx)
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *PostService) CreatePost(ctx context.Context, req *models.PostCreate) (*models.Post, error) {
	post := &models.Post{
		Title:   *req.Title,
		Content: *req.Content,
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// UpdatePost overwrites only the fields present in req. An empty string counts
// as absent and leaves the stored value unchanged.
func (s *PostService) UpdatePost(ctx context.Context, id uint, req *models.PostUpdate) (*models.Post, error) {
	post, err := s.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil && *req.Title != "" {
		post.Title = *req.Title
	}
	if req.Content != nil && *req.Content != "" {
		post.Content = *req.Content
	}

	if err := s.repo.Update(ctx, post); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	return post, nil
}

func (s *PostService) DeletePost(ctx context.Context, id uint) error {
	post, err := s.GetPost(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, post); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	return nil
}
