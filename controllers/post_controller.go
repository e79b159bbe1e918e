package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"blog/models"
	"blog/services"
	"blog/validation"

	"github.com/gin-gonic/gin"
)

type PostService interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, id uint) (*models.Post, error)
	CreatePost(ctx context.Context, req *models.PostCreate) (*models.Post, error)
	UpdatePost(ctx context.Context, id uint, req *models.PostUpdate) (*models.Post, error)
	DeletePost(ctx context.Context, id uint) error
}

// PostController handlers never write error bodies themselves; failures are
// attached with c.Error and rendered by middleware.ErrorHandler.
type PostController struct {
	postService PostService
}

func NewPostController(postService PostService) *PostController {
	return &PostController{postService: postService}
}

// GetPosts godoc
// @Summary List posts
// @Description Get all posts, newest first.
// @Tags posts
// @Produce json
// @Success 200 {array} models.PostOut
// @Router /v1/posts [get]
func (pc *PostController) GetPosts(c *gin.Context) {
	posts, err := pc.postService.ListPosts(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, models.NewPostOutList(posts))
}

// GetPost godoc
// @Summary Get a post
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} models.PostOut
// @Failure 404 {object} ErrorResponse
// @Router /v1/posts/{id} [get]
func (pc *PostController) GetPost(c *gin.Context) {
	id, err := postID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	post, err := pc.postService.GetPost(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, models.NewPostOut(post))
}

// CreatePost godoc
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Param post body models.PostCreate true "New post"
// @Success 201 {object} models.PostOut
// @Failure 422 {object} ErrorResponse
// @Router /v1/posts [post]
func (pc *PostController) CreatePost(c *gin.Context) {
	var req models.PostCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(validation.Translate(err))
		return
	}

	post, err := pc.postService.CreatePost(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, models.NewPostOut(post))
}

// UpdatePost godoc
// @Summary Update a post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param post body models.PostUpdate true "Fields to change"
// @Success 200 {object} models.PostOut
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /v1/posts/{id} [put]
func (pc *PostController) UpdatePost(c *gin.Context) {
	id, idErr := postID(c)
	var verr *validation.Error
	if errors.As(idErr, &verr) {
		_ = c.Error(idErr)
		return
	}

	var req models.PostUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(validation.Translate(err))
		return
	}
	if idErr != nil {
		_ = c.Error(idErr)
		return
	}

	post, err := pc.postService.UpdatePost(c.Request.Context(), id, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, models.NewPostOut(post))
}

// DeletePost godoc
// @Summary Delete a post
// @Tags posts
// @Param id path int true "Post ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /v1/posts/{id} [delete]
func (pc *PostController) DeletePost(c *gin.Context) {
	id, err := postID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := pc.postService.DeletePost(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// postID rejects a path id that is not an integer. Any integer is accepted,
// but one that cannot name a stored post is reported as not found.
func postID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, services.ErrPostNotFound
		}
		return 0, validation.NewError("post_id", "Input should be a valid integer, unable to parse string as an integer")
	}
	if id <= 0 {
		return 0, services.ErrPostNotFound
	}
	return uint(id), nil
}
