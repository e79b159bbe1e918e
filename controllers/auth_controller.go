package controllers

import (
	"context"
	"net/http"

	"blog/middleware"
	"blog/models"
	"blog/validation"

	"github.com/gin-gonic/gin"
)

type TokenService interface {
	GenerateToken(ctx context.Context, username, password string) (string, error)
}

// ErrorResponse documents the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

type AuthController struct {
	tokenService TokenService
}

func NewAuthController(tokenService TokenService) *AuthController {
	return &AuthController{tokenService: tokenService}
}

// Token godoc
// @Summary Get authentication token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.TokenRequest true "Username and password"
// @Success 200 {object} models.TokenResponse
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /v1/auth/token [post]
func (ac *AuthController) Token(c *gin.Context) {
	var req models.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(validation.Translate(err))
		return
	}

	token, err := ac.tokenService.GenerateToken(c.Request.Context(), *req.Username, *req.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{Token: token})
}

// Me godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} ErrorResponse
// @Router /v1/auth/me [get]
func (ac *AuthController) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		_ = c.Error(middleware.ErrMissingToken)
		return
	}

	c.JSON(http.StatusOK, user)
}
