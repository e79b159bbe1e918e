package middleware

import (
	"context"
	"strings"

	"blog/models"

	"github.com/gin-gonic/gin"
)

const UserContextKey = "user"

type TokenAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// AuthRequired accepts "Authorization: Bearer <token>", with the scheme
// matched case-insensitively, and stores the token owner under UserContextKey.
func AuthRequired(auth TokenAuthenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		scheme, credentials, found := strings.Cut(strings.TrimSpace(c.GetHeader("Authorization")), " ")
		if found && strings.EqualFold(scheme, "Bearer") {
			token = strings.TrimSpace(credentials)
		}

		if token == "" {
			_ = c.Error(ErrMissingToken)
			c.Abort()
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		c.Set(UserContextKey, user)
		c.Next()
	}
}

func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(UserContextKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
