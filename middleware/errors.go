package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"blog/services"
	"blog/validation"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const unexpectedErrorMessage = "An unexpected error occurred. Please try again later."

var (
	ErrMissingToken = errors.New("no bearer token provided")
	ErrNotFound     = errors.New("route not found")
)

// declared maps domain failures to the status and client message they
// produce. Anything not listed becomes a 500.
var declared = []struct {
	err       error
	status    int
	errorType string
	message   string
}{
	{services.ErrPostNotFound, http.StatusNotFound, "NotFoundError", "No Posts matches the given query."},
	{ErrNotFound, http.StatusNotFound, "NotFoundError", "Not Found"},
	{services.ErrInvalidCredentials, http.StatusUnauthorized, "HttpError", "Invalid credentials"},
	{services.ErrInvalidToken, http.StatusUnauthorized, "HttpError", "Unauthorized"},
	{ErrMissingToken, http.StatusUnauthorized, "HttpError", "Unauthorized"},
}

type errorResponse struct {
	status    int
	errorType string
	message   string
}

func classify(err error) errorResponse {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return errorResponse{http.StatusUnprocessableEntity, "ValidationError", verr.Error()}
	}
	for _, d := range declared {
		if errors.Is(err, d.err) {
			return errorResponse{d.status, d.errorType, d.message}
		}
	}
	return errorResponse{http.StatusInternalServerError, fmt.Sprintf("%T", err), unexpectedErrorMessage}
}

// ErrorHandler writes the JSON error body for the last error a handler
// attached with c.Error. Every handled failure is logged.
func ErrorHandler(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		resp := classify(err)

		log.WithFields(logrus.Fields{
			"path":        c.Request.URL.Path,
			"method":      c.Request.Method,
			"error_type":  resp.errorType,
			"message":     err.Error(),
			"status_code": resp.status,
		}).Error("Request failed")

		if c.Writer.Written() {
			return
		}
		c.AbortWithStatusJSON(resp.status, gin.H{"error": resp.message})
	}
}

// Recovery turns a panic into the generic 500 response.
func Recovery(log logrus.FieldLogger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.WithFields(logrus.Fields{
			"path":        c.Request.URL.Path,
			"method":      c.Request.Method,
			"error_type":  "panic",
			"message":     fmt.Sprint(recovered),
			"status_code": http.StatusInternalServerError,
		}).Error("Request panicked")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": unexpectedErrorMessage})
	})
}

// NoRoute reports unknown paths through ErrorHandler.
func NoRoute(c *gin.Context) {
	_ = c.Error(ErrNotFound)
}
