package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"blog/models"
	"blog/services"
	"blog/validation"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(log logrus.FieldLogger, handler gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(Recovery(log), ErrorHandler(log))
	r.NoRoute(NoRoute)
	r.GET("/v1/thing", handler)
	return r
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func TestErrorHandler_Translation(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
		wantType   string
	}{
		{"validation", validation.NewError("title", "Field required"), http.StatusUnprocessableEntity, "Error in title: Field required", "ValidationError"},
		{"not found", services.ErrPostNotFound, http.StatusNotFound, "No Posts matches the given query.", "NotFoundError"},
		{"wrapped not found", fmt.Errorf("lookup: %w", services.ErrPostNotFound), http.StatusNotFound, "No Posts matches the given query.", "NotFoundError"},
		{"invalid credentials", services.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials", "HttpError"},
		{"unexpected", errors.New("pq: connection refused"), http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", "*errors.errorString"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, hook := test.NewNullLogger()
			r := newEngine(log, func(c *gin.Context) { _ = c.Error(tt.err) })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/thing", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantBody, decodeError(t, w))

			entry := hook.LastEntry()
			require.NotNil(t, entry)
			assert.Equal(t, logrus.ErrorLevel, entry.Level)
			assert.Equal(t, "/v1/thing", entry.Data["path"])
			assert.Equal(t, http.MethodGet, entry.Data["method"])
			assert.Equal(t, tt.wantType, entry.Data["error_type"])
			assert.Equal(t, tt.err.Error(), entry.Data["message"])
			assert.Equal(t, tt.wantStatus, entry.Data["status_code"])
		})
	}
}

func TestErrorHandler_NoErrorPassesThrough(t *testing.T) {
	log, hook := test.NewNullLogger()
	r := newEngine(log, func(c *gin.Context) { c.JSON(http.StatusOK, "OK") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/thing", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `"OK"`, w.Body.String())
	assert.Empty(t, hook.AllEntries())
}

func TestRecovery_PanicBecomesGeneric500(t *testing.T) {
	log, hook := test.NewNullLogger()
	r := newEngine(log, func(c *gin.Context) { panic("secret internal detail") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/thing", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, unexpectedErrorMessage, decodeError(t, w))
	assert.NotContains(t, w.Body.String(), "secret")
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "secret internal detail", hook.LastEntry().Data["message"])
}

func TestNoRoute(t *testing.T) {
	log, _ := test.NewNullLogger()
	r := newEngine(log, func(c *gin.Context) {})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not Found", decodeError(t, w))
}

type stubAuthenticator struct {
	tokens map[string]*models.User
}

func (s stubAuthenticator) Authenticate(_ context.Context, token string) (*models.User, error) {
	if user, ok := s.tokens[token]; ok {
		return user, nil
	}
	return nil, services.ErrInvalidToken
}

func TestAuthRequired(t *testing.T) {
	auth := stubAuthenticator{tokens: map[string]*models.User{"good": {ID: 9, Username: "alice"}}}

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid token", "Bearer good", http.StatusOK},
		{"lowercase scheme", "bearer good", http.StatusOK},
		{"uppercase scheme", "BEARER good", http.StatusOK},
		{"scheme only", "Bearer", http.StatusUnauthorized},
		{"no header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic good", http.StatusUnauthorized},
		{"unknown token", "Bearer bad", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, _ := test.NewNullLogger()
			r := gin.New()
			r.Use(ErrorHandler(log))
			r.GET("/v1/posts", AuthRequired(auth), func(c *gin.Context) {
				user, ok := CurrentUser(c)
				require.True(t, ok)
				c.JSON(http.StatusOK, gin.H{"user": user.Username})
			})

			req := httptest.NewRequest(http.MethodGet, "/v1/posts", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, "Unauthorized", decodeError(t, w))
			} else {
				assert.JSONEq(t, `{"user":"alice"}`, w.Body.String())
			}
		})
	}
}

func TestLogger(t *testing.T) {
	log, hook := test.NewNullLogger()
	r := gin.New()
	r.Use(Logger(log))
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, "OK") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "/health", entry.Data["path"])
	assert.Equal(t, http.StatusOK, entry.Data["status"])
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://allowed.test"}))
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, "OK") })

	preflight := httptest.NewRequest(http.MethodOptions, "/health", nil)
	preflight.Header.Set("Origin", "http://allowed.test")
	preflight.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, preflight)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://allowed.test", w.Header().Get("Access-Control-Allow-Origin"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://evil.test")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
