package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"blog/models"
	"blog/repositories"
	"blog/repositories/mocks"
	"blog/services"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func activeUser(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.User{ID: 1, Username: "testuser", Password: string(hash), IsActive: true}
}

func newAuthService(users *mocks.UserRepository, tokens *mocks.TokenRepository) *services.AuthService {
	log, _ := test.NewNullLogger()
	return services.NewAuthService(users, tokens, 24*time.Hour, log)
}

func TestAuthService_GenerateToken_Success(t *testing.T) {
	users := new(mocks.UserRepository)
	tokens := new(mocks.TokenRepository)
	svc := newAuthService(users, tokens)
	ctx := context.Background()

	users.On("FindByUsername", ctx, "testuser").Return(activeUser(t, "password123"), nil).Once()

	var stored *models.UserToken
	tokens.On("Create", ctx, mock.AnythingOfType("*models.UserToken")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*models.UserToken) }).
		Return(nil).Once()

	token, err := svc.GenerateToken(ctx, "testuser", "password123")

	require.NoError(t, err)
	assert.Len(t, token, 43)
	require.NotNil(t, stored)
	assert.Equal(t, token, stored.Token)
	assert.Equal(t, uint(1), stored.UserID)
	assert.True(t, stored.IsActive)
	assert.Equal(t, stored.CreatedAt.Add(24*time.Hour), stored.ExpiresAt)
	users.AssertExpectations(t)
	tokens.AssertExpectations(t)
}

func TestAuthService_GenerateToken_UniquePerCall(t *testing.T) {
	users := new(mocks.UserRepository)
	tokens := new(mocks.TokenRepository)
	svc := newAuthService(users, tokens)
	ctx := context.Background()

	users.On("FindByUsername", ctx, "testuser").Return(activeUser(t, "pw"), nil)
	tokens.On("Create", ctx, mock.Anything).Return(nil)

	first, err := svc.GenerateToken(ctx, "testuser", "pw")
	require.NoError(t, err)
	second, err := svc.GenerateToken(ctx, "testuser", "pw")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestAuthService_GenerateToken_InvalidCredentials(t *testing.T) {
	inactive := activeUser(t, "pw")
	inactive.IsActive = false

	tests := []struct {
		name     string
		user     *models.User
		findErr  error
		password string
	}{
		{"unknown user", nil, repositories.ErrNotFound, "pw"},
		{"wrong password", activeUser(t, "pw"), nil, "nope"},
		{"inactive user", inactive, nil, "pw"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(mocks.UserRepository)
			tokens := new(mocks.TokenRepository)
			svc := newAuthService(users, tokens)
			ctx := context.Background()

			users.On("FindByUsername", ctx, "testuser").Return(tt.user, tt.findErr).Once()

			token, err := svc.GenerateToken(ctx, "testuser", tt.password)

			assert.ErrorIs(t, err, services.ErrInvalidCredentials)
			assert.Empty(t, token)
			tokens.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestAuthService_GenerateToken_StoreFailure(t *testing.T) {
	users := new(mocks.UserRepository)
	tokens := new(mocks.TokenRepository)
	svc := newAuthService(users, tokens)
	ctx := context.Background()
	dbErr := errors.New("disk full")

	users.On("FindByUsername", ctx, "testuser").Return(activeUser(t, "pw"), nil).Once()
	tokens.On("Create", ctx, mock.Anything).Return(dbErr).Once()

	_, err := svc.GenerateToken(ctx, "testuser", "pw")

	assert.ErrorIs(t, err, dbErr)
}

func TestAuthService_Authenticate(t *testing.T) {
	owner := models.User{ID: 3, Username: "alice", IsActive: true}
	inactiveOwner := models.User{ID: 4, Username: "bob", IsActive: false}

	tests := []struct {
		name    string
		token   *models.UserToken
		findErr error
		wantErr error
	}{
		{"valid", &models.UserToken{Token: "t", IsActive: true, User: owner}, nil, nil},
		{"unknown", nil, repositories.ErrNotFound, services.ErrInvalidToken},
		{"inactive token", &models.UserToken{Token: "t", IsActive: false, User: owner}, nil, services.ErrInvalidToken},
		{"inactive user", &models.UserToken{Token: "t", IsActive: true, User: inactiveOwner}, nil, services.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(mocks.UserRepository)
			tokens := new(mocks.TokenRepository)
			svc := newAuthService(users, tokens)
			ctx := context.Background()

			tokens.On("FindByToken", ctx, "t").Return(tt.token, tt.findErr).Once()

			user, err := svc.Authenticate(ctx, "t")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint(3), user.ID)
		})
	}
}
