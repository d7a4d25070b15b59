package services

import (
	"context"
	"net/http"
	"testing"

	"gigbook_backend/internal/auth"
	"gigbook_backend/internal/models"
	"gigbook_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) AuthService {
	t.Helper()
	auth.Init("test-secret", 60)
	env := newTestEnv(t)
	return NewAuthService(env.userRepo)
}

func registerRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Name:     "Miles",
		Email:    "miles@example.com",
		Password: "trumpet1959",
		UserType: "artist",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, registered.AccessToken)
	assert.Equal(t, "miles@example.com", registered.User.Email)
	assert.Equal(t, "artist", registered.User.UserType)
	assert.NotZero(t, registered.User.ID)

	claims, err := auth.ParseToken(registered.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, claims.UserID)
	assert.Equal(t, models.UserRoleArtist, claims.Role)

	logged, err := svc.Login(ctx, &dto.LoginRequest{
		Email:    "miles@example.com",
		Password: "trumpet1959",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, logged.User.ID)
	assert.NotEmpty(t, logged.AccessToken)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerRequest())
	assertAppError(t, err, http.StatusBadRequest, "Validation Error")
}

func TestRegister_WeakPassword(t *testing.T) {
	svc := newAuthService(t)

	req := registerRequest()
	req.Password = "short"
	_, err := svc.Register(context.Background(), req)
	assertAppError(t, err, http.StatusBadRequest, "Validation Error")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, err = svc.Login(ctx, &dto.LoginRequest{
		Email:    "miles@example.com",
		Password: "wrong-password",
	})
	assertAppError(t, err, http.StatusUnauthorized, "Invalid email or password")

	// несуществующий email дает тот же ответ
	_, err = svc.Login(ctx, &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "trumpet1959",
	})
	assertAppError(t, err, http.StatusUnauthorized, "Invalid email or password")
}
