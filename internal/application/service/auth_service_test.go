package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wekesa/dukapos-api/pkg/apperror"
	"github.com/wekesa/dukapos-api/pkg/utils"
)

func newAuthTestService() (*AuthService, *memStore) {
	store := newMemStore()
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(&fakeUserRepo{s: store}, jwtManager), store
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthTestService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, &RegisterInput{
		Name:     "Wekesa Barasa",
		Email:    "wekesa@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.AccessToken)
	assert.NotEmpty(t, registered.RefreshToken)
	assert.Equal(t, "cashier", registered.User.Role)
	assert.NotEqual(t, "correct-horse", registered.User.Password)

	loggedIn, err := svc.Login(ctx, "wekesa@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)

	_, err = svc.Login(ctx, "wekesa@example.com", "wrong-password")
	require.Error(t, err)
	assert.Equal(t, 401, apperror.GetAppError(err).Code)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newAuthTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{Name: "A", Email: "dup@example.com", Password: "password1"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &RegisterInput{Name: "B", Email: "dup@example.com", Password: "password2"})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestRefreshTokenIssuesNewPair(t *testing.T) {
	svc, _ := newAuthTestService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, &RegisterInput{Name: "A", Email: "refresh@example.com", Password: "password1"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(ctx, registered.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = svc.RefreshToken(ctx, "not-a-token")
	require.Error(t, err)
	assert.Equal(t, 401, apperror.GetAppError(err).Code)
}
