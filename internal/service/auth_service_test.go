package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-dashboard-api/internal/dto"
	appErrors "github.com/noah-isme/school-dashboard-api/pkg/errors"
)

const testSecret = "test_secret"

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	store := seededStore(t)
	return NewAuthService(store.Users, testSecret, time.Hour)
}

func TestAuthLoginIssuesToken(t *testing.T) {
	svc := newAuthService(t)
	issued := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	result, err := svc.Login(context.Background(), dto.LoginRequest{Username: "sami", Password: "12345"})
	require.NoError(t, err)
	assert.Equal(t, "sami", result.Username)
	assert.Equal(t, issued.Add(time.Hour), result.ExpiresAt)

	token, err := jwt.Parse(result.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	}, jwt.WithTimeFunc(func() time.Time { return issued }))
	require.NoError(t, err)
	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "sami", claims["sub"])
}

func TestAuthLoginWrongPassword(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "sami", Password: "wrong"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErr.Code)
	assert.Equal(t, 401, appErr.Status)
}

func TestAuthLoginUnknownUser(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "ghost", Password: "12345"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}
