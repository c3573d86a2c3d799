package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driveledger/internal/core/apperror"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	jwtSvc := NewJWTService(DefaultJWTConfig("test-secret"))
	svc, err := NewService("dealer", "open-sesame", jwtSvc)
	require.NoError(t, err)
	return svc
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	token, err := svc.Login(ctx, Credentials{Username: "dealer", Password: "open-sesame"})
	require.NoError(t, err)

	assert.NotEmpty(t, token.AccessToken)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.True(t, token.ExpiresAt.After(time.Now()))
}

func TestLogin_Rejected(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	tests := []struct {
		name  string
		creds Credentials
	}{
		{"wrong password", Credentials{Username: "dealer", Password: "guess"}},
		{"wrong username", Credentials{Username: "admin", Password: "open-sesame"}},
		{"both empty", Credentials{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, tt.creds)
			require.Error(t, err)
			appErr, ok := apperror.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, apperror.CodeUnauthorized, appErr.Code)
		})
	}
}

func TestJWT_RoundTrip(t *testing.T) {
	jwtSvc := NewJWTService(DefaultJWTConfig("test-secret"))

	tokenString, expiresAt, err := jwtSvc.GenerateAccessToken("dealer")
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()))

	principal, err := jwtSvc.ValidateToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "dealer", principal.Username)
}

func TestJWT_ValidateRejects(t *testing.T) {
	jwtSvc := NewJWTService(DefaultJWTConfig("test-secret"))

	t.Run("garbage", func(t *testing.T) {
		_, err := jwtSvc.ValidateToken("not.a.token")
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTService(DefaultJWTConfig("other-secret"))
		tokenString, _, err := other.GenerateAccessToken("dealer")
		require.NoError(t, err)

		_, err = jwtSvc.ValidateToken(tokenString)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		short := NewJWTService(JWTConfig{
			Secret:         "test-secret",
			Issuer:         "driveledger",
			AccessTokenTTL: -time.Minute,
		})
		tokenString, _, err := short.GenerateAccessToken("dealer")
		require.NoError(t, err)

		_, err = jwtSvc.ValidateToken(tokenString)
		assert.Error(t, err)
	})
}
