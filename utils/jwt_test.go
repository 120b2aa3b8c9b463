package utils

import (
	"testing"
	"time"

	"tourmate/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("u-123", "asha@example.com", "user", time.Hour)
	require.NoError(t, err)

	claims, err := ExtractClaimsFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u-123", claims.ID)
	assert.Equal(t, "asha@example.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
}

func TestExpiredTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("u-123", "asha@example.com", "user", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractClaimsFromToken(token)
	assert.Error(t, err)
}

func TestTamperedTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("u-123", "asha@example.com", "user", time.Hour)
	require.NoError(t, err)

	config.AppConfig.JWTSecret = "different-secret"
	_, err = ExtractClaimsFromToken(token)
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	_, err := ExtractClaimsFromToken("not.a.token")
	assert.Error(t, err)
}
