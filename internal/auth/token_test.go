package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	Init("test-secret", 86400)

	token, err := GenerateToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)

	// Default TTL is 24 hours
	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, 24*time.Hour, ttl)
}

func TestGenerateTokenWithTTL(t *testing.T) {
	Init("test-secret", 86400)

	token, err := GenerateTokenWithTTL(7, time.Minute)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, time.Minute, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestParseToken_Expired(t *testing.T) {
	Init("test-secret", 86400)

	token, err := GenerateTokenWithTTL(1, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseToken_WrongKey(t *testing.T) {
	Init("test-secret", 86400)
	token, err := GenerateToken(1)
	require.NoError(t, err)

	Init("another-secret", 86400)
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseToken_Garbage(t *testing.T) {
	Init("test-secret", 86400)

	_, err := ParseToken("definitely.not.a.jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = ParseToken("")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
