package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_FreshSaltPerCall(t *testing.T) {
	digest1, err := HashPassword("super_password123")
	require.NoError(t, err)
	digest2, err := HashPassword("super_password123")
	require.NoError(t, err)

	// Salts are random, so identical passwords hash to different digests
	assert.NotEqual(t, digest1, digest2)
	assert.NotEqual(t, "super_password123", digest1)

	// Both digests still verify the original password
	assert.True(t, CheckPasswordHash("super_password123", digest1))
	assert.True(t, CheckPasswordHash("super_password123", digest2))
}

func TestCheckPasswordHash_WrongPassword(t *testing.T) {
	digest, err := HashPassword("correct-horse")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("correct-horse", digest))
	assert.False(t, CheckPasswordHash("battery-staple", digest))
	assert.False(t, CheckPasswordHash("", digest))
}

func TestCheckPasswordHash_GarbageDigest(t *testing.T) {
	assert.False(t, CheckPasswordHash("anything", "not-a-bcrypt-digest"))
	assert.False(t, CheckPasswordHash("anything", ""))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("123456"))
	assert.Error(t, ValidatePassword("12345"))
	assert.Error(t, ValidatePassword(""))
}
