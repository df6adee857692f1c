package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, VerifyPassword(hash, "s3cret"))
	assert.False(t, VerifyPassword(hash, "wrong"))
	assert.False(t, VerifyPassword("not-a-hash", "s3cret"))
}

func TestNewAccessTokenClaims(t *testing.T) {
	tok, err := NewAccessToken("secret", "user-1", true, 15)
	require.NoError(t, err)
	assert.NotEmpty(t, tok.Token)
	assert.False(t, tok.Exp.IsZero())

	// Tokens signed with different secrets must differ.
	other, err := NewAccessToken("another", "user-1", true, 15)
	require.NoError(t, err)
	assert.NotEqual(t, tok.Token, other.Token)
}
