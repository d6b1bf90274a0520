package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.Contains(t, hash, "$argon2id$")
	assert.False(t, NeedsRehash(hash))

	ok, err := VerifyPassword("s3cret-pass", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("wrong", hash)
	require.NoError(t, err)
	assert.False(t, ok)

	other, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other, "salt must differ between hashes")
}

func TestVerifyPasswordBcrypt(t *testing.T) {
	legacy, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	assert.True(t, NeedsRehash(string(legacy)))

	ok, err := VerifyPassword("admin123", string(legacy))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("admin124", string(legacy))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPasswordInvalidHash(t *testing.T) {
	_, err := VerifyPassword("x", "plain-text")
	assert.ErrorIs(t, err, ErrInvalidHash)

	_, err = VerifyPassword("x", "$argon2id$v=19$broken")
	assert.ErrorIs(t, err, ErrInvalidHash)
}

func TestGenerateRandomToken(t *testing.T) {
	a, err := GenerateRandomToken(32)
	require.NoError(t, err)
	b, err := GenerateRandomToken(32)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.Len(t, a, 43)
	assert.Len(t, HashToken(a), 64)
	assert.Equal(t, HashToken(a), HashToken(a))
}
