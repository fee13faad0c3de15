package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, salt, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.Len(t, hash, keyLength)
	assert.Len(t, salt, saltLength)

	assert.True(t, VerifyPassword("correct horse battery staple", hash, salt))
	assert.False(t, VerifyPassword("wrong password", hash, salt))
}

func TestHashPassword_FreshSaltPerCall(t *testing.T) {
	hash1, salt1, err := HashPassword("same password")
	require.NoError(t, err)
	hash2, salt2, err := HashPassword("same password")
	require.NoError(t, err)

	assert.NotEqual(t, salt1, salt2)
	assert.NotEqual(t, hash1, hash2)
}

func TestHashPassword_EmptyRejected(t *testing.T) {
	_, _, err := HashPassword("")
	require.Error(t, err)
}

func TestVerifyPassword_MissingStoredCredentials(t *testing.T) {
	assert.False(t, VerifyPassword("anything", nil, nil))
	assert.False(t, VerifyPassword("anything", []byte("hash"), nil))
}
