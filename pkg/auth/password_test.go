package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("demo123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "demo123", hash)

	assert.True(t, CheckPassword("demo123", hash))
	assert.False(t, CheckPassword("wrong", hash))
	assert.False(t, CheckPassword("demo123", "not-a-hash"))
}

func TestPasswordHashesDiffer(t *testing.T) {
	first, err := HashPassword("demo123")
	require.NoError(t, err)
	second, err := HashPassword("demo123")
	require.NoError(t, err)

	// bcrypt salts every hash
	assert.NotEqual(t, first, second)
}
