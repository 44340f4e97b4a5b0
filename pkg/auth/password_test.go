package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("segredo123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "segredo123", hash)

	assert.True(t, CheckPassword("segredo123", hash))
	assert.False(t, CheckPassword("errado", hash))
}
