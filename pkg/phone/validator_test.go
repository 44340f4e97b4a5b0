package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBR_Mobile(t *testing.T) {
	result, err := ValidateBR("11", "987654321")
	require.NoError(t, err)

	assert.True(t, result.IsValid)
	assert.Equal(t, "+5511987654321", result.E164Format)
	assert.Equal(t, "11", result.AreaCode)
	assert.True(t, result.IsMobile)
}

func TestValidateBR_Empty(t *testing.T) {
	_, err := ValidateBR("11", "")
	assert.Error(t, err)
}

func TestIsValidBR(t *testing.T) {
	assert.True(t, IsValidBR("21", "987654321"))
	assert.False(t, IsValidBR("99", "123"))
}
