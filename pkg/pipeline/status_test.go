package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, s := range Columns() {
		parsed, err := ParseStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := ParseStatus("inexistente")
	assert.Error(t, err)

	_, err = ParseStatus("")
	assert.Error(t, err)
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, StatusVendaFechada.Terminal())
	assert.True(t, StatusVendaPerdida.Terminal())

	assert.False(t, StatusNovoLead.Terminal())
	assert.False(t, StatusProposta.Terminal())
}

func TestColumnsOrder(t *testing.T) {
	cols := Columns()
	require.Len(t, cols, 7)
	assert.Equal(t, StatusNovoLead, cols[0])
	assert.Equal(t, StatusVendaPerdida, cols[6])
}
