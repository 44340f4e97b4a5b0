package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	assert.Equal(t, "imobiliaria-sao-jose", Make("Imobiliária São José"))
	assert.Equal(t, "central-imoveis", Make("  Central   Imóveis  "))
	assert.Equal(t, "top10-corretores", Make("Top10 Corretores!"))
	assert.Equal(t, "", Make("!!!"))
}
