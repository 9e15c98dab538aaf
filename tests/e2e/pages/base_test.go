package pages

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTestProduct(t *testing.T) {
	var b base

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		p := b.GenerateTestProduct()

		require.True(t, strings.HasPrefix(p.SKU, "TEST-"), "SKU %q should carry the TEST prefix", p.SKU)
		require.False(t, seen[p.SKU], "SKU %q generated twice", p.SKU)
		seen[p.SKU] = true

		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Description)
		assert.GreaterOrEqual(t, p.Price, 100.0)
		assert.Less(t, p.Price, 1000.0)
		assert.GreaterOrEqual(t, p.Stock, 1)
		assert.LessOrEqual(t, p.Stock, 100)
		assert.Contains(t, categories, p.Category)
		assert.Equal(t, 10, p.LowStockThreshold)
	}
}

func TestGeneratedSKUAndNameShareDiscriminator(t *testing.T) {
	var b base
	p := b.GenerateTestProduct()

	tag := strings.TrimPrefix(p.SKU, "TEST-")
	assert.True(t, strings.HasSuffix(p.Name, tag), "name %q should end with the SKU tag %q", p.Name, tag)
}
