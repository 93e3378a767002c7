package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductCode(t *testing.T) {
	t.Run("matches FUR code format", func(t *testing.T) {
		code := NewProductCode()
		assert.Regexp(t, `^FUR-[0-9A-Z]+-[0-9A-Z]{4}$`, code)
	})

	t.Run("codes generated back to back are unique", func(t *testing.T) {
		seen := make(map[string]struct{})
		for i := 0; i < 100; i++ {
			code := NewProductCode()
			_, dup := seen[code]
			require.False(t, dup, "duplicate code %s", code)
			seen[code] = struct{}{}
		}
	})
}

func TestNewProduct(t *testing.T) {
	product := NewProduct("  Диван Осло  ", "угловой диван", 59999, nil, "Sofas", nil, 0, 10, true)

	assert.Equal(t, "Диван Осло", product.Name)
	assert.True(t, product.InStock)
	assert.NotEmpty(t, product.Code)
}
