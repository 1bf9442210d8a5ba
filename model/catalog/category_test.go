package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCategory_Variants(t *testing.T) {
	all := NewCategory("all")
	assert.Equal(t, CategoryAll, all.Kind)
	assert.Equal(t, "all", all.Type())

	tech := NewCategory("tech")
	assert.Equal(t, CategoryProduct, tech.Kind)
	assert.Equal(t, "product", tech.Type())
}

func TestCategory_Validate(t *testing.T) {
	assert.True(t, NewCategory("all").Validate())
	assert.True(t, NewCategory("clothes").Validate())
	assert.False(t, NewCategory("").Validate())

	// a product category renamed to "all" is no longer valid
	c := NewCategory("tech")
	c.Name = "all"
	assert.False(t, c.Validate())
}

func TestCategory_DisplayName(t *testing.T) {
	assert.Equal(t, "All Products", NewCategory("all").DisplayName())
	assert.Equal(t, "Tech", NewCategory("tech").DisplayName())
	assert.Equal(t, "Clothes", NewCategory("clothes").DisplayName())
}

func TestCategory_CanContainProducts(t *testing.T) {
	assert.True(t, NewCategory("all").CanContainProducts())
	assert.True(t, NewCategory("tech").CanContainProducts())
}
