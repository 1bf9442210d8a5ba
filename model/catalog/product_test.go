package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sizeAttribute(t *testing.T) Attribute {
	t.Helper()
	attr, err := NewAttribute("size", "Size", "text")
	require.NoError(t, err)
	attr.Items = []AttributeItem{
		{ID: "40", AttributeID: "size", DisplayValue: "40", Value: "40"},
		{ID: "41", AttributeID: "size", DisplayValue: "41", Value: "41"},
	}
	return attr
}

func TestNewProduct_VariantFromAttributes(t *testing.T) {
	simple := NewProduct(ProductData{ID: "p1", Name: "PS5", Brand: "Sony", Category: "tech"})
	assert.Equal(t, ProductSimple, simple.Kind)
	assert.Equal(t, "simple", simple.Type())
	assert.False(t, simple.HasConfigurableOptions())

	configurable := NewProduct(ProductData{
		ID: "p2", Name: "Jacket", Brand: "Canada Goose", Category: "clothes",
		Attributes: []Attribute{sizeAttribute(t)},
	})
	assert.Equal(t, ProductConfigurable, configurable.Kind)
	assert.True(t, configurable.HasConfigurableOptions())
}

func TestProduct_Validate(t *testing.T) {
	assert.True(t, NewProduct(ProductData{Name: "PS5", Brand: "Sony", Category: "tech"}).Validate())
	assert.False(t, NewProduct(ProductData{Brand: "Sony", Category: "tech"}).Validate())
	assert.False(t, NewProduct(ProductData{Name: "PS5", Category: "tech"}).Validate())
	assert.False(t, NewProduct(ProductData{Name: "PS5", Brand: "Sony"}).Validate())

	// out-of-stock products are valid; stock is not a validity concern
	assert.True(t, NewProduct(ProductData{Name: "PS5", Brand: "Sony", Category: "tech", InStock: false}).Validate())
}

func TestProduct_AvailableOptions(t *testing.T) {
	simple := NewProduct(ProductData{ID: "p1", Name: "PS5", Brand: "Sony", Category: "tech"})
	assert.Empty(t, simple.AvailableOptions())

	attr := sizeAttribute(t)
	attr.Items = append(attr.Items, AttributeItem{ID: "blank", AttributeID: "size"})
	p := NewProduct(ProductData{
		ID: "p2", Name: "Shoes", Brand: "Nike", Category: "clothes",
		Attributes: []Attribute{attr},
	})

	options := p.AvailableOptions()
	require.Contains(t, options, "Size")
	// the blank item is filtered out
	assert.Equal(t, []string{"40", "41"}, options["Size"])
}

func TestProduct_AvailableOptions_FallsBackToValue(t *testing.T) {
	attr, err := NewAttribute("color", "Color", "swatch")
	require.NoError(t, err)
	attr.Items = []AttributeItem{
		{ID: "g", AttributeID: "color", Value: "#44ff03"},
	}
	p := NewProduct(ProductData{
		ID: "p1", Name: "Hoodie", Brand: "Nike", Category: "clothes",
		Attributes: []Attribute{attr},
	})
	assert.Equal(t, []string{"#44ff03"}, p.AvailableOptions()["Color"])
}

func TestProduct_DefaultConfiguration(t *testing.T) {
	simple := NewProduct(ProductData{ID: "p1", Name: "PS5", Brand: "Sony", Category: "tech"})
	assert.Empty(t, simple.DefaultConfiguration())

	p := NewProduct(ProductData{
		ID: "p2", Name: "Shoes", Brand: "Nike", Category: "clothes",
		Attributes: []Attribute{sizeAttribute(t)},
	})
	assert.Equal(t, map[string]string{"Size": "40"}, p.DefaultConfiguration())
}

func TestProduct_ProcessForDisplay(t *testing.T) {
	simple := NewProduct(ProductData{ID: "p1", Name: "PS5", Brand: "Sony", Category: "tech"})
	data := simple.ProcessForDisplay()
	assert.Equal(t, "Simple Product", data["displayType"])
	assert.Equal(t, true, data["canPurchaseDirectly"])
	assert.NotContains(t, data, "requiresConfiguration")

	configurable := NewProduct(ProductData{
		ID: "p2", Name: "Shoes", Brand: "Nike", Category: "clothes",
		Attributes: []Attribute{sizeAttribute(t)},
	})
	data = configurable.ProcessForDisplay()
	assert.Equal(t, "Configurable Product", data["displayType"])
	assert.Equal(t, true, data["requiresConfiguration"])
	attrs := data["configurableAttributes"].([]map[string]interface{})
	require.Len(t, attrs, 1)
	assert.Equal(t, true, attrs[0]["required"])
	assert.NotContains(t, data, "canPurchaseDirectly")
}
