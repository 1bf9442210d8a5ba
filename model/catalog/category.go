package catalog

import (
	"time"
	"unicode"
)

// CategoryKind discriminates the closed set of category variants.
type CategoryKind string

const (
	// CategoryAll is the reserved "all" category: virtual, always the union
	// of every product.
	CategoryAll CategoryKind = "all"
	// CategoryProduct is any concretely named category.
	CategoryProduct CategoryKind = "product"
)

// Category is a storefront category. The kind is derived from the name at
// construction and never stored separately.
type Category struct {
	ID        uint
	Name      string
	Kind      CategoryKind
	CreatedAt time.Time
}

// NewCategory builds the right variant from the name. Any name other than
// "all" is a product category; there is no whitelist.
func NewCategory(name string) Category {
	kind := CategoryProduct
	if name == "all" {
		kind = CategoryAll
	}
	return Category{Name: name, Kind: kind}
}

func (c Category) Type() string {
	return string(c.Kind)
}

func (c Category) Validate() bool {
	switch c.Kind {
	case CategoryAll:
		return c.Name == "all"
	case CategoryProduct:
		return c.Name != "" && c.Name != "all"
	}
	return false
}

func (c Category) DisplayName() string {
	switch c.Kind {
	case CategoryAll:
		return "All Products"
	default:
		return capitalize(c.Name)
	}
}

// CanContainProducts is true for every current variant.
func (c Category) CanContainProducts() bool {
	return true
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return string(unicode.ToUpper(r[0])) + string(r[1:])
}
