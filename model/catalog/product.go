package catalog

import "time"

// ProductKind discriminates the closed set of product variants.
type ProductKind string

const (
	// ProductSimple has no attributes and is purchasable as-is.
	ProductSimple ProductKind = "simple"
	// ProductConfigurable carries at least one attribute and requires a
	// selection per attribute before purchase.
	ProductConfigurable ProductKind = "configurable"
)

// Product is a hydrated storefront product. The kind is decided once, from
// the attribute list present at construction, and is not a stored column.
type Product struct {
	ID          string
	Name        string
	Brand       string
	Description string
	Category    string
	InStock     bool
	Kind        ProductKind
	Gallery     []string
	Prices      []Price
	Attributes  []Attribute
	CreatedAt   time.Time
}

// ProductData is the factory input for NewProduct.
type ProductData struct {
	ID          string
	Name        string
	Brand       string
	Description string
	Category    string
	InStock     bool
	Attributes  []Attribute
}

// NewProduct builds the right variant: configurable iff attributes are
// present.
func NewProduct(data ProductData) Product {
	kind := ProductSimple
	if len(data.Attributes) > 0 {
		kind = ProductConfigurable
	}
	return Product{
		ID:          data.ID,
		Name:        data.Name,
		Brand:       data.Brand,
		Description: data.Description,
		Category:    data.Category,
		InStock:     data.InStock,
		Kind:        kind,
		Attributes:  data.Attributes,
	}
}

func (p Product) Type() string {
	return string(p.Kind)
}

// Validate checks the fields both variants require. Stock status and id are
// deliberately not validated.
func (p Product) Validate() bool {
	return p.Name != "" && p.Brand != "" && p.Category != ""
}

func (p Product) HasConfigurableOptions() bool {
	return p.Kind == ProductConfigurable
}

// AvailableOptions maps attribute name to its selectable display strings.
// Simple products have none. Blank values are filtered out.
func (p Product) AvailableOptions() map[string][]string {
	if p.Kind != ProductConfigurable {
		return map[string][]string{}
	}
	options := make(map[string][]string, len(p.Attributes))
	for _, attr := range p.Attributes {
		values := make([]string, 0, len(attr.Items))
		for _, item := range attr.Items {
			v := item.DisplayValue
			if v == "" {
				v = item.Value
			}
			if v != "" {
				values = append(values, v)
			}
		}
		options[attr.Name] = values
	}
	return options
}

// DefaultConfiguration picks the first item's value per attribute, used to
// pre-select options in the UI. Empty for simple products.
func (p Product) DefaultConfiguration() map[string]string {
	defaults := make(map[string]string)
	if p.Kind != ProductConfigurable {
		return defaults
	}
	for _, attr := range p.Attributes {
		if len(attr.Items) > 0 {
			defaults[attr.Name] = attr.Items[0].Value
		}
	}
	return defaults
}

// ProcessForDisplay augments the base representation with per-variant display
// data.
func (p Product) ProcessForDisplay() map[string]interface{} {
	data := p.toMap()
	switch p.Kind {
	case ProductConfigurable:
		data["displayType"] = "Configurable Product"
		data["requiresConfiguration"] = true
		data["configurableAttributes"] = p.configurableAttributes()
		data["defaultConfiguration"] = p.DefaultConfiguration()
	default:
		data["displayType"] = "Simple Product"
		data["canPurchaseDirectly"] = true
	}
	return data
}

func (p Product) configurableAttributes() []map[string]interface{} {
	attrs := make([]map[string]interface{}, 0, len(p.Attributes))
	for _, attr := range p.Attributes {
		attrs = append(attrs, map[string]interface{}{
			"id":       attr.ID,
			"name":     attr.Name,
			"type":     attr.Type(),
			"required": true,
			"options":  attr.Items,
		})
	}
	return attrs
}

func (p Product) toMap() map[string]interface{} {
	return map[string]interface{}{
		"id":                     p.ID,
		"name":                   p.Name,
		"brand":                  p.Brand,
		"description":            p.Description,
		"category":               p.Category,
		"inStock":                p.InStock,
		"type":                   p.Type(),
		"hasConfigurableOptions": p.HasConfigurableOptions(),
		"gallery":                p.Gallery,
		"prices":                 p.Prices,
		"attributes":             p.Attributes,
		"availableOptions":       p.AvailableOptions(),
	}
}
