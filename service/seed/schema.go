package seed

// Seed document shape. The top-level wrapper mirrors a GraphQL response so a
// catalog exported from another storefront can be loaded as-is.

type Document struct {
	Data Data `json:"data" mapstructure:"data"`
}

type Data struct {
	Categories []CategoryDoc `json:"categories" mapstructure:"categories" validate:"required,dive"`
	Products   []ProductDoc  `json:"products" mapstructure:"products" validate:"dive"`
}

type CategoryDoc struct {
	Name string `json:"name" mapstructure:"name" validate:"required"`
}

type ProductDoc struct {
	ID          string         `json:"id" mapstructure:"id" validate:"required"`
	Name        string         `json:"name" mapstructure:"name" validate:"required"`
	Brand       string         `json:"brand" mapstructure:"brand" validate:"required"`
	Description string         `json:"description" mapstructure:"description"`
	Category    string         `json:"category" mapstructure:"category" validate:"required"`
	InStock     bool           `json:"inStock" mapstructure:"inStock"`
	Gallery     []string       `json:"gallery" mapstructure:"gallery" validate:"dive,url"`
	Attributes  []AttributeDoc `json:"attributes" mapstructure:"attributes" validate:"dive"`
	Prices      []PriceDoc     `json:"prices" mapstructure:"prices" validate:"dive"`
}

type AttributeDoc struct {
	ID    string             `json:"id" mapstructure:"id" validate:"required"`
	Name  string             `json:"name" mapstructure:"name" validate:"required"`
	Type  string             `json:"type" mapstructure:"type" validate:"required,oneof=text swatch"`
	Items []AttributeItemDoc `json:"items" mapstructure:"items" validate:"required,min=1,dive"`
}

type AttributeItemDoc struct {
	ID           string `json:"id" mapstructure:"id" validate:"required"`
	DisplayValue string `json:"displayValue" mapstructure:"displayValue" validate:"required"`
	Value        string `json:"value" mapstructure:"value" validate:"required"`
}

type PriceDoc struct {
	Amount   float64     `json:"amount" mapstructure:"amount" validate:"gte=0"`
	Currency CurrencyDoc `json:"currency" mapstructure:"currency" validate:"required"`
}

type CurrencyDoc struct {
	Label  string `json:"label" mapstructure:"label" validate:"required"`
	Symbol string `json:"symbol" mapstructure:"symbol" validate:"required"`
}
