package models

import (
	graphql "github.com/graph-gophers/graphql-go"
)

// --- Category ---

type Category struct {
	ID                 graphql.ID `json:"id"`
	Name               string     `json:"name"`
	DisplayName        string     `json:"displayName"`
	Type               string     `json:"type"`
	CanContainProducts bool       `json:"canContainProducts"`
	ProductCount       *int32     `json:"productCount,omitempty"`
}

// --- Product ---

type Product struct {
	ID                     graphql.ID   `json:"id"`
	Name                   string       `json:"name"`
	Brand                  string       `json:"brand"`
	Description            *string      `json:"description,omitempty"`
	Category               string       `json:"category"`
	InStock                bool         `json:"inStock"`
	Type                   string       `json:"type"`
	Gallery                []string     `json:"gallery"`
	Prices                 []*Price     `json:"prices"`
	Attributes             []*Attribute `json:"attributes"`
	HasConfigurableOptions bool         `json:"hasConfigurableOptions"`
	AvailableOptions       []*OptionSet `json:"availableOptions"`
}

type Price struct {
	Amount   float64   `json:"amount"`
	Currency *Currency `json:"currency"`
}

type Currency struct {
	Label  string `json:"label"`
	Symbol string `json:"symbol"`
}

type Attribute struct {
	ID        graphql.ID       `json:"id"`
	Name      string           `json:"name"`
	Type      string           `json:"type"`
	InputType string           `json:"inputType"`
	Items     []*AttributeItem `json:"items"`
}

type AttributeItem struct {
	ID           graphql.ID `json:"id"`
	DisplayValue string     `json:"displayValue"`
	Value        string     `json:"value"`
}

// OptionSet is one configurable attribute and the values it offers. GraphQL
// has no map type, so availableOptions is exposed as a list of these.
type OptionSet struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// --- Order ---

type Order struct {
	ID               graphql.ID `json:"id"`
	Status           string     `json:"status"`
	TotalAmount      float64    `json:"totalAmount"`
	Currency         string     `json:"currency"`
	CustomerEmail    *string    `json:"customerEmail,omitempty"`
	Items            []string   `json:"items"`
	CanBeModified    bool       `json:"canBeModified"`
	CanBeCancelled   bool       `json:"canBeCancelled"`
	AvailableActions []string   `json:"availableActions"`
	CreatedAt        string     `json:"createdAt"`
}
