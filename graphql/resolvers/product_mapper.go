package resolvers

import (
	graphql "github.com/graph-gophers/graphql-go"

	gqlmodels "storefront.GO/graphql/models"
	"storefront.GO/model/catalog"
)

func productToGraphQL(p *catalog.Product) *gqlmodels.Product {
	out := &gqlmodels.Product{
		ID:                     graphql.ID(p.ID),
		Name:                   p.Name,
		Brand:                  p.Brand,
		Category:               p.Category,
		InStock:                p.InStock,
		Type:                   p.Type(),
		Gallery:                p.Gallery,
		Prices:                 make([]*gqlmodels.Price, len(p.Prices)),
		Attributes:             make([]*gqlmodels.Attribute, len(p.Attributes)),
		HasConfigurableOptions: p.HasConfigurableOptions(),
		AvailableOptions:       optionSets(p),
	}
	if p.Description != "" {
		desc := p.Description
		out.Description = &desc
	}
	if out.Gallery == nil {
		out.Gallery = []string{}
	}
	for i, price := range p.Prices {
		out.Prices[i] = &gqlmodels.Price{
			Amount: price.Amount.InexactFloat64(),
			Currency: &gqlmodels.Currency{
				Label:  price.CurrencyLabel,
				Symbol: price.CurrencySymbol,
			},
		}
	}
	for i, attr := range p.Attributes {
		out.Attributes[i] = attributeToGraphQL(attr)
	}
	return out
}

func attributeToGraphQL(a catalog.Attribute) *gqlmodels.Attribute {
	out := &gqlmodels.Attribute{
		ID:        graphql.ID(a.ID),
		Name:      a.Name,
		Type:      a.Type(),
		InputType: a.InputType(),
		Items:     make([]*gqlmodels.AttributeItem, len(a.Items)),
	}
	for i, item := range a.Items {
		out.Items[i] = &gqlmodels.AttributeItem{
			ID:           graphql.ID(item.ID),
			DisplayValue: item.DisplayValue,
			Value:        item.Value,
		}
	}
	return out
}

// optionSets flattens AvailableOptions into a list ordered like the
// product's attributes, so the storefront renders selectors in a stable
// order.
func optionSets(p *catalog.Product) []*gqlmodels.OptionSet {
	options := p.AvailableOptions()
	sets := make([]*gqlmodels.OptionSet, 0, len(options))
	for _, attr := range p.Attributes {
		values, ok := options[attr.Name]
		if !ok {
			continue
		}
		sets = append(sets, &gqlmodels.OptionSet{Name: attr.Name, Values: values})
	}
	return sets
}
