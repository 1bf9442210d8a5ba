package resolvers

import (
	"strconv"

	graphql "github.com/graph-gophers/graphql-go"

	gqlmodels "storefront.GO/graphql/models"
	"storefront.GO/model/catalog"
)

func categoryToGraphQL(c *catalog.Category, productCount *int) *gqlmodels.Category {
	out := &gqlmodels.Category{
		ID:                 graphql.ID(strconv.FormatUint(uint64(c.ID), 10)),
		Name:               c.Name,
		DisplayName:        c.DisplayName(),
		Type:               c.Type(),
		CanContainProducts: c.CanContainProducts(),
	}
	if productCount != nil {
		n := int32(*productCount)
		out.ProductCount = &n
	}
	return out
}
