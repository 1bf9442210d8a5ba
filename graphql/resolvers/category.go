package resolvers

import (
	"context"

	gqlmodels "storefront.GO/graphql/models"
)

// Categories returns every category with its in-stock product count, the
// count computed in the same query as the listing.
func (r *Resolver) Categories(ctx context.Context) ([]*gqlmodels.Category, error) {
	counted, err := r.CategoryRepo.FindWithProductCounts()
	if err != nil {
		return nil, err
	}
	result := make([]*gqlmodels.Category, len(counted))
	for i, c := range counted {
		result[i] = categoryToGraphQL(&c.Category, &c.ProductCount)
	}
	return result, nil
}

// Category returns a single category by name, or nil when it does not exist.
func (r *Resolver) Category(ctx context.Context, name string) (*gqlmodels.Category, error) {
	cat, err := r.CategoryRepo.FindByName(name)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, nil
	}
	count, err := r.CategoryRepo.CountInStockProducts(cat.Name)
	if err != nil {
		return nil, err
	}
	return categoryToGraphQL(cat, &count), nil
}
