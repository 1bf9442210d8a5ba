package resolvers

import (
	"context"

	gqlmodels "storefront.GO/graphql/models"
	"storefront.GO/model/catalog"
)

// Products lists products for the storefront grid. Filters do not combine:
// search wins over category, category wins over inStock, and with no filter
// every product is returned. An empty string counts as an absent filter, so
// search: "" falls through to category rather than matching everything.
func (r *Resolver) Products(ctx context.Context, category, search *string, inStock *bool) ([]*gqlmodels.Product, error) {
	var (
		products []catalog.Product
		err      error
	)
	switch {
	case search != nil && *search != "":
		products, err = r.ProductRepo.SearchByText(*search)
	case category != nil && *category != "":
		products, err = r.ProductRepo.FindByCategory(*category)
	case inStock != nil && *inStock:
		products, err = r.ProductRepo.FindInStock()
	default:
		products, err = r.ProductRepo.FindAll()
	}
	if err != nil {
		return nil, err
	}

	result := make([]*gqlmodels.Product, len(products))
	for i := range products {
		result[i] = productToGraphQL(&products[i])
	}
	return result, nil
}

// Product returns a single product by id, or nil when it does not exist.
func (r *Resolver) Product(ctx context.Context, id string) (*gqlmodels.Product, error) {
	product, err := r.ProductRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return productToGraphQL(product), nil
}
