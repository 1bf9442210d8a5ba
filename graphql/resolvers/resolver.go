package resolvers

import (
	"gorm.io/gorm"

	attributeRepo "storefront.GO/model/repository/attribute"
	categoryRepo "storefront.GO/model/repository/category"
	orderRepo "storefront.GO/model/repository/order"
	productRepo "storefront.GO/model/repository/product"
)

// Resolver backs all Query and Mutation fields. Methods live in category.go,
// product.go and order.go.
type Resolver struct {
	CategoryRepo  *categoryRepo.CategoryRepository
	ProductRepo   *productRepo.ProductRepository
	AttributeRepo *attributeRepo.AttributeRepository
	OrderRepo     *orderRepo.OrderRepository
}

func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{
		CategoryRepo:  categoryRepo.NewCategoryRepository(db),
		ProductRepo:   productRepo.NewProductRepository(db),
		AttributeRepo: attributeRepo.NewAttributeRepository(db),
		OrderRepo:     orderRepo.NewOrderRepository(db),
	}
}
