package graphqlserver

import (
	"context"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"gorm.io/gorm"

	"storefront.GO/graphql"
	gqlmodels "storefront.GO/graphql/models"
	"storefront.GO/graphql/resolvers"
)

// RootResolver is the root for graphql-go. Field resolvers delegate to the
// resolvers package, which is constructed per request around the shared DB
// handle.
type RootResolver struct {
	DB *gorm.DB
}

func (r *RootResolver) resolver() *resolvers.Resolver {
	return resolvers.NewResolver(r.DB)
}

func (r *RootResolver) Categories(ctx context.Context) ([]*gqlmodels.Category, error) {
	return r.resolver().Categories(ctx)
}

// CategoryArgs matches the category query arguments.
type CategoryArgs struct {
	Name string
}

func (r *RootResolver) Category(ctx context.Context, args CategoryArgs) (*gqlmodels.Category, error) {
	return r.resolver().Category(ctx, args.Name)
}

// ProductsArgs matches the products query arguments. All three filters are
// optional; precedence is search, then category, then inStock.
type ProductsArgs struct {
	Category *string
	InStock  *bool
	Search   *string
}

func (r *RootResolver) Products(ctx context.Context, args ProductsArgs) ([]*gqlmodels.Product, error) {
	return r.resolver().Products(ctx, args.Category, args.Search, args.InStock)
}

// ProductArgs matches the product query arguments.
type ProductArgs struct {
	ID string
}

func (r *RootResolver) Product(ctx context.Context, args ProductArgs) (*gqlmodels.Product, error) {
	return r.resolver().Product(ctx, args.ID)
}

// OrdersArgs matches the orders query arguments.
type OrdersArgs struct {
	Status *string
}

func (r *RootResolver) Orders(ctx context.Context, args OrdersArgs) ([]*gqlmodels.Order, error) {
	return r.resolver().Orders(ctx, args.Status)
}

// OrderArgs matches the order query arguments.
type OrderArgs struct {
	ID int32
}

func (r *RootResolver) Order(ctx context.Context, args OrderArgs) (*gqlmodels.Order, error) {
	if args.ID <= 0 {
		return nil, nil
	}
	return r.resolver().Order(ctx, uint(args.ID))
}

// PlaceOrderArgs matches the placeOrder mutation arguments.
type PlaceOrderArgs struct {
	Items         []string
	TotalAmount   float64
	CustomerEmail *string
}

func (r *RootResolver) PlaceOrder(ctx context.Context, args PlaceOrderArgs) (*gqlmodels.Order, error) {
	return r.resolver().PlaceOrder(ctx, args.Items, args.TotalAmount, args.CustomerEmail)
}

// NewSchema parses the schema and returns a graphql-go Schema.
func NewSchema(db *gorm.DB) (*gql.Schema, error) {
	return gql.ParseSchema(graphql.Schema(), &RootResolver{DB: db}, gql.UseFieldResolvers())
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
