package resolvers

import (
	"context"
	"strconv"
	"time"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/shopspring/decimal"

	gqlmodels "storefront.GO/graphql/models"
	orderRepo "storefront.GO/model/repository/order"
	"storefront.GO/model/sales"
)

// PlaceOrder creates a pending order for the given product ids.
func (r *Resolver) PlaceOrder(ctx context.Context, items []string, totalAmount float64, customerEmail *string) (*gqlmodels.Order, error) {
	email := ""
	if customerEmail != nil {
		email = *customerEmail
	}
	order, err := r.OrderRepo.Place(orderRepo.PlaceInput{
		Items:         items,
		TotalAmount:   decimal.NewFromFloat(totalAmount),
		CustomerEmail: email,
	})
	if err != nil {
		return nil, err
	}
	return orderToGraphQL(order), nil
}

func (r *Resolver) Orders(ctx context.Context, status *string) ([]*gqlmodels.Order, error) {
	var (
		orders []*sales.Order
		err    error
	)
	if status != nil && *status != "" {
		orders, err = r.OrderRepo.FindByStatus(sales.OrderStatus(*status))
	} else {
		orders, err = r.OrderRepo.FindAll()
	}
	if err != nil {
		return nil, err
	}
	result := make([]*gqlmodels.Order, len(orders))
	for i, o := range orders {
		result[i] = orderToGraphQL(o)
	}
	return result, nil
}

func (r *Resolver) Order(ctx context.Context, id uint) (*gqlmodels.Order, error) {
	order, err := r.OrderRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return orderToGraphQL(order), nil
}

func orderToGraphQL(o *sales.Order) *gqlmodels.Order {
	out := &gqlmodels.Order{
		ID:               graphql.ID(strconv.FormatUint(uint64(o.ID), 10)),
		Status:           string(o.Status),
		TotalAmount:      o.TotalAmount.InexactFloat64(),
		Currency:         o.Currency,
		Items:            o.Items,
		CanBeModified:    o.CanBeModified(),
		CanBeCancelled:   o.CanBeCancelled(),
		AvailableActions: o.AvailableActions(),
		CreatedAt:        o.CreatedAt.Format(time.RFC3339),
	}
	if o.CustomerEmail != "" {
		email := o.CustomerEmail
		out.CustomerEmail = &email
	}
	if out.Items == nil {
		out.Items = []string{}
	}
	return out
}
