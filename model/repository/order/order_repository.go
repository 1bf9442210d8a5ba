package order

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	catalogEntity "storefront.GO/model/entity/catalog"
	salesEntity "storefront.GO/model/entity/sales"
	"storefront.GO/model/sales"
)

// ErrPlaceOrderFailed wraps any failure while placing an order. The GraphQL
// layer surfaces its message verbatim.
var ErrPlaceOrderFailed = errors.New("failed to place order")

// ErrInvalidOrder is returned by Save when the order fails validation for its
// status.
var ErrInvalidOrder = errors.New("invalid order")

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// PlaceInput carries the placeOrder contract: the product ids being bought,
// the client-computed total and an optional customer email.
type PlaceInput struct {
	Items         []string
	TotalAmount   decimal.Decimal
	CustomerEmail string
}

// Place validates the input against the catalog and writes the order and its
// item rows in a single transaction. The returned order is pending.
func (r *OrderRepository) Place(input PlaceInput) (*sales.Order, error) {
	if len(input.Items) == 0 {
		return nil, fmt.Errorf("%w: no items", ErrPlaceOrderFailed)
	}
	if !input.TotalAmount.IsPositive() {
		return nil, fmt.Errorf("%w: total amount must be positive", ErrPlaceOrderFailed)
	}

	seen := make(map[string]struct{}, len(input.Items))
	distinct := make([]string, 0, len(input.Items))
	for _, id := range input.Items {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			distinct = append(distinct, id)
		}
	}
	var count int64
	err := r.db.Model(&catalogEntity.Product{}).Where("id IN ?", distinct).Count(&count).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPlaceOrderFailed, err)
	}
	if int(count) != len(distinct) {
		return nil, fmt.Errorf("%w: unknown product in items", ErrPlaceOrderFailed)
	}

	o := sales.NewOrder(string(sales.StatusPending), input.TotalAmount, sales.DefaultCurrency, input.CustomerEmail)
	o.Items = input.Items

	err = r.db.Transaction(func(tx *gorm.DB) error {
		row := salesEntity.Order{
			Status:      string(o.Status),
			TotalAmount: o.TotalAmount,
			Currency:    o.Currency,
		}
		if o.CustomerEmail != "" {
			row.CustomerEmail = &o.CustomerEmail
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		for _, productID := range o.Items {
			item := salesEntity.OrderItem{
				OrderID:   row.ID,
				ProductID: productID,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		o.ID = row.ID
		o.CreatedAt = row.CreatedAt
		o.UpdatedAt = row.UpdatedAt
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPlaceOrderFailed, err)
	}
	return o, nil
}

func (r *OrderRepository) FindByID(id uint) (*sales.Order, error) {
	var row salesEntity.Order
	err := r.db.First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find order %d: %w", id, err)
	}
	return r.hydrate(row)
}

func (r *OrderRepository) FindAll() ([]*sales.Order, error) {
	var rows []salesEntity.Order
	if err := r.db.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}
	orders := make([]*sales.Order, len(rows))
	for i, row := range rows {
		o, err := r.hydrate(row)
		if err != nil {
			return nil, err
		}
		orders[i] = o
	}
	return orders, nil
}

func (r *OrderRepository) FindByStatus(status sales.OrderStatus) ([]*sales.Order, error) {
	var rows []salesEntity.Order
	err := r.db.Where("status = ?", string(status)).Order("created_at DESC").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("find %s orders: %w", status, err)
	}
	orders := make([]*sales.Order, len(rows))
	for i, row := range rows {
		o, err := r.hydrate(row)
		if err != nil {
			return nil, err
		}
		orders[i] = o
	}
	return orders, nil
}

// Save persists status, total and customer fields of an existing order.
func (r *OrderRepository) Save(o *sales.Order) error {
	if !o.Validate() {
		return fmt.Errorf("%w: order %d", ErrInvalidOrder, o.ID)
	}
	updates := map[string]interface{}{
		"status":       string(o.Status),
		"total_amount": o.TotalAmount,
		"currency":     o.Currency,
	}
	if o.CustomerEmail != "" {
		updates["customer_email"] = o.CustomerEmail
	}
	if o.ShippingAddress != "" {
		updates["shipping_address"] = o.ShippingAddress
	}
	err := r.db.Model(&salesEntity.Order{}).Where("id = ?", o.ID).Updates(updates).Error
	if err != nil {
		return fmt.Errorf("save order %d: %w", o.ID, err)
	}
	return nil
}

// Complete transitions a pending order to completed. The order must carry a
// customer email to validate in the completed state.
func (r *OrderRepository) Complete(id uint) (*sales.Order, error) {
	o, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, fmt.Errorf("complete order %d: not found", id)
	}
	if !o.Process() {
		return nil, fmt.Errorf("complete order %d: status %s", id, o.Status)
	}
	if err := r.Save(o); err != nil {
		return nil, err
	}
	return o, nil
}

// Cancel transitions a pending order to cancelled.
func (r *OrderRepository) Cancel(id uint) (*sales.Order, error) {
	o, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, fmt.Errorf("cancel order %d: not found", id)
	}
	if !o.CanBeCancelled() {
		return nil, fmt.Errorf("cancel order %d: status %s", id, o.Status)
	}
	o.Status = sales.StatusCancelled
	if err := r.Save(o); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *OrderRepository) hydrate(row salesEntity.Order) (*sales.Order, error) {
	email := ""
	if row.CustomerEmail != nil {
		email = *row.CustomerEmail
	}
	o := sales.NewOrder(row.Status, row.TotalAmount, row.Currency, email)
	o.ID = row.ID
	if row.ShippingAddress != nil {
		o.ShippingAddress = *row.ShippingAddress
	}
	o.CreatedAt = row.CreatedAt
	o.UpdatedAt = row.UpdatedAt

	var items []salesEntity.OrderItem
	if err := r.db.Where("order_id = ?", row.ID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("load items for order %d: %w", row.ID, err)
	}
	o.Items = make([]string, len(items))
	for i, item := range items {
		o.Items[i] = item.ProductID
	}
	return o, nil
}
