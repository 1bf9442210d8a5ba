package sales

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus discriminates the closed set of order variants.
type OrderStatus string

const (
	// StatusPending orders are modifiable and cancellable.
	StatusPending OrderStatus = "pending"
	// StatusCompleted orders are immutable and require a customer email.
	StatusCompleted OrderStatus = "completed"
	// StatusCancelled orders are immutable.
	StatusCancelled OrderStatus = "cancelled"
)

// DefaultCurrency is applied when the factory is called with an empty
// currency.
const DefaultCurrency = "USD"

// Order is a customer order with status-dependent behavior. Both terminal
// transitions (pending to completed, pending to cancelled) are same-object
// re-saves; nothing moves a terminal order back to pending.
type Order struct {
	ID              uint
	Status          OrderStatus
	TotalAmount     decimal.Decimal
	Currency        string
	CustomerEmail   string
	ShippingAddress string
	Items           []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewOrder builds the variant for the given status string, defaulting to
// pending for anything unrecognized.
func NewOrder(status string, totalAmount decimal.Decimal, currency string, customerEmail string) *Order {
	if currency == "" {
		currency = DefaultCurrency
	}
	st := StatusPending
	switch OrderStatus(status) {
	case StatusCompleted:
		st = StatusCompleted
	case StatusCancelled:
		st = StatusCancelled
	}
	return &Order{
		Status:        st,
		TotalAmount:   totalAmount,
		Currency:      currency,
		CustomerEmail: customerEmail,
	}
}

func (o *Order) Validate() bool {
	switch o.Status {
	case StatusPending:
		return o.TotalAmount.IsPositive() && o.Currency != ""
	case StatusCompleted:
		return o.TotalAmount.IsPositive() && o.Currency != "" && o.CustomerEmail != ""
	case StatusCancelled:
		return !o.TotalAmount.IsNegative() && o.Currency != ""
	}
	return false
}

func (o *Order) CanBeModified() bool {
	return o.Status == StatusPending
}

func (o *Order) CanBeCancelled() bool {
	return o.Status == StatusPending
}

// Process advances a pending order to completed. Terminal orders are a
// no-op that still reports success. The caller persists the change.
func (o *Order) Process() bool {
	if o.Status == StatusPending {
		o.Status = StatusCompleted
	}
	return true
}

// AvailableActions lists what the current variant allows.
func (o *Order) AvailableActions() []string {
	switch o.Status {
	case StatusCompleted:
		return []string{"generate_invoice", "view_details"}
	case StatusCancelled:
		return []string{"view_cancellation_details"}
	default:
		return []string{"modify", "cancel", "complete", "add_item", "remove_item"}
	}
}

// AddItem appends an item reference; only pending orders accept it.
func (o *Order) AddItem(productID string) bool {
	if !o.CanBeModified() {
		return false
	}
	o.Items = append(o.Items, productID)
	return true
}

// RemoveItem removes the item at index; only pending orders accept it.
func (o *Order) RemoveItem(index int) bool {
	if !o.CanBeModified() || index < 0 || index >= len(o.Items) {
		return false
	}
	o.Items = append(o.Items[:index], o.Items[index+1:]...)
	return true
}

// Invoice returns invoice data for a completed order, nil otherwise.
func (o *Order) Invoice() map[string]interface{} {
	if o.Status != StatusCompleted {
		return nil
	}
	return map[string]interface{}{
		"order_id":       o.ID,
		"customer_email": o.CustomerEmail,
		"total_amount":   o.TotalAmount,
		"currency":       o.Currency,
		"items":          o.Items,
		"invoice_date":   time.Now().Format("2006-01-02 15:04:05"),
		"status":         "paid",
	}
}

// CancellationInfo returns cancellation details for a cancelled order, nil
// otherwise.
func (o *Order) CancellationInfo() map[string]interface{} {
	if o.Status != StatusCancelled {
		return nil
	}
	cancelledAt := o.UpdatedAt
	if cancelledAt.IsZero() {
		cancelledAt = o.CreatedAt
	}
	return map[string]interface{}{
		"order_id":        o.ID,
		"original_amount": o.TotalAmount,
		"currency":        o.Currency,
		"cancelled_at":    cancelledAt,
		"reason":          "Customer cancellation",
	}
}
