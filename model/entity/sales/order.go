package sales

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order represents the orders table. Status transitions are same-row
// re-saves; there is no status history.
type Order struct {
	ID              uint            `gorm:"column:id;primaryKey;autoIncrement"`
	Status          string          `gorm:"column:status;type:varchar(16);index;not null"`
	TotalAmount     decimal.Decimal `gorm:"column:total_amount;type:decimal(12,2);not null"`
	Currency        string          `gorm:"column:currency;type:varchar(8);not null"`
	CustomerEmail   *string         `gorm:"column:customer_email;type:varchar(255)"`
	ShippingAddress *string         `gorm:"column:shipping_address;type:text"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem represents the order_items table. Each row references a real
// product id; rows are written in the same transaction as the order.
type OrderItem struct {
	ID        uint   `gorm:"column:id;primaryKey;autoIncrement"`
	OrderID   uint   `gorm:"column:order_id;index;not null"`
	ProductID string `gorm:"column:product_id;type:varchar(64);not null"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
