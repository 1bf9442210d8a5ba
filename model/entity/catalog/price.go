package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// Price represents the prices table. A product may carry one row per
// currency; nothing enforces uniqueness of currency_label per product.
type Price struct {
	ID             uint            `gorm:"column:id;primaryKey;autoIncrement"`
	ProductID      string          `gorm:"column:product_id;type:varchar(64);index;not null"`
	Amount         decimal.Decimal `gorm:"column:amount;type:decimal(12,2);not null"`
	CurrencyLabel  string          `gorm:"column:currency_label;type:varchar(8);not null"`
	CurrencySymbol string          `gorm:"column:currency_symbol;type:varchar(8);not null"`
	CreatedAt      time.Time       `gorm:"column:created_at;autoCreateTime"`
}

func (Price) TableName() string {
	return "prices"
}
