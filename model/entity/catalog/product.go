package catalog

import "time"

// Product represents the products table. IDs are externally supplied strings,
// not auto-generated.
type Product struct {
	ID          string    `gorm:"column:id;type:varchar(64);primaryKey"`
	Name        string    `gorm:"column:name;type:varchar(255);not null"`
	Brand       string    `gorm:"column:brand;type:varchar(128);not null"`
	Description *string   `gorm:"column:description;type:text"`
	Category    string    `gorm:"column:category;type:varchar(64);index;not null"`
	InStock     bool      `gorm:"column:in_stock;not null;default:true"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Product) TableName() string {
	return "products"
}
