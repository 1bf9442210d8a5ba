package catalog

import "time"

// Attribute represents the attributes table ("text" or "swatch").
type Attribute struct {
	ID        string    `gorm:"column:id;type:varchar(64);primaryKey"`
	Name      string    `gorm:"column:name;type:varchar(128);not null"`
	Type      string    `gorm:"column:type;type:varchar(16);not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Attribute) TableName() string {
	return "attributes"
}

// AttributeItem represents the attribute_items table. Each item belongs to
// exactly one attribute.
type AttributeItem struct {
	ID           string `gorm:"column:id;type:varchar(64);primaryKey"`
	AttributeID  string `gorm:"column:attribute_id;type:varchar(64);index;not null"`
	DisplayValue string `gorm:"column:display_value;type:varchar(255);not null"`
	Value        string `gorm:"column:value;type:varchar(255);not null"`
}

func (AttributeItem) TableName() string {
	return "attribute_items"
}

// ProductAttribute is the product_attributes join table (many-to-many).
type ProductAttribute struct {
	ProductID   string `gorm:"column:product_id;type:varchar(64);primaryKey"`
	AttributeID string `gorm:"column:attribute_id;type:varchar(64);primaryKey"`
}

func (ProductAttribute) TableName() string {
	return "product_attributes"
}
