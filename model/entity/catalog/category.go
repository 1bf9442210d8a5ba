package catalog

import "time"

// Category represents the categories table. The "all" row is the virtual
// union category; every other name is a product category.
type Category struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;type:varchar(64);uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Category) TableName() string {
	return "categories"
}
