package catalog

import "time"

// GalleryImage represents the product_gallery table. sort_order 0 is the
// primary image.
type GalleryImage struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement"`
	ProductID string    `gorm:"column:product_id;type:varchar(64);index;not null"`
	ImageURL  string    `gorm:"column:image_url;type:varchar(1024);not null"`
	SortOrder int       `gorm:"column:sort_order;not null;default:0"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (GalleryImage) TableName() string {
	return "product_gallery"
}
