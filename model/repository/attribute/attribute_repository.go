package attribute

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storefront.GO/model/catalog"
	catalogEntity "storefront.GO/model/entity/catalog"
)

// ErrInvalidAttribute is returned by Save when the attribute or one of its
// items fails validation.
var ErrInvalidAttribute = errors.New("invalid attribute")

type AttributeRepository struct {
	db *gorm.DB
}

func NewAttributeRepository(db *gorm.DB) *AttributeRepository {
	return &AttributeRepository{db: db}
}

func (r *AttributeRepository) FindAll() ([]catalog.Attribute, error) {
	var rows []catalogEntity.Attribute
	if err := r.db.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find attributes: %w", err)
	}
	return r.hydrateAll(rows)
}

func (r *AttributeRepository) FindByID(id string) (*catalog.Attribute, error) {
	var row catalogEntity.Attribute
	err := r.db.First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find attribute %q: %w", id, err)
	}
	attrs, err := r.hydrateAll([]catalogEntity.Attribute{row})
	if err != nil {
		return nil, err
	}
	return &attrs[0], nil
}

// FindByProductID returns the attributes linked to a product, items included.
func (r *AttributeRepository) FindByProductID(productID string) ([]catalog.Attribute, error) {
	var rows []catalogEntity.Attribute
	err := r.db.Model(&catalogEntity.Attribute{}).
		Joins("INNER JOIN product_attributes pa ON attributes.id = pa.attribute_id").
		Where("pa.product_id = ?", productID).
		Order("attributes.name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("find attributes for product %q: %w", productID, err)
	}
	return r.hydrateAll(rows)
}

// Save upserts the attribute and its items, keyed by their external ids.
func (r *AttributeRepository) Save(a *catalog.Attribute) error {
	if !a.Validate() {
		return fmt.Errorf("%w: %q", ErrInvalidAttribute, a.ID)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		row := catalogEntity.Attribute{
			ID:   a.ID,
			Name: a.Name,
			Type: string(a.Kind),
		}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "type"}),
		}).Create(&row).Error
		if err != nil {
			return fmt.Errorf("save attribute %q: %w", a.ID, err)
		}
		for _, item := range a.Items {
			itemRow := catalogEntity.AttributeItem{
				ID:           item.ID,
				AttributeID:  a.ID,
				DisplayValue: item.DisplayValue,
				Value:        item.Value,
			}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"display_value", "value"}),
			}).Create(&itemRow).Error
			if err != nil {
				return fmt.Errorf("save attribute item %q: %w", item.ID, err)
			}
		}
		return nil
	})
}

// LinkToProduct records the product/attribute association. Linking twice is
// a no-op.
func (r *AttributeRepository) LinkToProduct(productID, attributeID string) error {
	link := catalogEntity.ProductAttribute{
		ProductID:   productID,
		AttributeID: attributeID,
	}
	err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error
	if err != nil {
		return fmt.Errorf("link attribute %q to product %q: %w", attributeID, productID, err)
	}
	return nil
}

func (r *AttributeRepository) Delete(id string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&catalogEntity.AttributeItem{}, "attribute_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&catalogEntity.ProductAttribute{}, "attribute_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&catalogEntity.Attribute{}, "id = ?", id).Error
	})
	if err != nil {
		return fmt.Errorf("delete attribute %q: %w", id, err)
	}
	return nil
}

func (r *AttributeRepository) hydrateAll(rows []catalogEntity.Attribute) ([]catalog.Attribute, error) {
	if len(rows) == 0 {
		return []catalog.Attribute{}, nil
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}

	var itemRows []catalogEntity.AttributeItem
	err := r.db.
		Where("attribute_id IN ?", ids).
		Order("attribute_id, display_value ASC").
		Find(&itemRows).Error
	if err != nil {
		return nil, fmt.Errorf("load attribute items: %w", err)
	}
	items := make(map[string][]catalog.AttributeItem)
	for _, row := range itemRows {
		items[row.AttributeID] = append(items[row.AttributeID], catalog.AttributeItem{
			ID:           row.ID,
			AttributeID:  row.AttributeID,
			DisplayValue: row.DisplayValue,
			Value:        row.Value,
		})
	}

	attrs := make([]catalog.Attribute, len(rows))
	for i, row := range rows {
		attr, err := catalog.NewAttribute(row.ID, row.Name, row.Type)
		if err != nil {
			return nil, fmt.Errorf("hydrate attribute %q: %w", row.ID, err)
		}
		attr.Items = items[row.ID]
		if attr.Items == nil {
			attr.Items = []catalog.AttributeItem{}
		}
		attrs[i] = attr
	}
	return attrs, nil
}
