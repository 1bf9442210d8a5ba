package product

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storefront.GO/model/catalog"
	catalogEntity "storefront.GO/model/entity/catalog"
)

// ErrInvalidProduct is returned by Save when the variant fails validation.
var ErrInvalidProduct = errors.New("invalid product")

// ProductRepository loads product rows, their gallery, prices and attributes,
// and hydrates them into the correct variant. The variant is decided from the
// attribute set loaded alongside the row, so hydrating a list of n products
// costs a fixed number of queries, not n extra round-trips.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// FindAll returns every product, alphabetical by name.
func (r *ProductRepository) FindAll() ([]catalog.Product, error) {
	var rows []catalogEntity.Product
	if err := r.db.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	return r.hydrateAll(rows)
}

func (r *ProductRepository) FindByID(id string) (*catalog.Product, error) {
	var row catalogEntity.Product
	err := r.db.First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find product %q: %w", id, err)
	}
	products, err := r.hydrateAll([]catalogEntity.Product{row})
	if err != nil {
		return nil, err
	}
	return &products[0], nil
}

// FindByCategory returns products in the named category; "all" means every
// product.
func (r *ProductRepository) FindByCategory(category string) ([]catalog.Product, error) {
	if category == "all" {
		return r.FindAll()
	}
	var rows []catalogEntity.Product
	if err := r.db.Where("category = ?", category).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find products in %q: %w", category, err)
	}
	return r.hydrateAll(rows)
}

func (r *ProductRepository) FindInStock() ([]catalog.Product, error) {
	var rows []catalogEntity.Product
	if err := r.db.Where("in_stock = ?", true).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find in-stock products: %w", err)
	}
	return r.hydrateAll(rows)
}

// SearchByText matches the query as a case-insensitive substring of name,
// brand or description.
func (r *ProductRepository) SearchByText(query string) ([]catalog.Product, error) {
	pattern := "%" + query + "%"
	var rows []catalogEntity.Product
	err := r.db.
		Where("name LIKE ? OR brand LIKE ? OR description LIKE ?", pattern, pattern, pattern).
		Order("name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("search products %q: %w", query, err)
	}
	return r.hydrateAll(rows)
}

// FindWithAttributes returns products matching every given filter: each
// entry maps an attribute name to the item values accepted for it, combined
// with AND across attribute names.
func (r *ProductRepository) FindWithAttributes(filters map[string][]string) ([]catalog.Product, error) {
	tx := r.db.Model(&catalogEntity.Product{}).
		Distinct("products.*").
		Joins("INNER JOIN product_attributes pa ON products.id = pa.product_id").
		Joins("INNER JOIN attributes a ON pa.attribute_id = a.id")

	for name, values := range filters {
		tx = tx.Where(
			"a.name = ? AND a.id IN (SELECT ai.attribute_id FROM attribute_items ai WHERE ai.value IN ?)",
			name, values,
		)
	}

	var rows []catalogEntity.Product
	if err := tx.Order("products.name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find products with attributes: %w", err)
	}
	return r.hydrateAll(rows)
}

// FindConfigurable returns products that have at least one linked attribute.
func (r *ProductRepository) FindConfigurable() ([]catalog.Product, error) {
	var rows []catalogEntity.Product
	err := r.db.Model(&catalogEntity.Product{}).
		Distinct("products.*").
		Joins("INNER JOIN product_attributes pa ON products.id = pa.product_id").
		Order("products.name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("find configurable products: %w", err)
	}
	return r.hydrateAll(rows)
}

// FindSimple returns products with no linked attribute.
func (r *ProductRepository) FindSimple() ([]catalog.Product, error) {
	var rows []catalogEntity.Product
	err := r.db.Model(&catalogEntity.Product{}).
		Joins("LEFT JOIN product_attributes pa ON products.id = pa.product_id").
		Where("pa.product_id IS NULL").
		Order("products.name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("find simple products: %w", err)
	}
	return r.hydrateAll(rows)
}

// CountByCategory returns product counts grouped by category name.
func (r *ProductRepository) CountByCategory() (map[string]int, error) {
	var results []struct {
		Category string
		Count    int
	}
	err := r.db.Model(&catalogEntity.Product{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("count products by category: %w", err)
	}
	counts := make(map[string]int, len(results))
	for _, row := range results {
		counts[row.Category] = row.Count
	}
	return counts, nil
}

// Save upserts the product row keyed by its externally supplied id.
func (r *ProductRepository) Save(p *catalog.Product) error {
	if !p.Validate() {
		return fmt.Errorf("%w: %q", ErrInvalidProduct, p.ID)
	}
	row := catalogEntity.Product{
		ID:       p.ID,
		Name:     p.Name,
		Brand:    p.Brand,
		Category: p.Category,
		InStock:  p.InStock,
	}
	if p.Description != "" {
		row.Description = &p.Description
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "brand", "description", "category", "in_stock"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("save product %q: %w", p.ID, err)
	}
	return nil
}

// Delete removes the product and its gallery, prices and attribute links in
// one transaction.
func (r *ProductRepository) Delete(id string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&catalogEntity.GalleryImage{}, "product_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&catalogEntity.Price{}, "product_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&catalogEntity.ProductAttribute{}, "product_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&catalogEntity.Product{}, "id = ?", id).Error
	})
	if err != nil {
		return fmt.Errorf("delete product %q: %w", id, err)
	}
	return nil
}

// --- hydration ---

type attributeJoinRow struct {
	ProductID    string
	AttributeID  string
	Name         string
	Type         string
	ItemID       string
	DisplayValue string
	Value        string
}

func (r *ProductRepository) hydrateAll(rows []catalogEntity.Product) ([]catalog.Product, error) {
	if len(rows) == 0 {
		return []catalog.Product{}, nil
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}

	galleries, err := r.loadGalleries(ids)
	if err != nil {
		return nil, err
	}
	prices, err := r.loadPrices(ids)
	if err != nil {
		return nil, err
	}
	attributes, err := r.loadAttributes(ids)
	if err != nil {
		return nil, err
	}

	products := make([]catalog.Product, len(rows))
	for i, row := range rows {
		desc := ""
		if row.Description != nil {
			desc = *row.Description
		}
		p := catalog.NewProduct(catalog.ProductData{
			ID:          row.ID,
			Name:        row.Name,
			Brand:       row.Brand,
			Description: desc,
			Category:    row.Category,
			InStock:     row.InStock,
			Attributes:  attributes[row.ID],
		})
		p.CreatedAt = row.CreatedAt
		p.Gallery = galleries[row.ID]
		if p.Gallery == nil {
			p.Gallery = []string{}
		}
		p.Prices = prices[row.ID]
		if p.Prices == nil {
			p.Prices = []catalog.Price{}
		}
		products[i] = p
	}
	return products, nil
}

func (r *ProductRepository) loadGalleries(productIDs []string) (map[string][]string, error) {
	var rows []catalogEntity.GalleryImage
	err := r.db.
		Where("product_id IN ?", productIDs).
		Order("product_id, sort_order ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load galleries: %w", err)
	}
	out := make(map[string][]string)
	for _, row := range rows {
		out[row.ProductID] = append(out[row.ProductID], row.ImageURL)
	}
	return out, nil
}

func (r *ProductRepository) loadPrices(productIDs []string) (map[string][]catalog.Price, error) {
	var rows []catalogEntity.Price
	if err := r.db.Where("product_id IN ?", productIDs).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load prices: %w", err)
	}
	out := make(map[string][]catalog.Price)
	for _, row := range rows {
		out[row.ProductID] = append(out[row.ProductID], catalog.Price{
			ID:             row.ID,
			ProductID:      row.ProductID,
			Amount:         row.Amount,
			CurrencyLabel:  row.CurrencyLabel,
			CurrencySymbol: row.CurrencySymbol,
			CreatedAt:      row.CreatedAt,
		})
	}
	return out, nil
}

// loadAttributes runs the attribute+item join for all products at once and
// groups the flat rows by product, then by attribute id.
func (r *ProductRepository) loadAttributes(productIDs []string) (map[string][]catalog.Attribute, error) {
	var rows []attributeJoinRow
	err := r.db.Raw(`
		SELECT pa.product_id, a.id AS attribute_id, a.name, a.type,
		       ai.id AS item_id, ai.display_value, ai.value
		FROM attributes a
		INNER JOIN product_attributes pa ON a.id = pa.attribute_id
		INNER JOIN attribute_items ai ON a.id = ai.attribute_id
		WHERE pa.product_id IN ?
		ORDER BY pa.product_id, a.name, ai.display_value`, productIDs).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load attributes: %w", err)
	}

	out := make(map[string][]catalog.Attribute)
	index := make(map[string]map[string]int) // product id -> attribute id -> slice index
	for _, row := range rows {
		attrs := index[row.ProductID]
		if attrs == nil {
			attrs = make(map[string]int)
			index[row.ProductID] = attrs
		}
		i, ok := attrs[row.AttributeID]
		if !ok {
			attr, err := catalog.NewAttribute(row.AttributeID, row.Name, row.Type)
			if err != nil {
				return nil, fmt.Errorf("hydrate attribute %q: %w", row.AttributeID, err)
			}
			out[row.ProductID] = append(out[row.ProductID], attr)
			i = len(out[row.ProductID]) - 1
			attrs[row.AttributeID] = i
		}
		out[row.ProductID][i].Items = append(out[row.ProductID][i].Items, catalog.AttributeItem{
			ID:           row.ItemID,
			AttributeID:  row.AttributeID,
			DisplayValue: row.DisplayValue,
			Value:        row.Value,
		})
	}
	return out, nil
}
