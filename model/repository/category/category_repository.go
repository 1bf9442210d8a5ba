package category

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"storefront.GO/model/catalog"
	catalogEntity "storefront.GO/model/entity/catalog"
)

// ErrInvalidCategory is returned by Save when the variant fails validation.
var ErrInvalidCategory = errors.New("invalid category")

// CategoryRepository loads category rows and hydrates them into the correct
// variant via the category factory.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// FindAll returns every category, alphabetical by name.
func (r *CategoryRepository) FindAll() ([]catalog.Category, error) {
	var rows []catalogEntity.Category
	if err := r.db.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find categories: %w", err)
	}
	return hydrateAll(rows), nil
}

func (r *CategoryRepository) FindByID(id uint) (*catalog.Category, error) {
	var row catalogEntity.Category
	err := r.db.First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category %d: %w", id, err)
	}
	c := hydrate(row)
	return &c, nil
}

func (r *CategoryRepository) FindByName(name string) (*catalog.Category, error) {
	var row catalogEntity.Category
	err := r.db.First(&row, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category %q: %w", name, err)
	}
	c := hydrate(row)
	return &c, nil
}

// FindProductCategories returns every category except the reserved "all".
func (r *CategoryRepository) FindProductCategories() ([]catalog.Category, error) {
	var rows []catalogEntity.Category
	if err := r.db.Where("name <> ?", "all").Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find product categories: %w", err)
	}
	return hydrateAll(rows), nil
}

// CategoryCount pairs a category with its in-stock product count.
type CategoryCount struct {
	Category     catalog.Category
	ProductCount int
}

// FindWithProductCounts returns all categories with the number of in-stock
// products whose category column matches each name.
func (r *CategoryRepository) FindWithProductCounts() ([]CategoryCount, error) {
	var results []struct {
		ID           uint
		Name         string
		ProductCount int
	}
	err := r.db.Raw(`
		SELECT c.id, c.name,
		       CASE WHEN c.name = 'all'
		            THEN (SELECT COUNT(*) FROM products WHERE in_stock = ?)
		            ELSE COALESCE(p.product_count, 0)
		       END AS product_count
		FROM categories c
		LEFT JOIN (
			SELECT category, COUNT(*) AS product_count
			FROM products
			WHERE in_stock = ?
			GROUP BY category
		) p ON c.name = p.category
		ORDER BY c.name ASC`, true, true).Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("find categories with counts: %w", err)
	}

	counts := make([]CategoryCount, len(results))
	for i, row := range results {
		c := catalog.NewCategory(row.Name)
		c.ID = row.ID
		counts[i] = CategoryCount{Category: c, ProductCount: row.ProductCount}
	}
	return counts, nil
}

// CountInStockProducts returns the number of in-stock products in the named
// category; "all" counts every in-stock product.
func (r *CategoryRepository) CountInStockProducts(name string) (int, error) {
	var count int64
	q := r.db.Table("products").Where("in_stock = ?", true)
	if name != "all" {
		q = q.Where("category = ?", name)
	}
	if err := q.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count products in %q: %w", name, err)
	}
	return int(count), nil
}

func (r *CategoryRepository) Exists(name string) (bool, error) {
	var count int64
	if err := r.db.Model(&catalogEntity.Category{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, fmt.Errorf("category exists %q: %w", name, err)
	}
	return count > 0, nil
}

// Save upserts by name: insert when the id is unset (the storage-assigned id
// is written back), update otherwise.
func (r *CategoryRepository) Save(c *catalog.Category) error {
	if !c.Validate() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, c.Name)
	}
	if c.ID == 0 {
		row := catalogEntity.Category{Name: c.Name}
		if err := r.db.Create(&row).Error; err != nil {
			return fmt.Errorf("create category %q: %w", c.Name, err)
		}
		c.ID = row.ID
		c.CreatedAt = row.CreatedAt
		return nil
	}
	err := r.db.Model(&catalogEntity.Category{}).
		Where("id = ?", c.ID).
		Update("name", c.Name).Error
	if err != nil {
		return fmt.Errorf("update category %d: %w", c.ID, err)
	}
	return nil
}

func (r *CategoryRepository) Delete(id uint) error {
	if err := r.db.Delete(&catalogEntity.Category{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete category %d: %w", id, err)
	}
	return nil
}

func hydrate(row catalogEntity.Category) catalog.Category {
	c := catalog.NewCategory(row.Name)
	c.ID = row.ID
	c.CreatedAt = row.CreatedAt
	return c
}

func hydrateAll(rows []catalogEntity.Category) []catalog.Category {
	out := make([]catalog.Category, len(rows))
	for i, row := range rows {
		out[i] = hydrate(row)
	}
	return out
}
