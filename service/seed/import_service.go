package seed

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storefront.GO/model/catalog"
	catalogEntity "storefront.GO/model/entity/catalog"
)

// Options configures a seed run.
type Options struct {
	// Force rewrites products that already exist instead of skipping them.
	Force bool
}

// Result holds counters and warnings from a seed run.
type Result struct {
	Categories    int
	Products      int
	Skipped       int
	Attributes    int
	Prices        int
	GalleryImages int
	Warnings      []string
	TotalTime     time.Duration
}

// Import reads a seed document from r and loads it into the catalog tables
// in a single transaction. Re-running with the same document is a no-op
// unless opts.Force is set.
func Import(db *gorm.DB, r io.Reader, opts Options) (*Result, error) {
	start := time.Now()

	var raw map[string]interface{}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode seed document: %w", err)
	}
	var doc Document
	if err := mapstructure.Decode(raw, &doc); err != nil {
		return nil, fmt.Errorf("map seed document: %w", err)
	}
	if err := validator.New().Struct(doc); err != nil {
		return nil, fmt.Errorf("validate seed document: %w", err)
	}

	result := &Result{}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := seedCategories(tx, doc.Data.Categories, result); err != nil {
			return err
		}
		for _, p := range doc.Data.Products {
			if err := seedProduct(tx, p, opts, result); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.TotalTime = time.Since(start)
	return result, nil
}

func seedCategories(tx *gorm.DB, docs []CategoryDoc, result *Result) error {
	names := []string{"all"}
	seen := map[string]bool{"all": true}
	for _, c := range docs {
		if !seen[c.Name] {
			seen[c.Name] = true
			names = append(names, c.Name)
		}
	}
	for _, name := range names {
		cat := catalog.NewCategory(name)
		if !cat.Validate() {
			return fmt.Errorf("seed category %q: invalid name", name)
		}
		row := catalogEntity.Category{Name: name}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&row).Error
		if err != nil {
			return fmt.Errorf("seed category %q: %w", name, err)
		}
		result.Categories++
	}
	return nil
}

func seedProduct(tx *gorm.DB, doc ProductDoc, opts Options, result *Result) error {
	var count int64
	if err := tx.Model(&catalogEntity.Product{}).Where("id = ?", doc.ID).Count(&count).Error; err != nil {
		return fmt.Errorf("seed product %q: %w", doc.ID, err)
	}
	if count > 0 && !opts.Force {
		result.Skipped++
		return nil
	}

	attrs := make([]catalog.Attribute, 0, len(doc.Attributes))
	for _, a := range doc.Attributes {
		attr, err := buildAttribute(a)
		if err != nil {
			return fmt.Errorf("seed product %q: %w", doc.ID, err)
		}
		attrs = append(attrs, attr)
	}

	product := catalog.NewProduct(catalog.ProductData{
		ID:          doc.ID,
		Name:        doc.Name,
		Brand:       doc.Brand,
		Description: doc.Description,
		Category:    doc.Category,
		InStock:     doc.InStock,
		Attributes:  attrs,
	})
	if !product.Validate() {
		return fmt.Errorf("seed product %q: invalid product", doc.ID)
	}

	row := catalogEntity.Product{
		ID:       doc.ID,
		Name:     doc.Name,
		Brand:    doc.Brand,
		Category: doc.Category,
		InStock:  doc.InStock,
	}
	if doc.Description != "" {
		row.Description = &doc.Description
	}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "brand", "description", "category", "in_stock"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("seed product %q: %w", doc.ID, err)
	}
	result.Products++

	if err := seedGallery(tx, doc, result); err != nil {
		return err
	}
	if err := seedPrices(tx, doc, result); err != nil {
		return err
	}
	return seedAttributes(tx, doc.ID, attrs, result)
}

// buildAttribute turns an attribute document into a validated variant. Swatch
// values are normalized through the attribute's value pipeline, so "FF0000"
// and "#ff0000" land in the same canonical form.
func buildAttribute(doc AttributeDoc) (catalog.Attribute, error) {
	attr, err := catalog.NewAttribute(doc.ID, doc.Name, doc.Type)
	if err != nil {
		return catalog.Attribute{}, err
	}
	for _, item := range doc.Items {
		value, err := attr.ProcessValue(item.Value)
		if err != nil {
			return catalog.Attribute{}, fmt.Errorf("attribute %q item %q: %w", doc.ID, item.ID, err)
		}
		attr.Items = append(attr.Items, catalog.AttributeItem{
			ID:           item.ID,
			AttributeID:  doc.ID,
			DisplayValue: item.DisplayValue,
			Value:        value,
		})
	}
	if !attr.Validate() {
		return catalog.Attribute{}, fmt.Errorf("attribute %q: invalid", doc.ID)
	}
	return attr, nil
}

func seedGallery(tx *gorm.DB, doc ProductDoc, result *Result) error {
	if err := tx.Delete(&catalogEntity.GalleryImage{}, "product_id = ?", doc.ID).Error; err != nil {
		return fmt.Errorf("seed gallery for %q: %w", doc.ID, err)
	}
	for i, url := range doc.Gallery {
		entry := catalog.GalleryEntry{ProductID: doc.ID, ImageURL: url, SortOrder: i}
		if !entry.Validate() {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("product %q: gallery image %d has an invalid URL, skipping", doc.ID, i))
			continue
		}
		row := catalogEntity.GalleryImage{
			ProductID: doc.ID,
			ImageURL:  url,
			SortOrder: i,
		}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("seed gallery for %q: %w", doc.ID, err)
		}
		result.GalleryImages++
	}
	return nil
}

func seedPrices(tx *gorm.DB, doc ProductDoc, result *Result) error {
	if err := tx.Delete(&catalogEntity.Price{}, "product_id = ?", doc.ID).Error; err != nil {
		return fmt.Errorf("seed prices for %q: %w", doc.ID, err)
	}
	seen := make(map[string]bool, len(doc.Prices))
	for _, p := range doc.Prices {
		if seen[p.Currency.Label] {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("product %q: duplicate price for currency %s", doc.ID, p.Currency.Label))
		}
		seen[p.Currency.Label] = true

		price := catalog.Price{
			ProductID:      doc.ID,
			Amount:         decimal.NewFromFloat(p.Amount),
			CurrencyLabel:  p.Currency.Label,
			CurrencySymbol: p.Currency.Symbol,
		}
		if !price.Validate() {
			return fmt.Errorf("seed prices for %q: invalid price in %s", doc.ID, p.Currency.Label)
		}
		row := catalogEntity.Price{
			ProductID:      doc.ID,
			Amount:         price.Amount,
			CurrencyLabel:  price.CurrencyLabel,
			CurrencySymbol: price.CurrencySymbol,
		}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("seed prices for %q: %w", doc.ID, err)
		}
		result.Prices++
	}
	return nil
}

func seedAttributes(tx *gorm.DB, productID string, attrs []catalog.Attribute, result *Result) error {
	for _, attr := range attrs {
		row := catalogEntity.Attribute{
			ID:   attr.ID,
			Name: attr.Name,
			Type: string(attr.Kind),
		}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "type"}),
		}).Create(&row).Error
		if err != nil {
			return fmt.Errorf("seed attribute %q: %w", attr.ID, err)
		}
		for _, item := range attr.Items {
			itemRow := catalogEntity.AttributeItem{
				ID:           item.ID,
				AttributeID:  attr.ID,
				DisplayValue: item.DisplayValue,
				Value:        item.Value,
			}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"display_value", "value"}),
			}).Create(&itemRow).Error
			if err != nil {
				return fmt.Errorf("seed attribute item %q: %w", item.ID, err)
			}
		}
		link := catalogEntity.ProductAttribute{ProductID: productID, AttributeID: attr.ID}
		err = tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error
		if err != nil {
			return fmt.Errorf("link attribute %q to %q: %w", attr.ID, productID, err)
		}
		result.Attributes++
	}
	return nil
}
