package attribute

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"storefront.GO/model/catalog"
	catalogEntity "storefront.GO/model/entity/catalog"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&catalogEntity.Attribute{},
		&catalogEntity.AttributeItem{},
		&catalogEntity.ProductAttribute{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func sizeAttr(t *testing.T) catalog.Attribute {
	t.Helper()
	attr, err := catalog.NewAttribute("size", "Size", "text")
	if err != nil {
		t.Fatalf("NewAttribute: %v", err)
	}
	attr.Items = []catalog.AttributeItem{
		{ID: "size-40", AttributeID: "size", DisplayValue: "40", Value: "40"},
		{ID: "size-41", AttributeID: "size", DisplayValue: "41", Value: "41"},
	}
	return attr
}

func TestAttributeRepository_SaveAndFind(t *testing.T) {
	db := testDB(t)
	repo := NewAttributeRepository(db)

	attr := sizeAttr(t)
	if err := repo.Save(&attr); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// re-saving with a changed item is an upsert, not a duplicate
	attr.Items[0].DisplayValue = "EU 40"
	if err := repo.Save(&attr); err != nil {
		t.Fatalf("Save again: %v", err)
	}

	loaded, err := repo.FindByID("size")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if loaded == nil || loaded.Kind != catalog.AttributeText {
		t.Fatalf("loaded = %+v", loaded)
	}
	if len(loaded.Items) != 2 {
		t.Fatalf("items = %+v", loaded.Items)
	}

	var itemCount int64
	db.Model(&catalogEntity.AttributeItem{}).Count(&itemCount)
	if itemCount != 2 {
		t.Errorf("item rows = %d, want 2", itemCount)
	}

	missing, err := repo.FindByID("nope")
	if err != nil {
		t.Fatalf("FindByID missing: %v", err)
	}
	if missing != nil {
		t.Errorf("missing = %+v, want nil", missing)
	}
}

func TestAttributeRepository_LinkToProduct(t *testing.T) {
	db := testDB(t)
	repo := NewAttributeRepository(db)

	attr := sizeAttr(t)
	if err := repo.Save(&attr); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := repo.LinkToProduct("shoes", "size"); err != nil {
		t.Fatalf("LinkToProduct: %v", err)
	}
	// linking twice is a no-op
	if err := repo.LinkToProduct("shoes", "size"); err != nil {
		t.Fatalf("LinkToProduct twice: %v", err)
	}
	var linkCount int64
	db.Model(&catalogEntity.ProductAttribute{}).Count(&linkCount)
	if linkCount != 1 {
		t.Errorf("link rows = %d, want 1", linkCount)
	}

	attrs, err := repo.FindByProductID("shoes")
	if err != nil {
		t.Fatalf("FindByProductID: %v", err)
	}
	if len(attrs) != 1 || attrs[0].ID != "size" || len(attrs[0].Items) != 2 {
		t.Fatalf("attrs = %+v", attrs)
	}

	none, err := repo.FindByProductID("nope")
	if err != nil {
		t.Fatalf("FindByProductID nope: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("none = %+v", none)
	}
}

func TestAttributeRepository_Delete(t *testing.T) {
	db := testDB(t)
	repo := NewAttributeRepository(db)

	attr := sizeAttr(t)
	if err := repo.Save(&attr); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.LinkToProduct("shoes", "size"); err != nil {
		t.Fatalf("LinkToProduct: %v", err)
	}

	if err := repo.Delete("size"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	var attrCount, itemCount, linkCount int64
	db.Model(&catalogEntity.Attribute{}).Count(&attrCount)
	db.Model(&catalogEntity.AttributeItem{}).Count(&itemCount)
	db.Model(&catalogEntity.ProductAttribute{}).Count(&linkCount)
	if attrCount != 0 || itemCount != 0 || linkCount != 0 {
		t.Errorf("leftovers: attrs=%d items=%d links=%d", attrCount, itemCount, linkCount)
	}
}
