package product

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
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
		&catalogEntity.Product{},
		&catalogEntity.Attribute{},
		&catalogEntity.AttributeItem{},
		&catalogEntity.ProductAttribute{},
		&catalogEntity.GalleryImage{},
		&catalogEntity.Price{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, id, name, brand, category string, inStock bool) {
	t.Helper()
	desc := "Description of " + name
	row := catalogEntity.Product{ID: id, Name: name, Brand: brand, Description: &desc, Category: category, InStock: inStock}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("create product %q: %v", id, err)
	}
}

func seedSizeAttribute(t *testing.T, db *gorm.DB, productID string) {
	t.Helper()
	attr := catalogEntity.Attribute{ID: "size", Name: "Size", Type: "text"}
	if err := db.FirstOrCreate(&attr, "id = ?", attr.ID).Error; err != nil {
		t.Fatalf("create attribute: %v", err)
	}
	items := []catalogEntity.AttributeItem{
		{ID: "size-40", AttributeID: "size", DisplayValue: "40", Value: "40"},
		{ID: "size-41", AttributeID: "size", DisplayValue: "41", Value: "41"},
	}
	for _, item := range items {
		if err := db.FirstOrCreate(&item, "id = ?", item.ID).Error; err != nil {
			t.Fatalf("create item %q: %v", item.ID, err)
		}
	}
	link := catalogEntity.ProductAttribute{ProductID: productID, AttributeID: "size"}
	if err := db.Create(&link).Error; err != nil {
		t.Fatalf("link attribute: %v", err)
	}
}

func seedGallery(t *testing.T, db *gorm.DB, productID string, urls ...string) {
	t.Helper()
	for i, u := range urls {
		row := catalogEntity.GalleryImage{ProductID: productID, ImageURL: u, SortOrder: i}
		if err := db.Create(&row).Error; err != nil {
			t.Fatalf("create gallery row: %v", err)
		}
	}
}

func seedPrice(t *testing.T, db *gorm.DB, productID, amount string) {
	t.Helper()
	row := catalogEntity.Price{
		ProductID:      productID,
		Amount:         decimal.RequireFromString(amount),
		CurrencyLabel:  "USD",
		CurrencySymbol: "$",
	}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("create price: %v", err)
	}
}

func TestProductRepository_FindByID_HydratesVariant(t *testing.T) {
	db := testDB(t)
	repo := NewProductRepository(db)

	seedProduct(t, db, "shoes", "Runner Shoes", "Nike", "clothes", true)
	seedSizeAttribute(t, db, "shoes")
	seedGallery(t, db, "shoes", "https://cdn.test/shoes-1.jpg", "https://cdn.test/shoes-2.jpg")
	seedPrice(t, db, "shoes", "144.69")

	seedProduct(t, db, "ps-5", "PlayStation 5", "Sony", "tech", true)

	shoes, err := repo.FindByID("shoes")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if shoes == nil {
		t.Fatal("shoes not found")
	}
	if shoes.Kind != catalog.ProductConfigurable {
		t.Errorf("kind = %s, want configurable", shoes.Kind)
	}
	if !shoes.HasConfigurableOptions() {
		t.Error("HasConfigurableOptions = false")
	}
	if len(shoes.Attributes) != 1 || len(shoes.Attributes[0].Items) != 2 {
		t.Fatalf("attributes = %+v", shoes.Attributes)
	}
	if len(shoes.Gallery) != 2 || shoes.Gallery[0] != "https://cdn.test/shoes-1.jpg" {
		t.Errorf("gallery = %v", shoes.Gallery)
	}
	if len(shoes.Prices) != 1 || shoes.Prices[0].Formatted() != "$144.69" {
		t.Errorf("prices = %+v", shoes.Prices)
	}

	ps5, err := repo.FindByID("ps-5")
	if err != nil {
		t.Fatalf("FindByID ps-5: %v", err)
	}
	if ps5.Kind != catalog.ProductSimple {
		t.Errorf("ps-5 kind = %s, want simple", ps5.Kind)
	}
	if ps5.Gallery == nil || ps5.Prices == nil || len(ps5.Gallery) != 0 {
		t.Errorf("ps-5 relations = %v, %v", ps5.Gallery, ps5.Prices)
	}

	missing, err := repo.FindByID("nope")
	if err != nil {
		t.Fatalf("FindByID missing: %v", err)
	}
	if missing != nil {
		t.Errorf("missing = %+v, want nil", missing)
	}
}

func TestProductRepository_GallerySortedBySortOrder(t *testing.T) {
	db := testDB(t)
	repo := NewProductRepository(db)
	seedProduct(t, db, "ps-5", "PlayStation 5", "Sony", "tech", true)

	// inserted out of order so sort_order, not rowid, decides the result
	rows := []catalogEntity.GalleryImage{
		{ProductID: "ps-5", ImageURL: "https://cdn.test/ps5-3.jpg", SortOrder: 2},
		{ProductID: "ps-5", ImageURL: "https://cdn.test/ps5-1.jpg", SortOrder: 0},
		{ProductID: "ps-5", ImageURL: "https://cdn.test/ps5-2.jpg", SortOrder: 1},
	}
	for _, row := range rows {
		if err := db.Create(&row).Error; err != nil {
			t.Fatalf("create gallery row: %v", err)
		}
	}

	loaded, err := repo.FindByID("ps-5")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if loaded == nil {
		t.Fatal("ps-5 not found")
	}
	want := []string{
		"https://cdn.test/ps5-1.jpg",
		"https://cdn.test/ps5-2.jpg",
		"https://cdn.test/ps5-3.jpg",
	}
	if len(loaded.Gallery) != len(want) {
		t.Fatalf("gallery = %v", loaded.Gallery)
	}
	for i, url := range want {
		if loaded.Gallery[i] != url {
			t.Errorf("gallery[%d] = %q, want %q", i, loaded.Gallery[i], url)
		}
	}
}

func TestProductRepository_FindByCategory(t *testing.T) {
	db := testDB(t)
	repo := NewProductRepository(db)
	seedProduct(t, db, "ps-5", "PlayStation 5", "Sony", "tech", true)
	seedProduct(t, db, "jacket", "Jacket", "Canada Goose", "clothes", true)

	tech, err := repo.FindByCategory("tech")
	if err != nil {
		t.Fatalf("FindByCategory: %v", err)
	}
	if len(tech) != 1 || tech[0].ID != "ps-5" {
		t.Fatalf("tech = %+v", tech)
	}

	// "all" is virtual: every product qualifies
	all, err := repo.FindByCategory("all")
	if err != nil {
		t.Fatalf("FindByCategory all: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("all len = %d, want 2", len(all))
	}

	empty, err := repo.FindByCategory("nope")
	if err != nil {
		t.Fatalf("FindByCategory nope: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("nope len = %d, want 0", len(empty))
	}
}

func TestProductRepository_FindInStock(t *testing.T) {
	db := testDB(t)
	repo := NewProductRepository(db)
	seedProduct(t, db, "ps-5", "PlayStation 5", "Sony", "tech", true)
	seedProduct(t, db, "xbox", "Xbox Series X", "Microsoft", "tech", false)

	products, err := repo.FindInStock()
	if err != nil {
		t.Fatalf("FindInStock: %v", err)
	}
	if len(products) != 1 || products[0].ID != "ps-5" {
		t.Fatalf("products = %+v", products)
	}
}

func TestProductRepository_SearchByText(t *testing.T) {
	db := testDB(t)
	repo := NewProductRepository(db)
	seedProduct(t, db, "ps-5", "PlayStation 5", "Sony", "tech", true)
	seedProduct(t, db, "jacket", "Winter Jacket", "Canada Goose", "clothes", true)

	byName, err := repo.SearchByText("station")
	if err != nil {
		t.Fatalf("SearchByText: %v", err)
	}
	if len(byName) != 1 || byName[0].ID != "ps-5" {
		t.Fatalf("byName = %+v", byName)
	}

	byBrand, err := repo.SearchByText("goose")
	if err != nil {
		t.Fatalf("SearchByText brand: %v", err)
	}
	if len(byBrand) != 1 || byBrand[0].ID != "jacket" {
		t.Fatalf("byBrand = %+v", byBrand)
	}

	byDescription, err := repo.SearchByText("description of winter")
	if err != nil {
		t.Fatalf("SearchByText description: %v", err)
	}
	if len(byDescription) != 1 || byDescription[0].ID != "jacket" {
		t.Fatalf("byDescription = %+v", byDescription)
	}

	none, err := repo.SearchByText("zzz")
	if err != nil {
		t.Fatalf("SearchByText none: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("none = %+v", none)
	}
}

func TestProductRepository_FindWithAttributes(t *testing.T) {
	db := testDB(t)
	repo := NewProductRepository(db)
	seedProduct(t, db, "shoes", "Runner Shoes", "Nike", "clothes", true)
	seedSizeAttribute(t, db, "shoes")
	seedProduct(t, db, "ps-5", "PlayStation 5", "Sony", "tech", true)

	matched, err := repo.FindWithAttributes(map[string][]string{"Size": {"40"}})
	if err != nil {
		t.Fatalf("FindWithAttributes: %v", err)
	}
	if len(matched) != 1 || matched[0].ID != "shoes" {
		t.Fatalf("matched = %+v", matched)
	}

	none, err := repo.FindWithAttributes(map[string][]string{"Size": {"99"}})
	if err != nil {
		t.Fatalf("FindWithAttributes none: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("none = %+v", none)
	}
}

func TestProductRepository_FindConfigurableAndSimple(t *testing.T) {
	db := testDB(t)
	repo := NewProductRepository(db)
	seedProduct(t, db, "shoes", "Runner Shoes", "Nike", "clothes", true)
	seedSizeAttribute(t, db, "shoes")
	seedProduct(t, db, "ps-5", "PlayStation 5", "Sony", "tech", true)

	configurable, err := repo.FindConfigurable()
	if err != nil {
		t.Fatalf("FindConfigurable: %v", err)
	}
	if len(configurable) != 1 || configurable[0].ID != "shoes" {
		t.Fatalf("configurable = %+v", configurable)
	}

	simple, err := repo.FindSimple()
	if err != nil {
		t.Fatalf("FindSimple: %v", err)
	}
	if len(simple) != 1 || simple[0].ID != "ps-5" {
		t.Fatalf("simple = %+v", simple)
	}
}

func TestProductRepository_CountByCategory(t *testing.T) {
	db := testDB(t)
	repo := NewProductRepository(db)
	seedProduct(t, db, "ps-5", "PlayStation 5", "Sony", "tech", true)
	seedProduct(t, db, "xbox", "Xbox Series X", "Microsoft", "tech", false)
	seedProduct(t, db, "jacket", "Jacket", "Canada Goose", "clothes", true)

	counts, err := repo.CountByCategory()
	if err != nil {
		t.Fatalf("CountByCategory: %v", err)
	}
	if counts["tech"] != 2 || counts["clothes"] != 1 {
		t.Errorf("counts = %v", counts)
	}
}

func TestProductRepository_SaveUpsertsAndDeleteCascades(t *testing.T) {
	db := testDB(t)
	repo := NewProductRepository(db)

	p := catalog.NewProduct(catalog.ProductData{
		ID: "ps-5", Name: "PlayStation 5", Brand: "Sony", Category: "tech", InStock: true,
	})
	if err := repo.Save(&p); err != nil {
		t.Fatalf("Save: %v", err)
	}

	p.Name = "PlayStation 5 Slim"
	if err := repo.Save(&p); err != nil {
		t.Fatalf("Save update: %v", err)
	}
	loaded, err := repo.FindByID("ps-5")
	if err != nil || loaded == nil {
		t.Fatalf("FindByID: %v", err)
	}
	if loaded.Name != "PlayStation 5 Slim" {
		t.Errorf("name = %q", loaded.Name)
	}

	invalid := catalog.NewProduct(catalog.ProductData{ID: "x"})
	if err := repo.Save(&invalid); err == nil {
		t.Error("Save accepted an invalid product")
	}

	seedGallery(t, db, "ps-5", "https://cdn.test/ps5.jpg")
	seedPrice(t, db, "ps-5", "499.99")
	if err := repo.Delete("ps-5"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	var galleryCount, priceCount int64
	db.Model(&catalogEntity.GalleryImage{}).Where("product_id = ?", "ps-5").Count(&galleryCount)
	db.Model(&catalogEntity.Price{}).Where("product_id = ?", "ps-5").Count(&priceCount)
	if galleryCount != 0 || priceCount != 0 {
		t.Errorf("orphans left: gallery=%d prices=%d", galleryCount, priceCount)
	}
}
