package testhelpers

import (
	"context"
	"testing"

	"github.com/pageza/nutristack/backend/internal/models"
	"gorm.io/gorm"
)

// Catalog is a small product/store dataset shared by repository and API tests.
type Catalog struct {
	Brand        models.Brand
	KidneyRisk   models.Contraindication
	Whey         models.Product
	Creatine     models.Product
	Discontinued models.Product
	WheyTub      models.ProductPackage
	WheyBag      models.ProductPackage
	Budget       models.Store
	Premium      models.Store
	Closed       models.Store
}

func ptr[T any](v T) *T { return &v }

// SeedCatalog writes the Catalog fixture:
//   - whey is sold in a 2 kg tub and a 1 kg bag, by Budget and Premium
//   - creatine has no packages and is only stocked by Budget
//   - Closed is inactive but lists whey cheapest
func SeedCatalog(t *testing.T, db *gorm.DB) Catalog {
	t.Helper()
	ctx := context.Background()

	c := Catalog{
		Brand:      models.Brand{Name: "Iron Labs", Verified: true},
		KidneyRisk: models.Contraindication{Name: "kidney disease", Severity: models.SeverityHigh},
	}
	mustCreate(t, db.WithContext(ctx), &c.Brand)
	mustCreate(t, db.WithContext(ctx), &c.KidneyRisk)

	c.Whey = models.Product{
		Name: "Whey Isolate", Type: models.ProductProtein, Protein: 85, Calories: 110,
		ServingSize: ptr("30g"), IsAvailable: true, BrandID: &c.Brand.ID,
	}
	c.Creatine = models.Product{
		Name: "Creatine Monohydrate", Type: models.ProductCreatine, ServingSize: ptr("5 g"),
		IsAvailable: true, Contraindications: []models.Contraindication{c.KidneyRisk},
	}
	c.Discontinued = models.Product{Name: "Old Formula", Type: models.ProductVitamin}
	mustCreate(t, db, &c.Whey)
	mustCreate(t, db, &c.Creatine)
	mustCreate(t, db, &c.Discontinued)
	// gorm skips zero-valued bools with a default tag on insert
	if err := db.Model(&c.Discontinued).Update("is_available", false).Error; err != nil {
		t.Fatalf("failed to mark product unavailable: %v", err)
	}

	c.WheyTub = models.ProductPackage{ProductID: c.Whey.ID, Name: "2 kg tub", WeightGrams: ptr(2000.0), Servings: ptr(66)}
	c.WheyBag = models.ProductPackage{ProductID: c.Whey.ID, Name: "1 kg bag", WeightGrams: ptr(1000.0), Servings: ptr(33)}
	mustCreate(t, db, &c.WheyTub)
	mustCreate(t, db, &c.WheyBag)

	c.Budget = models.Store{Name: "Budget Nutrition", IsActive: true, DeliveryFee: ptr(4.99), MinOrderAmount: ptr(30.0)}
	c.Premium = models.Store{Name: "Premium Supplements", IsActive: true}
	c.Closed = models.Store{Name: "Closed Shop", IsActive: true}
	mustCreate(t, db, &c.Budget)
	mustCreate(t, db, &c.Premium)
	mustCreate(t, db, &c.Closed)
	if err := db.Model(&c.Closed).Update("is_active", false).Error; err != nil {
		t.Fatalf("failed to close store: %v", err)
	}

	prices := []models.ProductPrice{
		{ProductID: c.Whey.ID, StoreID: c.Budget.ID, PackageID: &c.WheyTub.ID, Price: 59.9, DiscountPrice: ptr(49.9), InStock: true},
		{ProductID: c.Whey.ID, StoreID: c.Budget.ID, PackageID: &c.WheyBag.ID, Price: 32, InStock: true},
		{ProductID: c.Whey.ID, StoreID: c.Premium.ID, PackageID: &c.WheyTub.ID, Price: 69, InStock: true},
		{ProductID: c.Whey.ID, StoreID: c.Closed.ID, PackageID: &c.WheyTub.ID, Price: 10, InStock: true},
		{ProductID: c.Creatine.ID, StoreID: c.Budget.ID, Price: 19.5, InStock: true},
		{ProductID: c.Creatine.ID, StoreID: c.Premium.ID, Price: 15, InStock: true},
	}
	for i := range prices {
		mustCreate(t, db, &prices[i])
	}
	// Premium is out of creatine
	if err := db.Model(&models.ProductPrice{}).
		Where("product_id = ? AND store_id = ?", c.Creatine.ID, c.Premium.ID).
		Update("in_stock", false).Error; err != nil {
		t.Fatalf("failed to mark price out of stock: %v", err)
	}

	return c
}

func mustCreate(t *testing.T, db *gorm.DB, value interface{}) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("failed to create %T: %v", value, err)
	}
}
