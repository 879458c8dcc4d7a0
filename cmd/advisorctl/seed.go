package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/pageza/nutristack/backend/config"
	"github.com/pageza/nutristack/backend/internal/models"
	"github.com/pageza/nutristack/backend/internal/repository"
)

type seedProduct struct {
	product  models.Product
	packages []models.ProductPackage
	// store name -> price per package index, -1 for a price without package
	prices map[string]map[int]float64
}

func ptr[T any](v T) *T { return &v }

var seedStores = []models.Store{
	{Name: "Budget Nutrition", Website: "https://budget-nutrition.example", DeliveryFee: ptr(4.99), MinOrderAmount: ptr(30.0), IsActive: true},
	{Name: "Muscle Depot", Website: "https://muscle-depot.example", DeliveryFee: ptr(2.5), IsActive: true},
	{Name: "Pharma Plus", Website: "https://pharma-plus.example", MinOrderAmount: ptr(50.0), IsActive: true},
}

var seedContraindications = []models.Contraindication{
	{Name: "kidney disease", Severity: models.SeverityHigh, Description: "Increased renal load"},
	{Name: "hypertension", Severity: models.SeverityMedium, Description: "Stimulants raise blood pressure"},
	{Name: "warfarin", Severity: models.SeverityHigh, Description: "Interacts with vitamin K"},
	{Name: "lactose intolerance", Severity: models.SeverityLow, Description: "Contains milk derivatives"},
}

func seedProducts(brand *models.Brand, contra map[string]models.Contraindication) []seedProduct {
	return []seedProduct{
		{
			product: models.Product{
				Name: "Whey Isolate", Type: models.ProductProtein, Protein: 85, Carbs: 4, Fats: 1, Calories: 370,
				ServingSize: ptr("30 g"), IsAvailable: true, BrandID: &brand.ID,
				Contraindications: []models.Contraindication{contra["lactose intolerance"]},
			},
			packages: []models.ProductPackage{
				{Name: "1 kg bag", WeightGrams: ptr(1000.0), Servings: ptr(33)},
				{Name: "2.27 kg tub", WeightGrams: ptr(2270.0), Servings: ptr(75)},
			},
			prices: map[string]map[int]float64{
				"Budget Nutrition": {0: 29.9, 1: 59.9},
				"Muscle Depot":     {0: 32.5, 1: 62.0},
			},
		},
		{
			product: models.Product{
				Name: "Creatine Monohydrate", Type: models.ProductCreatine, ServingSize: ptr("5 g"), IsAvailable: true,
				BrandID: &brand.ID, Contraindications: []models.Contraindication{contra["kidney disease"]},
			},
			packages: []models.ProductPackage{{Name: "500 g tub", WeightGrams: ptr(500.0), Servings: ptr(100)}},
			prices: map[string]map[int]float64{
				"Budget Nutrition": {0: 19.9},
				"Muscle Depot":     {0: 17.5},
				"Pharma Plus":      {-1: 24.0},
			},
		},
		{
			product: models.Product{
				Name: "Ignite Pre-Workout", Type: models.ProductPreWorkout, Carbs: 5, Calories: 20, ServingSize: ptr("15 g"),
				IsAvailable: true, Contraindications: []models.Contraindication{contra["hypertension"]},
			},
			packages: []models.ProductPackage{{Name: "450 g tub", WeightGrams: ptr(450.0), Servings: ptr(30)}},
			prices: map[string]map[int]float64{
				"Muscle Depot": {0: 34.9},
			},
		},
		{
			product: models.Product{
				Name: "Daily Multivitamin", Type: models.ProductVitamin, ServingSize: ptr("2 g"), IsAvailable: true,
				Contraindications: []models.Contraindication{contra["warfarin"]},
			},
			prices: map[string]map[int]float64{
				"Budget Nutrition": {-1: 9.9},
				"Pharma Plus":      {-1: 12.5},
			},
		},
		{
			product: models.Product{
				Name: "BCAA 2:1:1", Type: models.ProductAmino, ServingSize: ptr("10 g"), IsAvailable: true, BrandID: &brand.ID,
			},
			packages: []models.ProductPackage{{Name: "400 g tub", WeightGrams: ptr(400.0), Servings: ptr(40)}},
			prices: map[string]map[int]float64{
				"Budget Nutrition": {0: 21.0},
				"Muscle Depot":     {0: 23.9},
			},
		},
	}
}

// seedDemoCatalog writes the demo catalog once and returns the ids of the seeded
// products. It returns no ids when the catalog was already present.
func seedDemoCatalog(ctx context.Context, db *gorm.DB) ([]uuid.UUID, error) {
	var existing models.Brand
	err := db.WithContext(ctx).Where("name = ?", "Iron Labs").First(&existing).Error
	if err == nil {
		return nil, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var seeded []uuid.UUID
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		products := repository.NewProductRepository(tx)
		stores := repository.NewStoreRepository(tx)

		brand := &models.Brand{Name: "Iron Labs", Verified: true}
		if err := products.CreateBrand(ctx, brand); err != nil {
			return fmt.Errorf("failed to create brand: %w", err)
		}

		contra := make(map[string]models.Contraindication, len(seedContraindications))
		for _, c := range seedContraindications {
			c := c
			if err := products.CreateContraindication(ctx, &c); err != nil {
				return fmt.Errorf("failed to create contraindication %s: %w", c.Name, err)
			}
			contra[c.Name] = c
		}

		storeIDs := make(map[string]models.Store, len(seedStores))
		for _, st := range seedStores {
			st := st
			if err := stores.CreateStore(ctx, &st); err != nil {
				return fmt.Errorf("failed to create store %s: %w", st.Name, err)
			}
			storeIDs[st.Name] = st
		}

		for _, sp := range seedProducts(brand, contra) {
			p := sp.product
			if err := products.CreateProduct(ctx, &p); err != nil {
				return fmt.Errorf("failed to create product %s: %w", p.Name, err)
			}
			seeded = append(seeded, p.ID)
			for i := range sp.packages {
				sp.packages[i].ProductID = p.ID
				if err := stores.CreatePackage(ctx, &sp.packages[i]); err != nil {
					return fmt.Errorf("failed to create package %s: %w", sp.packages[i].Name, err)
				}
			}
			for storeName, byPackage := range sp.prices {
				for idx, amount := range byPackage {
					price := &models.ProductPrice{
						ProductID: p.ID,
						StoreID:   storeIDs[storeName].ID,
						Price:     amount,
						InStock:   true,
					}
					if idx >= 0 {
						price.PackageID = &sp.packages[idx].ID
					}
					if err := stores.CreatePrice(ctx, price); err != nil {
						return fmt.Errorf("failed to create price: %w", err)
					}
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return seeded, nil
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a demo catalog of brands, products, stores, packages and prices",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(cfg *config.Config, db *gorm.DB) error {
			seeded, err := seedDemoCatalog(cmd.Context(), db)
			if err != nil {
				return err
			}
			if len(seeded) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Demo catalog already present")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Seeded demo catalog")
			return invalidatePriceCache(cmd.Context(), cmd.ErrOrStderr(), cfg, seeded)
		})
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
