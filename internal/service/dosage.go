package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/pageza/nutristack/backend/internal/logger"
	"github.com/pageza/nutristack/backend/internal/models"
	"github.com/pageza/nutristack/backend/internal/types"
	"go.uber.org/zap"
)

// DosageService turns a product and a needs vector into daily, weekly and monthly amounts
// plus the packages that cover a duration. stores may be nil, in which case no packages
// are recommended.
type DosageService struct {
	stores StoreReader
}

func NewDosageService(stores StoreReader) *DosageService {
	return &DosageService{stores: stores}
}

// CalculateDosage never fails on missing profile fields. A zero duration means the
// default of 30 days.
func (s *DosageService) CalculateDosage(ctx context.Context, product *models.Product, needs types.NutritionalNeeds, profile *models.HealthProfile, durationDays int) (*types.DosageCalculation, error) {
	if product == nil {
		return nil, ErrProductNotFound
	}
	durationDays, err := normalizeDuration(durationDays)
	if err != nil {
		return nil, err
	}

	daily := DailyAmountGrams(product, needs, profile)
	calc := &types.DosageCalculation{
		ProductID:           product.ID,
		Product:             *product,
		DailyAmountGrams:    daily,
		DailyAmountServings: servingsPerDay(daily, product.ServingSize),
		WeeklyAmountGrams:   round2(daily * 7),
		MonthlyAmountGrams:  round2(daily * 30),
		RecommendedPackages: []types.PackageRecommendation{},
	}

	if s.stores == nil {
		return calc, nil
	}

	packages, err := s.stores.FindPackagesByProductID(ctx, product.ID)
	if err != nil {
		logger.Error("failed to load packages", zap.String("product_id", product.ID.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	calc.RecommendedPackages = s.CalculateRequiredPackages(packages, daily*float64(durationDays), durationDays)
	for i := range calc.RecommendedPackages {
		s.attachCostEstimate(ctx, product, &calc.RecommendedPackages[i])
	}

	logger.Debug("calculated dosage",
		zap.String("product_id", product.ID.String()),
		zap.Float64("daily_grams", daily),
		zap.Int("packages", len(calc.RecommendedPackages)))
	return calc, nil
}

// CalculateRequiredPackages returns, for each package of known weight, how many are needed
// to cover totalGrams. Fewest packages come first; equal counts prefer the larger package.
func (s *DosageService) CalculateRequiredPackages(packages []models.ProductPackage, totalGrams float64, durationDays int) []types.PackageRecommendation {
	recs := make([]types.PackageRecommendation, 0, len(packages))
	for _, pkg := range packages {
		if !pkg.HasWeight() {
			continue
		}
		recs = append(recs, types.PackageRecommendation{
			Package:      pkg,
			Quantity:     packagesNeeded(totalGrams, *pkg.WeightGrams),
			DurationDays: durationDays,
		})
	}
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Quantity != recs[j].Quantity {
			return recs[i].Quantity < recs[j].Quantity
		}
		return *recs[i].Package.WeightGrams > *recs[j].Package.WeightGrams
	})
	return recs
}

// CalculatePlanRequirements reduces products to the requirements pricing consumes.
func (s *DosageService) CalculatePlanRequirements(products []models.Product, needs types.NutritionalNeeds, profile *models.HealthProfile, durationDays int) ([]types.DosageRequirement, error) {
	durationDays, err := normalizeDuration(durationDays)
	if err != nil {
		return nil, err
	}
	reqs := make([]types.DosageRequirement, 0, len(products))
	for i := range products {
		p := &products[i]
		reqs = append(reqs, types.DosageRequirement{
			ProductID:        p.ID,
			DailyGrams:       DailyAmountGrams(p, needs, profile),
			DurationDays:     durationDays,
			FrequencyPerWeek: FrequencyPerWeek(p.Type, profile),
		})
	}
	return reqs, nil
}

// attachCostEstimate prices a package recommendation at the cheapest in-stock offer.
// Lookup failures leave the estimate unset.
func (s *DosageService) attachCostEstimate(ctx context.Context, product *models.Product, rec *types.PackageRecommendation) {
	pkgID := rec.Package.ID
	prices, err := s.stores.FindPriceComparison(ctx, product.ID, &pkgID)
	if err != nil {
		logger.Warn("failed to price package",
			zap.String("product_id", product.ID.String()),
			zap.String("package_id", pkgID.String()),
			zap.Error(err))
		return
	}
	cheapest, ok := cheapestUnitPrice(prices)
	if !ok {
		return
	}
	estimate := round2(cheapest * float64(rec.Quantity))
	rec.CostEstimate = &estimate
}

func cheapestUnitPrice(prices []models.ProductPrice) (float64, bool) {
	best, found := 0.0, false
	for i := range prices {
		if !prices[i].InStock {
			continue
		}
		if unit := prices[i].UnitPrice(); !found || unit < best {
			best, found = unit, true
		}
	}
	return best, found
}

func servingsPerDay(dailyGrams float64, servingSize *string) float64 {
	serving, ok := ParseServingSize(servingSize)
	if !ok {
		return 1
	}
	return round2(dailyGrams / serving)
}

// float noise must not push an exact fit into an extra package
const packageEpsilon = 1e-9

func packagesNeeded(totalGrams, packageGrams float64) int {
	if totalGrams <= 0 || packageGrams <= 0 {
		return 0
	}
	return int(math.Ceil(totalGrams/packageGrams - packageEpsilon))
}

func normalizeDuration(days int) (int, error) {
	switch {
	case days == 0:
		return DefaultDurationDays, nil
	case days < 0:
		return 0, ErrInvalidDuration
	}
	return days, nil
}
