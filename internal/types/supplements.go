package types

import (
	"github.com/google/uuid"
	"github.com/pageza/nutristack/backend/internal/models"
)

// NutritionalNeeds is the daily macro target produced by the BMR/TDEE calculator.
type NutritionalNeeds struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	BMR      float64 `json:"bmr,omitempty"`
	TDEE     float64 `json:"tdee,omitempty"`
	Method   string  `json:"method,omitempty"`
}

// NeedsFromPlan converts a stored nutrition plan into a needs vector.
func NeedsFromPlan(plan *models.NutritionPlan) NutritionalNeeds {
	if plan == nil {
		return NutritionalNeeds{}
	}
	return NutritionalNeeds{
		Calories: plan.Calories,
		Protein:  plan.Protein,
		Carbs:    plan.Carbs,
		Fats:     plan.Fats,
		BMR:      plan.BMR,
		TDEE:     plan.TDEE,
		Method:   plan.Method,
	}
}

// RecommendationOptions narrows a recommendation request.
type RecommendationOptions struct {
	MaxProducts       int         `json:"max_products,omitempty"`
	ExcludeProductIDs []uuid.UUID `json:"exclude_product_ids,omitempty"`
}

// ProductRecommendation is one scored candidate.
type ProductRecommendation struct {
	Product           models.Product `json:"product"`
	Score             int            `json:"score"`
	Reasons           []string       `json:"reasons"`
	Warnings          []string       `json:"warnings"`
	Contraindications []string       `json:"contraindications"`
}

// CompatibilityResult is the outcome of checking a single product against a user.
type CompatibilityResult struct {
	ProductID         uuid.UUID `json:"product_id"`
	Compatible        bool      `json:"compatible"`
	Warnings          []string  `json:"warnings"`
	Contraindications []string  `json:"contraindications"`
}

// PackageRecommendation is how many of one package cover a duration.
type PackageRecommendation struct {
	Package      models.ProductPackage `json:"package"`
	Quantity     int                   `json:"quantity"`
	DurationDays int                   `json:"duration_days"`
	CostEstimate *float64              `json:"cost_estimate,omitempty"`
}

// DosageCalculation is the derived dosage for one product.
type DosageCalculation struct {
	ProductID           uuid.UUID               `json:"product_id"`
	Product             models.Product          `json:"product"`
	DailyAmountGrams    float64                 `json:"daily_amount_grams"`
	DailyAmountServings float64                 `json:"daily_amount_servings"`
	WeeklyAmountGrams   float64                 `json:"weekly_amount_grams"`
	MonthlyAmountGrams  float64                 `json:"monthly_amount_grams"`
	RecommendedPackages []PackageRecommendation `json:"recommended_packages"`
}

// DosageRequirement is the reduced form of a dosage that pricing consumes.
type DosageRequirement struct {
	ProductID        uuid.UUID `json:"product_id" binding:"required"`
	DailyGrams       float64   `json:"daily_grams" binding:"required,gt=0"`
	DurationDays     int       `json:"duration_days" binding:"required,gt=0"`
	FrequencyPerWeek int       `json:"frequency_per_week"`
}

// TotalGrams is the amount needed over the whole duration.
func (r DosageRequirement) TotalGrams() float64 {
	return r.DailyGrams * float64(r.DurationDays)
}

// SupplementPlan bundles every stage of the pipeline for one user request.
type SupplementPlan struct {
	UserID          uuid.UUID           `json:"user_id"`
	DurationDays    int                 `json:"duration_days"`
	Needs           NutritionalNeeds    `json:"needs"`
	Dosages         []DosageCalculation `json:"dosages"`
	Requirements    []DosageRequirement `json:"requirements"`
	ShoppingOptions []ShoppingOption    `json:"shopping_options"`
}

// PlanRequest is the body of a supplement plan request.
type PlanRequest struct {
	ProductIDs   []uuid.UUID `json:"product_ids" binding:"required,min=1"`
	DurationDays int         `json:"duration_days"`
}
