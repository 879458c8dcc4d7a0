package service

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pageza/nutristack/backend/internal/models"
	"github.com/pageza/nutristack/backend/internal/types"
)

// Dosing policy. These ratios are product decisions, not clinical guidance.
const (
	SupplementProteinShare = 0.6
	MassProteinMultiplier  = 1.2
	CutProteinMultiplier   = 0.9

	DefaultProteinServingGrams = 30.0
	DefaultServingGrams        = 30.0
	CreatineDailyGrams         = 5.0
	VitaminDailyGrams          = 2.0
	FatBurnerDailyGrams        = 1.5

	AminoGramsPerSession       = 10.0
	PreWorkoutGramsPerSession  = 15.0
	PostWorkoutGramsPerSession = 30.0

	MinimumDailyGrams     = 1.0
	ReferencePackageGrams = 1000.0
	DefaultDurationDays   = 30
	DailyFrequency        = 7
)

// WorkoutFrequency estimates weekly training sessions from the activity level.
func WorkoutFrequency(level models.ActivityLevel) int {
	switch level {
	case models.ActivityVeryHigh:
		return 6
	case models.ActivityHigh:
		return 5
	default:
		return 3
	}
}

// AminoTrainingDays is the weekly number of days amino acids are taken.
func AminoTrainingDays(level models.ActivityLevel) int {
	if level == models.ActivityHigh || level == models.ActivityVeryHigh {
		return 6
	}
	return 4
}

// DailyAmountRule derives grams per day for one product type.
type DailyAmountRule func(product *models.Product, needs types.NutritionalNeeds, profile *models.HealthProfile) float64

var dailyAmountRules = map[models.ProductType]DailyAmountRule{
	models.ProductProtein: proteinDailyGrams,
	models.ProductCreatine: func(*models.Product, types.NutritionalNeeds, *models.HealthProfile) float64 {
		return CreatineDailyGrams
	},
	models.ProductAmino: func(_ *models.Product, _ types.NutritionalNeeds, profile *models.HealthProfile) float64 {
		return float64(AminoTrainingDays(profile.Activity())) / 7 * AminoGramsPerSession
	},
	models.ProductPreWorkout: func(_ *models.Product, _ types.NutritionalNeeds, profile *models.HealthProfile) float64 {
		return float64(WorkoutFrequency(profile.Activity())) / 7 * PreWorkoutGramsPerSession
	},
	models.ProductPostWorkout: func(_ *models.Product, _ types.NutritionalNeeds, profile *models.HealthProfile) float64 {
		return float64(WorkoutFrequency(profile.Activity())) / 7 * PostWorkoutGramsPerSession
	},
	models.ProductVitamin: func(*models.Product, types.NutritionalNeeds, *models.HealthProfile) float64 {
		return VitaminDailyGrams
	},
	models.ProductFatBurner: func(*models.Product, types.NutritionalNeeds, *models.HealthProfile) float64 {
		return FatBurnerDailyGrams
	},
	models.ProductOther: servingDailyGrams,
}

// proteinDailyGrams assumes supplements cover a fixed share of total protein need.
// Product protein is read per 100 g.
func proteinDailyGrams(product *models.Product, needs types.NutritionalNeeds, profile *models.HealthProfile) float64 {
	grams := DefaultProteinServingGrams
	if product.Protein > 0 {
		grams = needs.Protein * SupplementProteinShare / product.Protein * 100
	}
	switch profile.GoalOrEmpty() {
	case models.GoalMass:
		grams *= MassProteinMultiplier
	case models.GoalCut:
		grams *= CutProteinMultiplier
	}
	return grams
}

func servingDailyGrams(product *models.Product, _ types.NutritionalNeeds, _ *models.HealthProfile) float64 {
	if grams, ok := ParseServingSize(product.ServingSize); ok {
		return grams
	}
	return DefaultServingGrams
}

// DailyAmountGrams returns the rounded daily dose of a product, never below the minimum.
// Unknown product types are dosed like "other".
func DailyAmountGrams(product *models.Product, needs types.NutritionalNeeds, profile *models.HealthProfile) float64 {
	rule, ok := dailyAmountRules[models.ProductType(strings.ToLower(string(product.Type)))]
	if !ok {
		rule = dailyAmountRules[models.ProductOther]
	}
	grams := rule(product, needs, profile)
	if math.IsNaN(grams) || math.IsInf(grams, 0) || grams < MinimumDailyGrams {
		grams = MinimumDailyGrams
	}
	return round2(grams)
}

// FrequencyPerWeek is 7 for daily products and the workout frequency for
// workout-contingent ones.
func FrequencyPerWeek(productType models.ProductType, profile *models.HealthProfile) int {
	switch productType {
	case models.ProductPreWorkout, models.ProductPostWorkout, models.ProductAmino:
		return WorkoutFrequency(profile.Activity())
	}
	return DailyFrequency
}

var (
	servingPattern   = regexp.MustCompile(`^\s*(\d[\d,]*(?:\.\d+)?)\s*([a-zA-Z]*)`)
	thousandsPattern = regexp.MustCompile(`^\d{1,3}(?:,\d{3})+(?:\.\d+)?$`)
)

// grams per unit; units not listed leave the number as is
var servingUnits = map[string]float64{
	"mg":     0.001,
	"g":      1,
	"gr":     1,
	"gram":   1,
	"grams":  1,
	"kg":     1000,
	"oz":     28.349523125,
	"lb":     453.59237,
	"lbs":    453.59237,
	"mcg":    0.000001,
	"ug":     0.000001,
	"scoop":  1,
	"scoops": 1,
}

// ParseServingSize reads the leading amount of a free-text serving size and
// converts it to grams. "30g" and "30 g" give 30, "500mg" gives 0.5, "1,000mg" gives 1.
func ParseServingSize(serving *string) (float64, bool) {
	if serving == nil {
		return 0, false
	}
	m := servingPattern.FindStringSubmatch(*serving)
	if m == nil {
		return 0, false
	}
	value, err := strconv.ParseFloat(normalizeNumber(m[1]), 64)
	if err != nil || value <= 0 {
		return 0, false
	}
	if factor, ok := servingUnits[strings.ToLower(m[2])]; ok {
		value *= factor
	}
	return value, true
}

// normalizeNumber reads "1,000" and "1,000.5" as thousands groups and any other
// comma as a decimal separator.
func normalizeNumber(n string) string {
	if thousandsPattern.MatchString(n) {
		return strings.ReplaceAll(n, ",", "")
	}
	return strings.Replace(n, ",", ".", 1)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
