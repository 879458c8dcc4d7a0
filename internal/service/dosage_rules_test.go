package service

import (
	"testing"

	"github.com/pageza/nutristack/backend/internal/models"
	"github.com/pageza/nutristack/backend/internal/types"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestParseServingSize(t *testing.T) {
	tests := []struct {
		in     *string
		grams  float64
		parsed bool
	}{
		{strPtr("30g"), 30, true},
		{strPtr("5 g"), 5, true},
		{strPtr("1.5 g"), 1.5, true},
		{strPtr("2,5g"), 2.5, true},
		{strPtr("500mg"), 0.5, true},
		{strPtr("1,000mg"), 1, true},
		{strPtr("2,500 mg"), 2.5, true},
		{strPtr("1,000,000 mcg"), 1, true},
		{strPtr("1,250.5g"), 1250.5, true},
		{strPtr("1,00g"), 1, true},
		{strPtr("1,0005g"), 1.0005, true},
		{strPtr("1 kg"), 1000, true},
		{strPtr("2 scoops (60g)"), 2, true},
		{strPtr("3 capsules"), 3, true},
		{strPtr("one scoop"), 0, false},
		{strPtr(""), 0, false},
		{strPtr("0g"), 0, false},
		{nil, 0, false},
	}
	for _, tt := range tests {
		name := "<nil>"
		if tt.in != nil {
			name = *tt.in
		}
		t.Run(name, func(t *testing.T) {
			grams, ok := ParseServingSize(tt.in)
			assert.Equal(t, tt.parsed, ok)
			assert.InDelta(t, tt.grams, grams, 1e-9)
		})
	}
}

func TestDailyAmountGramsPerType(t *testing.T) {
	needs := types.NutritionalNeeds{Protein: 180}
	high := &models.HealthProfile{ActivityLevel: activityPtr(models.ActivityHigh)}
	veryHigh := &models.HealthProfile{ActivityLevel: activityPtr(models.ActivityVeryHigh)}
	low := &models.HealthProfile{ActivityLevel: activityPtr(models.ActivityLow)}

	tests := []struct {
		name     string
		product  models.Product
		profile  *models.HealthProfile
		expected float64
	}{
		{"protein without goal", models.Product{Type: models.ProductProtein, Protein: 25}, nil, 432},
		{"protein mass", models.Product{Type: models.ProductProtein, Protein: 80}, &models.HealthProfile{Goal: goalPtr(models.GoalMass)}, 162},
		{"protein unknown macros", models.Product{Type: models.ProductProtein}, nil, 30},
		{"protein unknown macros cut", models.Product{Type: models.ProductProtein}, &models.HealthProfile{Goal: goalPtr(models.GoalCut)}, 27},
		{"creatine", models.Product{Type: models.ProductCreatine}, veryHigh, 5},
		{"amino high", models.Product{Type: models.ProductAmino}, high, 8.57},
		{"amino low", models.Product{Type: models.ProductAmino}, low, 5.71},
		{"pre workout very high", models.Product{Type: models.ProductPreWorkout}, veryHigh, 12.86},
		{"pre workout high", models.Product{Type: models.ProductPreWorkout}, high, 10.71},
		{"pre workout unknown activity", models.Product{Type: models.ProductPreWorkout}, nil, 6.43},
		{"post workout high", models.Product{Type: models.ProductPostWorkout}, high, 21.43},
		{"vitamin", models.Product{Type: models.ProductVitamin}, nil, 2},
		{"fat burner", models.Product{Type: models.ProductFatBurner}, nil, 1.5},
		{"other with serving", models.Product{Type: models.ProductOther, ServingSize: strPtr("12 g")}, nil, 12},
		{"other unparseable", models.Product{Type: models.ProductOther, ServingSize: strPtr("a handful")}, nil, 30},
		{"other tiny serving floors", models.Product{Type: models.ProductOther, ServingSize: strPtr("500mg")}, nil, 1},
		{"unknown type", models.Product{Type: "gainer"}, nil, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, DailyAmountGrams(&tt.product, needs, tt.profile), 1e-9)
		})
	}
}

func TestDailyAmountGramsFloor(t *testing.T) {
	product := &models.Product{Type: models.ProductProtein, Protein: 25}
	assert.Equal(t, MinimumDailyGrams, DailyAmountGrams(product, types.NutritionalNeeds{}, nil))
}

func TestFrequencyPerWeek(t *testing.T) {
	high := &models.HealthProfile{ActivityLevel: activityPtr(models.ActivityHigh)}
	assert.Equal(t, 7, FrequencyPerWeek(models.ProductProtein, high))
	assert.Equal(t, 5, FrequencyPerWeek(models.ProductPreWorkout, high))
	assert.Equal(t, 5, FrequencyPerWeek(models.ProductAmino, high))
	assert.Equal(t, 3, FrequencyPerWeek(models.ProductPostWorkout, nil))
	assert.Equal(t, 6, FrequencyPerWeek(models.ProductPostWorkout, &models.HealthProfile{ActivityLevel: activityPtr(models.ActivityVeryHigh)}))
}

func TestPackagesNeeded(t *testing.T) {
	assert.Equal(t, 1, packagesNeeded(150, 150))
	assert.Equal(t, 2, packagesNeeded(150.5, 150))
	assert.Equal(t, 12, packagesNeeded(388.8*30, 1000))
	assert.Equal(t, 0, packagesNeeded(0, 1000))
}
