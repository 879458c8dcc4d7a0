package service

import (
	"testing"

	"github.com/pageza/nutristack/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func goalPtr(g models.Goal) *models.Goal { return &g }

func activityPtr(a models.ActivityLevel) *models.ActivityLevel { return &a }

func TestMatchesContraindication(t *testing.T) {
	tests := []struct {
		name string
		term string
		key  string
		want bool
	}{
		{"exact", "diabetes", "diabetes", true},
		{"case insensitive", "Diabetes", "DIABETES", true},
		{"term contains key", "type 2 diabetes", "diabetes", true},
		{"key contains term", "kidney", "chronic kidney disease", true},
		{"no overlap", "asthma", "diabetes", false},
		{"empty term", "", "diabetes", false},
		{"blank key", "diabetes", "  ", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesContraindication(tt.term, tt.key))
		})
	}
}

func TestScoreClampsAtZero(t *testing.T) {
	rules := []ScoringRule{
		func(ScoreInput) []ScoreTerm { return []ScoreTerm{{Delta: -80}} },
	}
	res := Score(rules, ScoreInput{Product: &models.Product{}})
	assert.Equal(t, 0, res.Score)
	assert.Equal(t, -30, res.Raw)
}

func TestScoreFoldsInRuleOrder(t *testing.T) {
	rules := []ScoringRule{
		func(ScoreInput) []ScoreTerm { return []ScoreTerm{{Delta: 5, Reason: "first"}} },
		func(ScoreInput) []ScoreTerm { return nil },
		func(ScoreInput) []ScoreTerm {
			return []ScoreTerm{{Delta: -2, Warning: "careful"}, {Delta: 1, Reason: "second"}}
		},
	}
	res := Score(rules, ScoreInput{Product: &models.Product{}})
	assert.Equal(t, 54, res.Score)
	assert.Equal(t, []string{"first", "second"}, res.Reasons)
	assert.Equal(t, []string{"careful"}, res.Warnings)
}

func TestDefaultRulesCutGoal(t *testing.T) {
	product := &models.Product{
		Type:     models.ProductProtein,
		Protein:  25,
		Calories: 120,
		Fats:     2,
		Brand:    &models.Brand{Verified: true},
	}
	profile := &models.HealthProfile{Goal: goalPtr(models.GoalCut), ActivityLevel: activityPtr(models.ActivityHigh)}

	res := Score(DefaultScoringRules(), ScoreInput{Product: product, Profile: profile})

	assert.Equal(t, 80, res.Score)
	assert.Equal(t, []string{
		"Lean protein source for a calorie deficit",
		"Low fat content",
		"Verified brand",
	}, res.Reasons)
}

func TestDefaultRulesPerGoal(t *testing.T) {
	tests := []struct {
		name     string
		goal     models.Goal
		product  models.Product
		expected int
	}{
		{"mass protein", models.GoalMass, models.Product{Type: models.ProductProtein, Protein: 24, Calories: 120}, 70},
		{"mass creatine dense", models.GoalMass, models.Product{Type: models.ProductCreatine, Calories: 250}, 70},
		{"cut fat burner", models.GoalCut, models.Product{Type: models.ProductFatBurner, Fats: 10}, 65},
		{"endurance amino", models.GoalEndurance, models.Product{Type: models.ProductAmino}, 70},
		{"endurance carb-heavy pre workout", models.GoalEndurance, models.Product{Type: models.ProductPreWorkout, Carbs: 25}, 70},
		{"maintain vitamin", models.GoalMaintain, models.Product{Type: models.ProductVitamin, Calories: 10}, 75},
		{"maintain dense protein", models.GoalMaintain, models.Product{Type: models.ProductProtein, Calories: 400}, 65},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := &models.HealthProfile{Goal: goalPtr(tt.goal)}
			res := Score(DefaultScoringRules(), ScoreInput{Product: &tt.product, Profile: profile})
			assert.Equal(t, tt.expected, res.Score)
		})
	}
}

func TestDefaultRulesActivity(t *testing.T) {
	tests := []struct {
		level    models.ActivityLevel
		product  models.ProductType
		expected int
	}{
		{models.ActivityVeryHigh, models.ProductPostWorkout, 65},
		{models.ActivityHigh, models.ProductAmino, 60},
		{models.ActivityModerate, models.ProductProtein, 55},
		{models.ActivityLow, models.ProductVitamin, 60},
		{models.ActivityLow, models.ProductProtein, 50},
	}
	for _, tt := range tests {
		t.Run(string(tt.level)+"/"+string(tt.product), func(t *testing.T) {
			profile := &models.HealthProfile{ActivityLevel: activityPtr(tt.level)}
			res := Score(DefaultScoringRules(), ScoreInput{Product: &models.Product{Type: tt.product}, Profile: profile})
			assert.Equal(t, tt.expected, res.Score)
		})
	}
}

func TestDefaultRulesSkipMissingProfileFields(t *testing.T) {
	res := Score(DefaultScoringRules(), ScoreInput{
		Product: &models.Product{Type: models.ProductProtein, Protein: 30},
		Profile: &models.HealthProfile{},
	})
	assert.Equal(t, 50, res.Score)
	assert.Empty(t, res.Reasons)

	res = Score(DefaultScoringRules(), ScoreInput{Product: &models.Product{Type: models.ProductProtein}})
	assert.Equal(t, 50, res.Score)
}

func TestContraindicationPenalties(t *testing.T) {
	matched := []models.Contraindication{
		{Name: "hypertension", Severity: models.SeverityMedium},
		{Name: "asthma", Severity: models.SeverityLow},
	}
	res := Score(DefaultScoringRules(), ScoreInput{Product: &models.Product{}, Matched: matched})
	assert.Equal(t, 10, res.Score)
	assert.Len(t, res.Warnings, 2)

	matched = append(matched, models.Contraindication{Name: "kidney disease", Severity: models.SeverityHigh})
	res = Score(DefaultScoringRules(), ScoreInput{Product: &models.Product{}, Matched: matched})
	assert.Equal(t, 0, res.Score)
	assert.Equal(t, -90, res.Raw)
	assert.Contains(t, res.Warnings, "Not recommended with kidney disease")
}

func TestMatchContraindicationsKeepsOrder(t *testing.T) {
	cs := []models.Contraindication{
		{Name: "pregnancy", Severity: models.SeverityHigh},
		{Name: "diabetes", Severity: models.SeverityMedium},
		{Name: "warfarin", Severity: models.SeverityHigh},
	}
	matched := matchContraindications(cs, []string{"Type 1 Diabetes"}, []string{"warfarin 5mg"})
	assert.Equal(t, []string{"diabetes", "warfarin"}, contraindicationNames(matched))
	assert.True(t, hasHighSeverity(matched))
	assert.False(t, hasHighSeverity(matched[:1]))
}
