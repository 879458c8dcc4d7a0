package service

import (
	"strings"

	"github.com/pageza/nutristack/backend/internal/models"
)

const (
	baseScore = 50

	highSeverityPenalty   = -100
	mediumSeverityPenalty = -30
	lowSeverityPenalty    = -10

	verifiedBrandBonus = 5
)

// ScoreInput is everything a scoring rule may look at. Matched holds the product's
// contraindications that hit the user's diseases.
type ScoreInput struct {
	Product *models.Product
	Profile *models.HealthProfile
	Matched []models.Contraindication
}

// ScoreTerm is one adjustment produced by a rule. Reason and Warning are optional.
type ScoreTerm struct {
	Delta   int
	Reason  string
	Warning string
}

// ScoringRule yields zero or more terms for a candidate.
type ScoringRule func(in ScoreInput) []ScoreTerm

// ScoreResult is the folded outcome of a rule table.
type ScoreResult struct {
	Score    int
	Raw      int
	Reasons  []string
	Warnings []string
}

// Score folds rules over the input in order, starting at the base score.
// The emitted Score is clamped at zero; Raw keeps the unclamped sum.
func Score(rules []ScoringRule, in ScoreInput) ScoreResult {
	res := ScoreResult{Raw: baseScore, Reasons: []string{}, Warnings: []string{}}
	for _, rule := range rules {
		for _, term := range rule(in) {
			res.Raw += term.Delta
			if term.Reason != "" {
				res.Reasons = append(res.Reasons, term.Reason)
			}
			if term.Warning != "" {
				res.Warnings = append(res.Warnings, term.Warning)
			}
		}
	}
	res.Score = res.Raw
	if res.Score < 0 {
		res.Score = 0
	}
	return res
}

// DefaultScoringRules is the rule table used for recommendations:
// contraindications, then the goal, then activity, then brand.
func DefaultScoringRules() []ScoringRule {
	return []ScoringRule{
		contraindicationRule,
		goalRule(goalTerms),
		activityRule(activityTerms),
		verifiedBrandRule,
	}
}

func contraindicationRule(in ScoreInput) []ScoreTerm {
	terms := make([]ScoreTerm, 0, len(in.Matched))
	for _, c := range in.Matched {
		terms = append(terms, ScoreTerm{
			Delta:   severityPenalty(c.Severity),
			Warning: contraindicationWarning(c),
		})
	}
	return terms
}

func severityPenalty(s models.Severity) int {
	switch models.Severity(strings.ToLower(string(s))) {
	case models.SeverityHigh:
		return highSeverityPenalty
	case models.SeverityMedium:
		return mediumSeverityPenalty
	case models.SeverityLow:
		return lowSeverityPenalty
	}
	return 0
}

func verifiedBrandRule(in ScoreInput) []ScoreTerm {
	if in.Product.HasVerifiedBrand() {
		return []ScoreTerm{{Delta: verifiedBrandBonus, Reason: "Verified brand"}}
	}
	return nil
}

type productCondition func(p *models.Product) bool

type goalTerm struct {
	goal      models.Goal
	condition productCondition
	delta     int
	reason    string
}

type activityTerm struct {
	levels    []models.ActivityLevel
	condition productCondition
	delta     int
	reason    string
}

func ofType(types ...models.ProductType) productCondition {
	return func(p *models.Product) bool {
		for _, t := range types {
			if p.Type == t {
				return true
			}
		}
		return false
	}
}

func all(conds ...productCondition) productCondition {
	return func(p *models.Product) bool {
		for _, c := range conds {
			if !c(p) {
				return false
			}
		}
		return true
	}
}

// Macros are read per serving.
var goalTerms = []goalTerm{
	{models.GoalMass, all(ofType(models.ProductProtein), func(p *models.Product) bool { return p.Protein >= 20 }), 20, "High protein content supports muscle growth"},
	{models.GoalMass, ofType(models.ProductCreatine), 15, "Creatine supports strength and mass gain"},
	{models.GoalMass, func(p *models.Product) bool { return p.Calories > 200 }, 5, "Calorie-dense serving helps reach a surplus"},

	{models.GoalCut, all(ofType(models.ProductProtein), func(p *models.Product) bool { return p.Calories < 150 }), 20, "Lean protein source for a calorie deficit"},
	{models.GoalCut, ofType(models.ProductFatBurner), 15, "Supports fat loss goals"},
	{models.GoalCut, func(p *models.Product) bool { return p.Fats < 5 }, 5, "Low fat content"},

	{models.GoalEndurance, ofType(models.ProductAmino), 20, "Amino acids support endurance recovery"},
	{models.GoalEndurance, ofType(models.ProductPostWorkout, models.ProductPreWorkout), 15, "Supports sustained training sessions"},
	{models.GoalEndurance, func(p *models.Product) bool { return p.Carbs >= 20 }, 5, "Carbohydrates fuel endurance work"},

	{models.GoalMaintain, ofType(models.ProductVitamin), 20, "Covers micronutrient needs for maintenance"},
	{models.GoalMaintain, ofType(models.ProductProtein), 15, "Helps maintain daily protein intake"},
	{models.GoalMaintain, func(p *models.Product) bool { return p.Calories < 200 }, 5, "Moderate calorie content"},
}

var activityTerms = []activityTerm{
	{[]models.ActivityLevel{models.ActivityHigh, models.ActivityVeryHigh}, ofType(models.ProductPostWorkout), 15, "Supports recovery from intense training"},
	{[]models.ActivityLevel{models.ActivityHigh, models.ActivityVeryHigh}, ofType(models.ProductAmino), 10, "Amino acids aid recovery at high training volume"},
	{[]models.ActivityLevel{models.ActivityModerate}, ofType(models.ProductProtein), 5, "Protein supports moderate training"},
	{[]models.ActivityLevel{models.ActivityLow}, ofType(models.ProductVitamin), 10, "Vitamins support general health at low activity"},
}

func goalRule(table []goalTerm) ScoringRule {
	return func(in ScoreInput) []ScoreTerm {
		goal := in.Profile.GoalOrEmpty()
		if goal == "" {
			return nil
		}
		var terms []ScoreTerm
		for _, t := range table {
			if t.goal == goal && t.condition(in.Product) {
				terms = append(terms, ScoreTerm{Delta: t.delta, Reason: t.reason})
			}
		}
		return terms
	}
}

func activityRule(table []activityTerm) ScoringRule {
	return func(in ScoreInput) []ScoreTerm {
		level := in.Profile.Activity()
		if level == "" {
			return nil
		}
		var terms []ScoreTerm
		for _, t := range table {
			if containsLevel(t.levels, level) && t.condition(in.Product) {
				terms = append(terms, ScoreTerm{Delta: t.delta, Reason: t.reason})
			}
		}
		return terms
	}
}

func containsLevel(levels []models.ActivityLevel, level models.ActivityLevel) bool {
	for _, l := range levels {
		if l == level {
			return true
		}
	}
	return false
}
