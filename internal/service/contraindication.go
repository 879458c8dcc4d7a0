package service

import (
	"fmt"
	"strings"

	"github.com/pageza/nutristack/backend/internal/models"
)

// MatchesContraindication reports whether a disease or medication string overlaps a
// contraindication key. Matching is a case-insensitive substring test in either direction.
func MatchesContraindication(term, key string) bool {
	t := strings.ToLower(strings.TrimSpace(term))
	k := strings.ToLower(strings.TrimSpace(key))
	if t == "" || k == "" {
		return false
	}
	return strings.Contains(t, k) || strings.Contains(k, t)
}

// matchContraindications returns the contraindications hit by any of the given terms,
// keeping the order of contraindications.
func matchContraindications(contraindications []models.Contraindication, terms ...[]string) []models.Contraindication {
	var matched []models.Contraindication
	for _, c := range contraindications {
		if anyTermMatches(c.Name, terms...) {
			matched = append(matched, c)
		}
	}
	return matched
}

func anyTermMatches(key string, terms ...[]string) bool {
	for _, group := range terms {
		for _, term := range group {
			if MatchesContraindication(term, key) {
				return true
			}
		}
	}
	return false
}

func hasHighSeverity(matched []models.Contraindication) bool {
	for _, c := range matched {
		if strings.EqualFold(string(c.Severity), string(models.SeverityHigh)) {
			return true
		}
	}
	return false
}

func contraindicationWarning(c models.Contraindication) string {
	switch models.Severity(strings.ToLower(string(c.Severity))) {
	case models.SeverityHigh:
		return fmt.Sprintf("Not recommended with %s", c.Name)
	case models.SeverityMedium:
		return fmt.Sprintf("Use with caution: %s", c.Name)
	default:
		return fmt.Sprintf("Minor interaction noted: %s", c.Name)
	}
}

func contraindicationNames(matched []models.Contraindication) []string {
	names := make([]string, 0, len(matched))
	for _, c := range matched {
		names = append(names, c.Name)
	}
	return names
}
