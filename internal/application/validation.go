package application

import (
	"fmt"
	"strings"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts config keys to readable words
// (e.g., "lastfm.api_key" -> "last.fm API key")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"navidrome.api_base":         "Navidrome API base",
		"navidrome.login":            "Navidrome login",
		"lastfm.api_key":             "last.fm API key",
		"graph.match_threshold":      "match threshold",
		"expand.fetch_limit":         "fetch limit",
		"expand.reduced_fetch_limit": "reduced fetch limit",
		"expand.reduce_above":        "reduce-above size",
		"expand.request_delay":       "request delay",
		"expand.hops":                "hops",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidateUnitInterval checks that a score lies in [0, 1]
func ValidateUnitInterval(fieldName string, value float64) error {
	if value < 0 || value > 1 {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must be between 0 and 1, got %g", formatFieldName(fieldName), value),
		}
	}
	return nil
}

// ValidatePositive checks that an integer setting is at least 1
func ValidatePositive(fieldName string, value int) error {
	if value < 1 {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must be positive, got %d", formatFieldName(fieldName), value),
		}
	}
	return nil
}
