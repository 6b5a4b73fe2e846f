// Package strings provides string list utilities for configuration values.
package strings

import (
	"strings"
)

// SplitList flattens values that may each hold several sep-separated items,
// trims every item, drops empty ones and removes duplicates. Order of first
// appearance is preserved.
//
// Example:
//
//	SplitList([]string{"https://a.example, https://b.example", "https://a.example"}, ",")
//	// Returns: []string{"https://a.example", "https://b.example"}
func SplitList(values []string, sep string) []string {
	var parts []string
	for _, v := range values {
		parts = append(parts, strings.Split(v, sep)...)
	}
	return DedupeAndTrim(parts)
}

// DedupeAndTrim removes duplicates and empty strings from a slice,
// trimming whitespace from each element. Order is preserved.
func DedupeAndTrim(values []string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; !ok {
			seen[trimmed] = struct{}{}
			result = append(result, trimmed)
		}
	}

	return result
}
