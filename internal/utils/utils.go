// Package utils contains general helper functions used across tabcopy.
package utils

import (
	"path/filepath"
	"strings"
)

// DeduplicateStrings removes duplicate values from a slice while preserving order.
// Blank values are dropped and the first occurrence of each unique value is kept.
func DeduplicateStrings(values []string) []string {
	encounteredValues := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, value := range values {
		trimmedValue := strings.TrimSpace(value)
		if trimmedValue == "" {
			continue
		}
		if _, exists := encounteredValues[trimmedValue]; !exists {
			encounteredValues[trimmedValue] = struct{}{}
			result = append(result, trimmedValue)
		}
	}
	return result
}

// ResolvePath joins a relative path onto base. Absolute paths and empty bases are returned unchanged.
func ResolvePath(base string, path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) || base == "" {
		return path
	}
	return filepath.Join(base, path)
}
