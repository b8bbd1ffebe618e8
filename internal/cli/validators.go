package cli

import (
	"fmt"
	"strings"
)

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml"}
	for _, valid := range validFormats {
		if format == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidateEstimateName validates an estimate name
func ValidateEstimateName(name string) error {
	if name == "" {
		return fmt.Errorf("estimate name cannot be empty")
	}

	// Check for invalid characters
	invalidChars := []string{"/", "\\", "..", "~", "$", "`"}
	for _, char := range invalidChars {
		if strings.Contains(name, char) {
			return fmt.Errorf("estimate name contains invalid character: %s", char)
		}
	}

	return nil
}

// NormalizeEstimateFilename appends the .yaml extension when the
// argument names an estimate without one.
func NormalizeEstimateFilename(name string) string {
	if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
		return name
	}
	return name + ".yaml"
}

// Contains checks if a string is in a slice
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
