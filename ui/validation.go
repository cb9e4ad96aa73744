package ui

import (
	"fmt"
	"strconv"
	"strings"
)

// parseFloat parses a decimal number, failing with a field-named error so
// malformed text is reported before any range check runs.
func parseFloat(s, fieldName string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%s cannot be empty", fieldName)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid number", fieldName)
	}
	return v, nil
}

// parseFloatInRange parses a decimal number and validates it against a
// closed interval.
func parseFloatInRange(s string, min, max float64, fieldName string) (float64, error) {
	v, err := parseFloat(s, fieldName)
	if err != nil {
		return 0, err
	}
	if v < min || v > max {
		return 0, fmt.Errorf("%s must be between %g and %g", fieldName, min, max)
	}
	return v, nil
}
