package utils

import (
	"errors"
	"math"
)

const (
	MinCurveHeight     = 1
	MaxCurveHeight     = 300
	MaxCurveRangeWidth = 300
)

// ValidateFinite rejects NaN and infinities.
func ValidateFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.New("value must be a finite number")
	}
	return nil
}

// ValidateHeightRange checks a half-open curve range [min, max).
func ValidateHeightRange(min, max int) map[string][]string {
	fieldErrors := make(map[string][]string)

	if min < MinCurveHeight || min > MaxCurveHeight {
		fieldErrors["minHeight"] = append(fieldErrors["minHeight"], "minHeight must be between 1 and 300")
	}
	if max < MinCurveHeight || max > MaxCurveHeight+1 {
		fieldErrors["maxHeight"] = append(fieldErrors["maxHeight"], "maxHeight must be between 1 and 301")
	}
	if max <= min {
		fieldErrors["maxHeight"] = append(fieldErrors["maxHeight"], "maxHeight must be greater than minHeight")
	} else if max-min > MaxCurveRangeWidth {
		fieldErrors["maxHeight"] = append(fieldErrors["maxHeight"], "height range too wide (max 300 cm)")
	}

	return fieldErrors
}
