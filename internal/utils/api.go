package utils

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
)

func invalidField(key string) string {
	return fmt.Sprintf("Invalid field value for field %q.", key)
}

// ParseOptionalFloatParam retrieves a float64 value from the provided URL query
// parameters and records an error for key in fieldErrors if it is invalid. An
// absent or blank value yields nil. NaN and infinities are rejected.
func ParseOptionalFloatParam(params url.Values, key string, fieldErrors map[string][]string) (*float64, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	raw := strings.TrimSpace(params.Get(key))
	if raw == "" {
		return nil, fieldErrors
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		fieldErrors[key] = append(fieldErrors[key], invalidField(key))
		return nil, fieldErrors
	}
	return &f, fieldErrors
}

// ParseIntParam returns def when key is absent.
func ParseIntParam(params url.Values, key string, def int, fieldErrors map[string][]string) (int, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	raw := strings.TrimSpace(params.Get(key))
	if raw == "" {
		return def, fieldErrors
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], invalidField(key))
		return def, fieldErrors
	}
	return n, fieldErrors
}

// ParseBoolParam accepts the strconv.ParseBool spellings; anything else,
// including absence, is false.
func ParseBoolParam(params url.Values, key string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(params.Get(key)))
	return err == nil && b
}
