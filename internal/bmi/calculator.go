package bmi

import (
	"errors"
	"fmt"
	"math"
)

const (
	// MissingDataMessage is shown when either calculator input is unset.
	MissingDataMessage = "Please enter your data"
	// ZeroHeightMessage is shown when the height would divide by zero.
	ZeroHeightMessage = "Height must be greater than zero"
	// Attribution is the footnote rendered under every classification.
	Attribution = "(According to WHO)"
)

var ErrZeroHeight = errors.New("height must be greater than zero")

// Status describes which branch of the calculator produced a Result.
type Status int

const (
	StatusOK Status = iota
	StatusMissing
	StatusInvalid
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusMissing:
		return "missing"
	case StatusInvalid:
		return "invalid"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the calculator's view. Category and Value are only meaningful when
// Status is StatusOK; otherwise Message carries the placeholder to render.
type Result struct {
	Status   Status
	Value    float64
	Category Category
	Message  string
}

// Text is the headline line, e.g. "Normal range (23.15)".
func (r Result) Text() string {
	if r.Status != StatusOK {
		return r.Message
	}
	return fmt.Sprintf("%s (%.2f)", r.Category.Label, r.Value)
}

// Compute returns weight / (height/100)^2 rounded to two decimals. Negative
// inputs are not rejected; only a zero height is.
func Compute(heightCm, weightKg float64) (float64, error) {
	if heightCm == 0 {
		return 0, ErrZeroHeight
	}
	meters := heightCm / 100
	return Round2(weightKg / (meters * meters)), nil
}

// Calculate runs the height/weight calculator. Either input may be nil.
func Calculate(heightCm, weightKg *float64) Result {
	if heightCm == nil || weightKg == nil {
		return Result{Status: StatusMissing, Message: MissingDataMessage}
	}

	value, err := Compute(*heightCm, *weightKg)
	if err != nil {
		return Result{Status: StatusInvalid, Message: ZeroHeightMessage}
	}

	return Result{
		Status:   StatusOK,
		Value:    value,
		Category: Classify(value),
	}
}

// roundLimit is where float64 spacing exceeds 0.01, so rounding to two
// decimals cannot change the value any more.
const roundLimit = 1e15

// Round2 rounds to two decimal places, half away from zero. Values too large
// to carry a fractional part are returned unchanged.
func Round2(v float64) float64 {
	if math.Abs(v) >= roundLimit {
		return v
	}
	return math.Round(v*100) / 100
}
