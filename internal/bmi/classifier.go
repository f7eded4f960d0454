package bmi

import (
	"math"
	"strconv"
)

// Category is one of the eight WHO BMI bands. Lower is inclusive and Upper is
// exclusive; the first band has no lower bound and the last has no upper bound.
type Category struct {
	Index int
	Label string
	Color string
	Lower float64
	Upper float64
}

// RangeText renders the band for legends, e.g. "18.5 ≤ BMI < 25".
func (c Category) RangeText() string {
	switch {
	case math.IsInf(c.Lower, -1):
		return "BMI < " + formatBound(c.Upper)
	case math.IsInf(c.Upper, 1):
		return "BMI ≥ " + formatBound(c.Lower)
	default:
		return formatBound(c.Lower) + " ≤ BMI < " + formatBound(c.Upper)
	}
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

const (
	SevereThinness = iota
	ModerateThinness
	MildThinness
	NormalRange
	PreObese
	ObeseClassI
	ObeseClassII
	ObeseClassIII
)

var categories = [...]Category{
	{Index: SevereThinness, Label: "Underweight (Severe thinness)", Color: "Red", Lower: math.Inf(-1), Upper: 16},
	{Index: ModerateThinness, Label: "Underweight (Moderate thinness)", Color: "Orange", Lower: 16, Upper: 17},
	{Index: MildThinness, Label: "Underweight (Mild thinness)", Color: "Yellow", Lower: 17, Upper: 18.5},
	{Index: NormalRange, Label: "Normal range", Color: "Green", Lower: 18.5, Upper: 25},
	{Index: PreObese, Label: "Overweight (Pre-obese)", Color: "Yellow", Lower: 25, Upper: 30},
	{Index: ObeseClassI, Label: "Obese (Class I)", Color: "Orange", Lower: 30, Upper: 35},
	{Index: ObeseClassII, Label: "Obese (Class II)", Color: "Red", Lower: 35, Upper: 40},
	{Index: ObeseClassIII, Label: "Obese (Class III)", Color: "Purple", Lower: 40, Upper: math.Inf(1)},
}

// Categories returns the eight bands in ascending order. The returned slice is
// a copy; the table itself is never mutated.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories[:])
	return out
}

// CategoryAt returns the band with the given index, or false if out of range.
func CategoryAt(index int) (Category, bool) {
	if index < 0 || index >= len(categories) {
		return Category{}, false
	}
	return categories[index], true
}

// Classify maps a BMI onto its band. Negative values land in the lowest band
// and anything that matches no bounded band (including NaN) lands in Class III.
func Classify(bmi float64) Category {
	switch {
	case bmi < 16:
		return categories[SevereThinness]
	case bmi < 17:
		return categories[ModerateThinness]
	case bmi < 18.5:
		return categories[MildThinness]
	case bmi < 25:
		return categories[NormalRange]
	case bmi < 30:
		return categories[PreObese]
	case bmi < 35:
		return categories[ObeseClassI]
	case bmi < 40:
		return categories[ObeseClassII]
	default:
		return categories[ObeseClassIII]
	}
}

// Color is shorthand for Classify(bmi).Color.
func Color(bmi float64) string {
	return Classify(bmi).Color
}
