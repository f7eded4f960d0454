package bmi

import "math"

// Point is a (height, weight) pair on a constant-BMI curve.
type Point struct {
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
}

// HeightRange is a half-open range of whole centimeters [Min, Max).
type HeightRange struct {
	Min int
	Max int
}

// DefaultHeightRange covers 50 through 259 cm.
var DefaultHeightRange = HeightRange{Min: 50, Max: 260}

// Len is the number of integer heights in the range.
func (r HeightRange) Len() int {
	if r.Max <= r.Min {
		return 0
	}
	return r.Max - r.Min
}

// WeightFor returns the weight that yields bmi at the given height, rounded to
// two decimals.
func WeightFor(bmi, heightCm float64) float64 {
	meters := heightCm / 100
	return Round2(bmi * meters * meters)
}

// GenerateCurve returns one point per integer centimeter in r, in ascending
// height order.
func GenerateCurve(bmi float64, r HeightRange) []Point {
	points := make([]Point, 0, r.Len())
	for h := r.Min; h < r.Max; h++ {
		height := float64(h)
		points = append(points, Point{Height: height, Weight: WeightFor(bmi, height)})
	}
	return points
}

// PointAt snaps height to the nearest whole centimeter inside r and returns
// the matching curve point. An empty range yields the zero Point.
func PointAt(bmi, heightCm float64, r HeightRange) Point {
	if r.Len() == 0 {
		return Point{}
	}

	h := math.Round(heightCm)
	if math.IsNaN(h) || h < float64(r.Min) {
		h = float64(r.Min)
	}
	if h > float64(r.Max-1) {
		h = float64(r.Max - 1)
	}
	return Point{Height: h, Weight: WeightFor(bmi, h)}
}
