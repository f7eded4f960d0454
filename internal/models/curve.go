package models

// CurveEntry is a constant-BMI curve. Points holds the raw pairs and
// EncodedPoints the same pairs as a Google polyline of (height, weight).
type CurveEntry struct {
	BMI           float64      `json:"bmi"`
	CategoryID    int          `json:"categoryId"`
	Color         string       `json:"color"`
	MinHeight     int          `json:"minHeight"`
	MaxHeight     int          `json:"maxHeight"`
	Points        []CurvePoint `json:"points"`
	EncodedPoints string       `json:"encodedPoints"`
	Length        int          `json:"length"`
}

type CurvePoint struct {
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
}
