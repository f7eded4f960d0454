package models

import "bmidash.org/internal/bmi"

// ClassificationEntry is the classifier's answer for one BMI value.
type ClassificationEntry struct {
	BMI        float64 `json:"bmi"`
	CategoryID int     `json:"categoryId"`
	Color      string  `json:"color"`
}

func NewClassificationEntry(value float64) ClassificationEntry {
	c := bmi.Classify(value)
	return ClassificationEntry{BMI: value, CategoryID: c.Index, Color: c.Color}
}

// CalculationEntry is the calculator view. BMI and CategoryID are null unless
// Status is "ok".
type CalculationEntry struct {
	Height      *float64 `json:"height"`
	Weight      *float64 `json:"weight"`
	Status      string   `json:"status"`
	BMI         *float64 `json:"bmi"`
	CategoryID  *int     `json:"categoryId"`
	Color       string   `json:"color,omitempty"`
	Text        string   `json:"text"`
	Attribution string   `json:"attribution,omitempty"`
}

func NewCalculationEntry(height, weight *float64, r bmi.Result) CalculationEntry {
	entry := CalculationEntry{
		Height: height,
		Weight: weight,
		Status: r.Status.String(),
		Text:   r.Text(),
	}
	if r.Status == bmi.StatusOK {
		value := r.Value
		id := r.Category.Index
		entry.BMI = &value
		entry.CategoryID = &id
		entry.Color = r.Category.Color
		entry.Attribution = bmi.Attribution
	}
	return entry
}
