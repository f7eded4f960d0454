package models

import "bmidash.org/internal/bmi"

// DistributionEntry is one bar of the histogram.
type DistributionEntry struct {
	CategoryID int     `json:"categoryId"`
	Count      int     `json:"count"`
	Frequency  float64 `json:"frequency"`
}

func NewDistributionEntries(d bmi.Distribution) []DistributionEntry {
	entries := make([]DistributionEntry, 0, len(d.Buckets))
	for _, b := range d.Buckets {
		entries = append(entries, DistributionEntry{
			CategoryID: b.Category.Index,
			Count:      b.Count,
			Frequency:  b.Frequency,
		})
	}
	return entries
}
