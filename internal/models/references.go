package models

import (
	"math"
	"sort"

	"bmidash.org/internal/bmi"
)

// ReferencesModel carries the categories that entries point to by id.
type ReferencesModel struct {
	Categories []CategoryReference `json:"categories"`
}

// CategoryReference is a category in wire form. Unbounded ends are null since
// JSON has no infinity.
type CategoryReference struct {
	ID         int      `json:"id"`
	Label      string   `json:"label"`
	Color      string   `json:"color"`
	LowerBound *float64 `json:"lowerBound"`
	UpperBound *float64 `json:"upperBound"`
}

func NewEmptyReferences() ReferencesModel {
	return ReferencesModel{Categories: []CategoryReference{}}
}

func NewCategoryReference(c bmi.Category) CategoryReference {
	ref := CategoryReference{
		ID:    c.Index,
		Label: c.Label,
		Color: c.Color,
	}
	if !math.IsInf(c.Lower, 0) {
		lower := c.Lower
		ref.LowerBound = &lower
	}
	if !math.IsInf(c.Upper, 0) {
		upper := c.Upper
		ref.UpperBound = &upper
	}
	return ref
}

// NewCategoryReferences collects each referenced category once, in category
// order. Unknown ids are skipped.
func NewCategoryReferences(ids ...int) ReferencesModel {
	seen := make(map[int]bool, len(ids))
	unique := make([]int, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}
	sort.Ints(unique)

	refs := NewEmptyReferences()
	for _, id := range unique {
		if c, ok := bmi.CategoryAt(id); ok {
			refs.Categories = append(refs.Categories, NewCategoryReference(c))
		}
	}
	return refs
}

// NewAllCategoryReferences references every category.
func NewAllCategoryReferences() ReferencesModel {
	refs := NewEmptyReferences()
	for _, c := range bmi.Categories() {
		refs.Categories = append(refs.Categories, NewCategoryReference(c))
	}
	return refs
}
