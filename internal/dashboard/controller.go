// Package dashboard holds the interaction state machine behind the curve chart.
//
// Every user interaction is one update cycle: the client sends the State it
// last received together with an Event, and Update returns the next State plus
// every view fragment that depends on it. Nothing is kept between cycles on the
// server.
package dashboard

import (
	"strconv"

	"bmidash.org/internal/bmi"
	"bmidash.org/internal/theme"
)

// DefaultBMI is the target BMI shown before the user edits the input.
const DefaultBMI = 20.0

// MarkerColor is the fill of both hover and click markers.
const MarkerColor = "blue"

// State is everything that survives between update cycles.
type State struct {
	BMI    *float64   `json:"bmi"`
	Clicks int        `json:"clicks"`
	Hover  *bmi.Point `json:"hover,omitempty"`
	Click  *bmi.Point `json:"click,omitempty"`
}

// DefaultState is the state of a freshly loaded page.
func DefaultState() State {
	v := DefaultBMI
	return State{BMI: &v}
}

// Dark reports whether the toggle count selects dark mode.
func (s State) Dark() bool {
	return theme.IsDark(s.Clicks)
}

// Event is one interaction. BMI is read only for TriggerBMIInput and Point only
// for TriggerHover and TriggerClick; a nil Point on hover means the pointer
// left the curve.
type Event struct {
	Trigger Trigger    `json:"trigger"`
	BMI     *float64   `json:"bmi,omitempty"`
	Point   *bmi.Point `json:"point,omitempty"`
}

type MarkerKind string

const (
	HoverMarker MarkerKind = "hover"
	ClickMarker MarkerKind = "click"
)

// Marker is a highlighted, non-interactive point drawn over the curve.
type Marker struct {
	Kind  MarkerKind `json:"kind"`
	Point bmi.Point  `json:"point"`
	Color string     `json:"color"`
}

// Curve describes the weight-for-height figure.
type Curve struct {
	BMI      float64             `json:"bmi"`
	Title    string              `json:"title"`
	Color    string              `json:"color"`
	Category string              `json:"category"`
	Points   []bmi.Point         `json:"points"`
	Markers  []Marker            `json:"markers"`
	Palette  theme.FigurePalette `json:"palette"`
	Range    bmi.HeightRange     `json:"-"`
}

// Output is the full set of fragments recomputed by one update cycle.
type Output struct {
	State       State          `json:"state"`
	Dark        bool           `json:"dark"`
	Curve       Curve          `json:"curve"`
	ToggleLabel string         `json:"toggleLabel"`
	Styles      theme.StyleSet `json:"styles"`
}

// Controller runs update cycles over a fixed height range.
type Controller struct {
	Range bmi.HeightRange
}

// NewController returns a Controller over bmi.DefaultHeightRange.
func NewController() *Controller {
	return &Controller{Range: bmi.DefaultHeightRange}
}

// Update applies ev to s and recomputes every dependent fragment.
func Update(s State, ev Event) Output {
	return NewController().Update(s, ev)
}

// Update applies ev to s and recomputes every dependent fragment. s is not
// modified.
func (c *Controller) Update(s State, ev Event) Output {
	next := State{
		BMI:    s.BMI,
		Clicks: s.Clicks,
		Click:  s.Click,
	}

	switch ev.Trigger {
	case TriggerToggle:
		next.Clicks++
	case TriggerBMIInput:
		next.BMI = ev.BMI
		next.Click = nil
	case TriggerHover:
		next.Hover = ev.Point
	case TriggerClick:
		if ev.Point != nil {
			next.Click = ev.Point
		}
	}

	target := 0.0
	if next.BMI != nil {
		target = *next.BMI
	}

	// Markers always sit on the curve currently drawn.
	if next.Hover != nil {
		p := bmi.PointAt(target, next.Hover.Height, c.Range)
		next.Hover = &p
	}
	if next.Click != nil {
		p := bmi.PointAt(target, next.Click.Height, c.Range)
		next.Click = &p
	}

	dark := next.Dark()
	return Output{
		State:       next,
		Dark:        dark,
		Curve:       c.curve(target, next, dark),
		ToggleLabel: theme.ToggleLabel(dark),
		Styles:      theme.Styles(dark),
	}
}

func (c *Controller) curve(target float64, s State, dark bool) Curve {
	category := bmi.Classify(target)

	markers := make([]Marker, 0, 2)
	if s.Hover != nil {
		markers = append(markers, Marker{Kind: HoverMarker, Point: *s.Hover, Color: MarkerColor})
	}
	if s.Click != nil {
		markers = append(markers, Marker{Kind: ClickMarker, Point: *s.Click, Color: MarkerColor})
	}

	return Curve{
		BMI:      target,
		Title:    "BMI: " + strconv.FormatFloat(target, 'f', -1, 64),
		Color:    category.Color,
		Category: category.Label,
		Points:   bmi.GenerateCurve(target, c.Range),
		Markers:  markers,
		Palette:  theme.Figure(dark),
		Range:    c.Range,
	}
}
