package dashboard

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bmidash.org/internal/bmi"
	"bmidash.org/internal/theme"
)

func ptr(v float64) *float64 { return &v }

func TestInitialRender(t *testing.T) {
	out := Update(DefaultState(), Event{Trigger: TriggerInitial})

	assert.False(t, out.Dark)
	assert.Equal(t, "Switch to Dark Mode", out.ToggleLabel)
	assert.Equal(t, theme.Styles(false), out.Styles)

	assert.Equal(t, "BMI: 20", out.Curve.Title)
	assert.Equal(t, "Green", out.Curve.Color)
	assert.Equal(t, "Normal range", out.Curve.Category)
	assert.Len(t, out.Curve.Points, 210)
	assert.Empty(t, out.Curve.Markers)
}

func TestToggle(t *testing.T) {
	start := DefaultState()

	once := Update(start, Event{Trigger: TriggerToggle})
	assert.True(t, once.Dark)
	assert.Equal(t, 1, once.State.Clicks)
	assert.Equal(t, "Switch to Light Mode", once.ToggleLabel)
	assert.Equal(t, theme.Styles(true), once.Styles)
	assert.Equal(t, theme.Figure(true), once.Curve.Palette)

	twice := Update(once.State, Event{Trigger: TriggerToggle})
	assert.False(t, twice.Dark)
	assert.Equal(t, 2, twice.State.Clicks)

	initial := Update(start, Event{Trigger: TriggerInitial})
	assert.Equal(t, initial.Styles, twice.Styles)
	assert.Equal(t, initial.ToggleLabel, twice.ToggleLabel)
	assert.Equal(t, initial.Curve.Palette, twice.Curve.Palette)
}

func TestBMIInput(t *testing.T) {
	t.Run("recomputes curve and color", func(t *testing.T) {
		out := Update(DefaultState(), Event{Trigger: TriggerBMIInput, BMI: ptr(32.5)})

		require.NotNil(t, out.State.BMI)
		assert.Equal(t, 32.5, *out.State.BMI)
		assert.Equal(t, "BMI: 32.5", out.Curve.Title)
		assert.Equal(t, "Orange", out.Curve.Color)
		assert.InDelta(t, bmi.WeightFor(32.5, 170), out.Curve.Points[120].Weight, 1e-9)
	})

	t.Run("unset BMI draws a zero curve", func(t *testing.T) {
		out := Update(DefaultState(), Event{Trigger: TriggerBMIInput, BMI: nil})

		assert.Nil(t, out.State.BMI)
		assert.Equal(t, "BMI: 0", out.Curve.Title)
		assert.Equal(t, "Red", out.Curve.Color)
		for _, p := range out.Curve.Points {
			assert.Zero(t, p.Weight)
		}
	})

	t.Run("clears an active click marker in the same cycle", func(t *testing.T) {
		clicked := Update(DefaultState(), Event{Trigger: TriggerClick, Point: &bmi.Point{Height: 170}})
		require.NotNil(t, clicked.State.Click)
		require.Len(t, clicked.Curve.Markers, 1)

		out := Update(clicked.State, Event{Trigger: TriggerBMIInput, BMI: ptr(25)})
		assert.Nil(t, out.State.Click)
		assert.Empty(t, out.Curve.Markers)
	})

	t.Run("ignores a point carried on the event", func(t *testing.T) {
		out := Update(DefaultState(), Event{Trigger: TriggerBMIInput, BMI: ptr(25), Point: &bmi.Point{Height: 170}})
		assert.Nil(t, out.State.Click)
		assert.Empty(t, out.Curve.Markers)
	})
}

func TestHover(t *testing.T) {
	out := Update(DefaultState(), Event{Trigger: TriggerHover, Point: &bmi.Point{Height: 169.7, Weight: 1}})

	require.Len(t, out.Curve.Markers, 1)
	m := out.Curve.Markers[0]
	assert.Equal(t, HoverMarker, m.Kind)
	assert.Equal(t, MarkerColor, m.Color)
	assert.Equal(t, 170.0, m.Point.Height)
	assert.InDelta(t, 57.8, m.Point.Weight, 1e-9, "marker snaps onto the curve")

	replaced := Update(out.State, Event{Trigger: TriggerHover, Point: &bmi.Point{Height: 100}})
	require.Len(t, replaced.Curve.Markers, 1)
	assert.Equal(t, 100.0, replaced.Curve.Markers[0].Point.Height)

	unhovered := Update(replaced.State, Event{Trigger: TriggerHover})
	assert.Empty(t, unhovered.Curve.Markers)
	assert.Nil(t, unhovered.State.Hover)
}

func TestHoverDoesNotSurviveOtherTriggers(t *testing.T) {
	hovered := Update(DefaultState(), Event{Trigger: TriggerHover, Point: &bmi.Point{Height: 170}})
	require.NotNil(t, hovered.State.Hover)

	out := Update(hovered.State, Event{Trigger: TriggerToggle})
	assert.Nil(t, out.State.Hover)
	assert.Empty(t, out.Curve.Markers)
}

func TestClick(t *testing.T) {
	first := Update(DefaultState(), Event{Trigger: TriggerClick, Point: &bmi.Point{Height: 150}})
	require.Len(t, first.Curve.Markers, 1)
	assert.Equal(t, ClickMarker, first.Curve.Markers[0].Kind)

	second := Update(first.State, Event{Trigger: TriggerClick, Point: &bmi.Point{Height: 190}})
	require.Len(t, second.Curve.Markers, 1)
	assert.Equal(t, 190.0, second.Curve.Markers[0].Point.Height)

	t.Run("click marker survives toggle", func(t *testing.T) {
		out := Update(second.State, Event{Trigger: TriggerToggle})
		require.NotNil(t, out.State.Click)
		assert.Equal(t, 190.0, out.State.Click.Height)
	})

	t.Run("click without a point keeps the previous marker", func(t *testing.T) {
		out := Update(second.State, Event{Trigger: TriggerClick})
		require.NotNil(t, out.State.Click)
		assert.Equal(t, 190.0, out.State.Click.Height)
	})
}

func TestAtMostOneMarkerOfEachKind(t *testing.T) {
	s := DefaultState()
	out := Update(s, Event{Trigger: TriggerClick, Point: &bmi.Point{Height: 160}})
	out = Update(out.State, Event{Trigger: TriggerHover, Point: &bmi.Point{Height: 180}})
	out = Update(out.State, Event{Trigger: TriggerHover, Point: &bmi.Point{Height: 181}})

	require.Len(t, out.Curve.Markers, 2)
	assert.Equal(t, HoverMarker, out.Curve.Markers[0].Kind)
	assert.Equal(t, ClickMarker, out.Curve.Markers[1].Kind)
	assert.Equal(t, out.Curve.Markers[0].Color, out.Curve.Markers[1].Color)
}

func TestUpdateDoesNotMutateInput(t *testing.T) {
	click := &bmi.Point{Height: 160}
	s := State{BMI: ptr(20), Clicks: 3, Click: click}

	Update(s, Event{Trigger: TriggerBMIInput, BMI: ptr(30)})
	Update(s, Event{Trigger: TriggerToggle})

	assert.Equal(t, 20.0, *s.BMI)
	assert.Equal(t, 3, s.Clicks)
	assert.Same(t, click, s.Click)
	assert.Equal(t, 160.0, click.Height)
}

func TestControllerRange(t *testing.T) {
	c := &Controller{Range: bmi.HeightRange{Min: 100, Max: 110}}
	out := c.Update(DefaultState(), Event{Trigger: TriggerHover, Point: &bmi.Point{Height: 300}})

	assert.Len(t, out.Curve.Points, 10)
	require.NotNil(t, out.State.Hover)
	assert.Equal(t, 109.0, out.State.Hover.Height)
}

func TestEventJSON(t *testing.T) {
	var ev Event
	require.NoError(t, json.Unmarshal([]byte(`{"trigger":"click","point":{"height":170,"weight":57.8}}`), &ev))
	assert.Equal(t, TriggerClick, ev.Trigger)
	require.NotNil(t, ev.Point)
	assert.Equal(t, 170.0, ev.Point.Height)

	assert.Error(t, json.Unmarshal([]byte(`{"trigger":"drag"}`), &ev))

	var missing Event
	require.NoError(t, json.Unmarshal([]byte(`{}`), &missing))
	assert.Equal(t, TriggerInitial, missing.Trigger)
}

func TestTriggerString(t *testing.T) {
	for _, tr := range []Trigger{TriggerInitial, TriggerBMIInput, TriggerHover, TriggerClick, TriggerToggle} {
		parsed, err := ParseTrigger(tr.String())
		require.NoError(t, err)
		assert.Equal(t, tr, parsed)
	}
	assert.Equal(t, "Trigger(42)", Trigger(42).String())

	_, err := Trigger(42).MarshalText()
	assert.Error(t, err)
}
