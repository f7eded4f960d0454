// Package figure renders dashboard figures to SVG with go-chart.
package figure

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"

	"bmidash.org/internal/bmi"
	"bmidash.org/internal/dashboard"
	"bmidash.org/internal/theme"
)

const (
	CurveWidth         = 640
	CurveHeight        = 450
	DistributionWidth  = 1100
	DistributionHeight = 700

	markerDotWidth = 6
	curveLineWidth = 2.5
)

// CurvePadding is the space around the plot area of the curve chart. The web
// UI reports it to the page so pointer positions can be mapped to heights.
var CurvePadding = chart.Box{Top: 60, Left: 20, Right: 70, Bottom: 50}

// PlotBox is the pixel geometry of a rendered chart.
type PlotBox struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	Top    int `json:"top"`
	Left   int `json:"left"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
	MinX   int `json:"minX"`
	MaxX   int `json:"maxX"`
}

// CurvePlotBox describes where the curve for r lands inside the SVG.
func CurvePlotBox(r bmi.HeightRange) PlotBox {
	return PlotBox{
		Width:  CurveWidth,
		Height: CurveHeight,
		Top:    CurvePadding.Top,
		Left:   CurvePadding.Left,
		Right:  CurvePadding.Right,
		Bottom: CurvePadding.Bottom,
		MinX:   r.Min,
		MaxX:   r.Max - 1,
	}
}

func baseStyles(p theme.FigurePalette) (background, canvas, axis chart.Style) {
	font := ParseColor(p.FontColor)
	background = chart.Style{FillColor: ParseColor(p.PaperBackground)}
	canvas = chart.Style{FillColor: ParseColor(p.PlotBackground)}
	axis = chart.Style{FontColor: font, StrokeColor: font}
	return background, canvas, axis
}

// RenderCurve draws the constant-BMI line plus its hover and click markers.
func RenderCurve(w io.Writer, c dashboard.Curve) error {
	if len(c.Points) == 0 {
		return fmt.Errorf("curve %q has no points", c.Title)
	}

	xs := make([]float64, len(c.Points))
	ys := make([]float64, len(c.Points))
	maxWeight := 0.0
	for i, p := range c.Points {
		xs[i] = p.Height
		ys[i] = p.Weight
		maxWeight = math.Max(maxWeight, p.Weight)
	}

	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    c.Title,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: ParseColor(c.Color),
				StrokeWidth: curveLineWidth,
			},
		},
	}
	for _, m := range c.Markers {
		color := ParseColor(m.Color)
		// A single-point series still needs two values for go-chart.
		series = append(series, chart.ContinuousSeries{
			Name:    string(m.Kind),
			XValues: []float64{m.Point.Height, m.Point.Height},
			YValues: []float64{m.Point.Weight, m.Point.Weight},
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    markerDotWidth,
				DotColor:    color,
			},
		})
	}

	background, canvas, axis := baseStyles(c.Palette)
	background.Padding = CurvePadding

	minX, maxX := xs[0], xs[len(xs)-1]
	if maxX <= minX {
		maxX = minX + 1
	}
	maxY := maxWeight * 1.05
	if math.IsInf(maxY, 1) {
		maxY = math.MaxFloat64
	}
	if maxY <= 0 {
		maxY = 1
	}

	ch := chart.Chart{
		Title:      c.Title,
		TitleStyle: chart.Style{FontColor: axis.FontColor},
		Width:      CurveWidth,
		Height:     CurveHeight,
		Background: background,
		Canvas:     canvas,
		XAxis: chart.XAxis{
			Name:      "Height (cm)",
			NameStyle: axis,
			Style:     axis,
			Range:     &chart.ContinuousRange{Min: minX, Max: maxX},
		},
		YAxis: chart.YAxis{
			Name:           "Weight (kg)",
			NameStyle:      axis,
			Style:          axis,
			Range:          &chart.ContinuousRange{Min: 0, Max: maxY},
			ValueFormatter: weightFormatter,
		},
		Series: series,
	}

	if err := ch.Render(chart.SVG, w); err != nil {
		return fmt.Errorf("rendering curve: %w", err)
	}
	return nil
}

// RenderDistribution draws one bar per category, in category order, with the
// y axis formatted as a percentage.
func RenderDistribution(w io.Writer, d bmi.Distribution, p theme.FigurePalette) error {
	if len(d.Buckets) == 0 {
		return fmt.Errorf("distribution has no buckets")
	}

	bars := make([]chart.Value, 0, len(d.Buckets))
	maxFreq := 0.0
	for _, b := range d.Buckets {
		color := ParseColor(b.Category.Color)
		bars = append(bars, chart.Value{
			Label: b.Category.Label,
			Value: b.Frequency,
			Style: chart.Style{FillColor: color, StrokeColor: color},
		})
		maxFreq = math.Max(maxFreq, b.Frequency)
	}

	maxY := math.Ceil(maxFreq*10) / 10
	if maxY <= 0 {
		maxY = 1
	}

	background, canvas, axis := baseStyles(p)
	background.Padding = chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20}
	xAxis := axis
	xAxis.FontSize = 9

	bc := chart.BarChart{
		Title:      "BMI distribution",
		TitleStyle: chart.Style{FontColor: axis.FontColor},
		Width:      DistributionWidth,
		Height:     DistributionHeight,
		BarWidth:   90,
		Background: background,
		Canvas:     canvas,
		XAxis:      xAxis,
		YAxis: chart.YAxis{
			Style:          axis,
			Range:          &chart.ContinuousRange{Min: 0, Max: maxY},
			ValueFormatter: percentFormatter,
		},
		Bars: bars,
	}

	if err := bc.Render(chart.SVG, w); err != nil {
		return fmt.Errorf("rendering distribution: %w", err)
	}
	return nil
}

// weightFormatter switches to exponent form once tick labels would be wider
// than the plot.
func weightFormatter(v interface{}) string {
	f, ok := v.(float64)
	if !ok {
		return ""
	}
	if math.Abs(f) >= 1e6 {
		return strconv.FormatFloat(f, 'g', 3, 64)
	}
	return fmt.Sprintf("%.2f", f)
}

func percentFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.0f%%", f*100)
	}
	return ""
}

// CurveSVG is RenderCurve into a string.
func CurveSVG(c dashboard.Curve) (string, error) {
	var buf bytes.Buffer
	if err := RenderCurve(&buf, c); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// DistributionSVG is RenderDistribution into a string.
func DistributionSVG(d bmi.Distribution, p theme.FigurePalette) (string, error) {
	var buf bytes.Buffer
	if err := RenderDistribution(&buf, d, p); err != nil {
		return "", err
	}
	return buf.String(), nil
}
