package theme

import (
	"sort"
	"strings"
)

// Style is a set of inline CSS declarations for one UI region.
type Style map[string]string

// CSS renders the declarations sorted by property so output is stable.
func (s Style) CSS() string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(s[k])
		b.WriteByte(';')
	}
	return b.String()
}

// StyleSet covers the five regions whose look depends on dark mode.
type StyleSet struct {
	Main        Style `json:"main"`
	BMIInput    Style `json:"bmiInput"`
	HeightInput Style `json:"heightInput"`
	WeightInput Style `json:"weightInput"`
	Button      Style `json:"button"`
}

// FigurePalette colors a rendered chart.
type FigurePalette struct {
	PlotBackground  string `json:"plotBackground"`
	PaperBackground string `json:"paperBackground"`
	FontColor       string `json:"fontColor"`
	GridColor       string `json:"gridColor"`
}

const (
	black = "#000"
	white = "#fff"
)

// Styles returns freshly allocated style maps for the given mode.
func Styles(dark bool) StyleSet {
	if dark {
		return StyleSet{
			Main:        Style{"background-color": black, "color": white, "border-color": black},
			BMIInput:    darkInput(),
			HeightInput: darkInput(),
			WeightInput: darkInput(),
			Button:      Style{"color": white, "margin": "0 auto", "display": "block", "border-radius": "40px"},
		}
	}
	return StyleSet{
		Main:        Style{},
		BMIInput:    lightInput(),
		HeightInput: lightInput(),
		WeightInput: lightInput(),
		Button:      Style{"margin": "0 auto", "display": "block", "border-radius": "40px"},
	}
}

func darkInput() Style {
	return Style{"background-color": black, "color": white, "text-align": "center", "border-radius": "40px"}
}

func lightInput() Style {
	return Style{"text-align": "center", "border-radius": "40px"}
}

// Figure returns the chart palette for the given mode.
func Figure(dark bool) FigurePalette {
	if dark {
		return FigurePalette{
			PlotBackground:  black,
			PaperBackground: black,
			FontColor:       white,
			GridColor:       "#444",
		}
	}
	return FigurePalette{
		PlotBackground:  "#e5ecf6",
		PaperBackground: white,
		FontColor:       "#2a3f5f",
		GridColor:       white,
	}
}

// ToggleLabel is the caption of the dark-mode button.
func ToggleLabel(dark bool) string {
	if dark {
		return "Switch to Light Mode"
	}
	return "Switch to Dark Mode"
}

// IsDark reports whether a toggle click count selects dark mode.
func IsDark(clicks int) bool {
	return clicks%2 != 0
}
