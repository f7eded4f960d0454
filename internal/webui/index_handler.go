package webui

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/gorilla/csrf"

	"bmidash.org/internal/bmi"
	"bmidash.org/internal/dashboard"
	"bmidash.org/internal/figure"
	"bmidash.org/internal/theme"
)

//go:embed index.html debug_index.html
var templateFS embed.FS

// DatasetURL is where the reference dataset was published.
const DatasetURL = "https://www.kaggle.com/datasets/mustafaali96/weight-height"

var indexTemplate = template.Must(template.New("index.html").Funcs(template.FuncMap{
	"css": func(s theme.Style) template.CSS { return template.CSS(s.CSS()) },
}).ParseFS(templateFS, "index.html"))

type legendEntry struct {
	Label string
	Color string
	Range string
}

type indexData struct {
	Title       string
	ToggleLabel string
	Output      dashboard.Output
	CurveSVG    template.HTML
	BootJSON    template.JS
	Calculator  bmi.Result
	Legend      []legendEntry
	CSRFToken   string
	DatasetURL  string
	Attribution string
}

type bootState struct {
	State   dashboard.State `json:"state"`
	Dark    bool            `json:"dark"`
	PlotBox figure.PlotBox  `json:"plotBox"`
}

func (webUI *WebUI) indexHandler(w http.ResponseWriter, r *http.Request) {
	out := webUI.Controller.Update(dashboard.DefaultState(), dashboard.Event{Trigger: dashboard.TriggerInitial})

	svg, err := figure.CurveSVG(out.Curve)
	if err != nil {
		webUI.serverError(w, r, err)
		return
	}

	boot, err := json.Marshal(bootState{
		State:   out.State,
		Dark:    out.Dark,
		PlotBox: figure.CurvePlotBox(webUI.Controller.Range),
	})
	if err != nil {
		webUI.serverError(w, r, err)
		return
	}

	data := indexData{
		Title:       "BMI Calculation",
		ToggleLabel: out.ToggleLabel,
		Output:      out,
		CurveSVG:    template.HTML(svg),
		BootJSON:    template.JS(boot),
		Calculator:  bmi.Calculate(nil, nil),
		Legend:      legend(),
		CSRFToken:   csrf.Token(r),
		DatasetURL:  DatasetURL,
		Attribution: bmi.Attribution,
	}

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, data); err != nil {
		webUI.serverError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func legend() []legendEntry {
	categories := bmi.Categories()
	entries := make([]legendEntry, 0, len(categories))
	for _, c := range categories {
		entries = append(entries, legendEntry{Label: c.Label, Color: c.Color, Range: c.RangeText()})
	}
	return entries
}
