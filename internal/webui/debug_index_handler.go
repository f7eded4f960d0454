package webui

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"

	"bmidash.org/internal/bmi"
	"bmidash.org/internal/dashboard"
)

var debugTemplate = template.Must(template.ParseFS(templateFS, "debug_index.html"))

type debugData struct {
	Title string
	Pre   string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	var buf bytes.Buffer
	err := debugTemplate.Execute(&buf, debugData{
		Title: title,
		Pre:   spew.Sdump(data),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	switch dataType {
	case "categories":
		data = bmi.Categories()
		title = "BMI - Categories"
	case "dataset":
		values, err := webUI.Dataset.BMIValues(r.Context())
		data = map[string]interface{}{
			"source": webUI.Dataset.Describe(),
			"rows":   len(values),
			"values": values,
			"error":  err,
		}
		title = "Dataset - BMI Values"
	case "distribution":
		values, err := webUI.Dataset.BMIValues(r.Context())
		if err != nil {
			data = map[string]string{"error": err.Error()}
		} else {
			data = bmi.Aggregate(values)
		}
		title = "Dataset - Distribution"
	case "state":
		data = webUI.Controller.Update(dashboard.DefaultState(), dashboard.Event{Trigger: dashboard.TriggerInitial})
		title = "Dashboard - Initial Output"
	default:
		data = map[string]string{
			"error": "Please use one of the following: categories, dataset, distribution, state.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}
