package webui

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"bmidash.org/internal/bmi"
	"bmidash.org/internal/dashboard"
	"bmidash.org/internal/figure"
	"bmidash.org/internal/logging"
	"bmidash.org/internal/theme"
	"bmidash.org/internal/utils"
)

// chartHandler serves /charts/curve.svg and /charts/distribution.svg.
func (webUI *WebUI) chartHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	dark := utils.ParseBoolParam(query, "dark")

	var svg string
	switch utils.ExtractParam(r, "name", ".svg") {
	case "curve":
		value, fieldErrors := utils.ParseOptionalFloatParam(query, "bmi", nil)
		if len(fieldErrors) > 0 {
			webUI.writeJSON(w, r, http.StatusBadRequest, struct {
				FieldErrors map[string][]string `json:"fieldErrors"`
			}{fieldErrors})
			return
		}

		state := dashboard.State{BMI: value}
		if dark {
			state.Clicks = 1
		}
		out := webUI.Controller.Update(state, dashboard.Event{Trigger: dashboard.TriggerInitial})
		rendered, err := figure.CurveSVG(out.Curve)
		if err != nil {
			webUI.serverError(w, r, err)
			return
		}
		svg = rendered

	case "distribution":
		start := time.Now()
		values, err := webUI.Dataset.BMIValues(r.Context())
		if err != nil {
			webUI.serverError(w, r, err)
			return
		}
		dist := bmi.Aggregate(values)
		rendered, err := figure.DistributionSVG(dist, theme.Figure(dark))
		if err != nil {
			webUI.serverError(w, r, err)
			return
		}
		svg = rendered
		logging.LogOperation(webUI.logger(r), "distribution_rendered",
			slog.String("source", webUI.Dataset.Describe()),
			slog.Int("rows", dist.Total),
			slog.Duration("duration", time.Since(start)))

	default:
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = io.WriteString(w, svg)
}
