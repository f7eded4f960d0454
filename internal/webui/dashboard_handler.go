package webui

import (
	"encoding/json"
	"fmt"
	"net/http"

	"bmidash.org/internal/bmi"
	"bmidash.org/internal/dashboard"
	"bmidash.org/internal/figure"
	"bmidash.org/internal/models"
	"bmidash.org/internal/theme"
)

type updateRequest struct {
	State dashboard.State `json:"state"`
	Event dashboard.Event `json:"event"`
}

// updateResponse is every fragment the page replaces after one update cycle.
type updateResponse struct {
	State       dashboard.State    `json:"state"`
	Dark        bool               `json:"dark"`
	Title       string             `json:"title"`
	Color       string             `json:"color"`
	Markers     []dashboard.Marker `json:"markers"`
	ToggleLabel string             `json:"toggleLabel"`
	Styles      theme.StyleSet     `json:"styles"`
	CurveSVG    string             `json:"curveSvg"`
	PlotBox     figure.PlotBox     `json:"plotBox"`
}

type calculateRequest struct {
	Height *float64 `json:"height"`
	Weight *float64 `json:"weight"`
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("malformed request body: %w", err)
	}
	return nil
}

func (webUI *WebUI) updateHandler(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		webUI.badRequest(w, r, err)
		return
	}

	out := webUI.Controller.Update(req.State, req.Event)

	svg, err := figure.CurveSVG(out.Curve)
	if err != nil {
		webUI.serverError(w, r, err)
		return
	}

	webUI.writeJSON(w, r, http.StatusOK, updateResponse{
		State:       out.State,
		Dark:        out.Dark,
		Title:       out.Curve.Title,
		Color:       out.Curve.Color,
		Markers:     out.Curve.Markers,
		ToggleLabel: out.ToggleLabel,
		Styles:      out.Styles,
		CurveSVG:    svg,
		PlotBox:     figure.CurvePlotBox(out.Curve.Range),
	})
}

func (webUI *WebUI) calculateHandler(w http.ResponseWriter, r *http.Request) {
	var req calculateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		webUI.badRequest(w, r, err)
		return
	}

	result := bmi.Calculate(req.Height, req.Weight)
	webUI.writeJSON(w, r, http.StatusOK, models.NewCalculationEntry(req.Height, req.Weight, result))
}
