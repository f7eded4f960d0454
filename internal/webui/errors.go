package webui

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/csrf"

	"bmidash.org/internal/logging"
)

type errorBody struct {
	Error string `json:"error"`
}

func (webUI *WebUI) logger(r *http.Request) *slog.Logger {
	if webUI.Application != nil && webUI.Logger != nil {
		return webUI.Logger
	}
	return logging.FromContext(r.Context())
}

func (webUI *WebUI) writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.LogError(webUI.logger(r), "failed to encode response", err,
			slog.String("path", r.URL.Path))
	}
}

func (webUI *WebUI) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	webUI.writeJSON(w, r, http.StatusBadRequest, errorBody{Error: err.Error()})
}

func (webUI *WebUI) serverError(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(webUI.logger(r), "web ui request failed", err,
		slog.String("path", r.URL.Path),
		slog.String("request_id", logging.RequestIDFromContext(r.Context())))
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func (webUI *WebUI) csrfFailureHandler(w http.ResponseWriter, r *http.Request) {
	reason := "invalid CSRF token"
	if err := csrf.FailureReason(r); err != nil {
		reason = err.Error()
	}
	webUI.logger(r).Warn("csrf check failed",
		slog.String("path", r.URL.Path),
		slog.String("reason", reason))
	webUI.writeJSON(w, r, http.StatusForbidden, errorBody{Error: reason})
}
