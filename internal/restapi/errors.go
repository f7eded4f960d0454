package restapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"bmidash.org/internal/logging"
	"bmidash.org/internal/models"
)

type errorResponse struct {
	Code        int    `json:"code"`
	CurrentTime int64  `json:"currentTime"`
	Text        string `json:"text"`
	Version     int    `json:"version"`
}

func (api *RestAPI) writeError(w http.ResponseWriter, r *http.Request, code int, text string) {
	response := errorResponse{
		Code:        code,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        text,
		Version:     1, // Error envelopes have always been version 1.
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logging.LogError(api.logger(r), "failed to encode error response", err,
			slog.Int("status", code))
	}
}

// invalidAPIKeyResponse sends a 401 Unauthorized response
func (api *RestAPI) invalidAPIKeyResponse(w http.ResponseWriter, r *http.Request) {
	api.writeError(w, r, http.StatusUnauthorized, "permission denied")
}

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(api.logger(r), "request failed", err,
		slog.String("path", r.URL.Path),
		slog.String("request_id", logging.RequestIDFromContext(r.Context())))
	api.writeError(w, r, http.StatusInternalServerError, "internal server error")
}

// validationErrorResponse sends a 400 Bad Request response with field-specific validation errors
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	response := struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}{
		FieldErrors: fieldErrors,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logging.LogError(api.logger(r), "failed to encode validation error response", err)
	}
}

// logger falls back to the request-scoped logger when the API has none.
func (api *RestAPI) logger(r *http.Request) *slog.Logger {
	if api.Application != nil && api.Logger != nil {
		return api.Logger
	}
	return logging.FromContext(r.Context())
}
