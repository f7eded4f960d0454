package restapi

import (
	"net/http"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

func (api *RestAPI) protect(h handlerFunc) http.Handler {
	handler := validateAPIKey(api, h)
	if api.rateLimiter != nil {
		handler = api.rateLimiter.Handler(handler)
	}
	return handler
}

func (api *RestAPI) SetRoutes(mux *http.ServeMux) {
	mux.Handle("GET /api/categories.json", api.protect(api.categoriesHandler))
	mux.Handle("GET /api/classify.json", api.protect(api.classifyHandler))
	mux.Handle("GET /api/calculate.json", api.protect(api.calculateHandler))
	mux.Handle("GET /api/curve.json", api.protect(api.curveHandler))
	mux.Handle("GET /api/distribution.json", api.protect(api.distributionHandler))
	mux.Handle("GET /api/current-time.json", api.protect(api.currentTimeHandler))
}
