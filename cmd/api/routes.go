package main

import (
	"net/http"

	"bmidash.org/internal/app"
	"bmidash.org/internal/restapi"
	"bmidash.org/internal/webui"
)

func newApplication(base *app.Application) *application {
	return &application{
		Application: base,
		api:         restapi.NewRestAPI(base),
		webUI:       webui.NewWebUI(base),
	}
}

// routes mounts the REST API under /api/ and hands every other path to the web
// UI router.
func (app *application) routes() http.Handler {
	mux := http.NewServeMux()
	app.api.SetRoutes(mux)
	mux.Handle("/", app.webUI.Handler())

	var handler http.Handler = mux
	handler = restapi.CompressionMiddleware(handler)
	handler = app.api.WithSecurityHeaders(handler)
	handler = restapi.NewRequestLoggingMiddleware(app.Logger)(handler)
	return handler
}
