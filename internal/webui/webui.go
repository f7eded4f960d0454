package webui

import (
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/julienschmidt/httprouter"

	"bmidash.org/internal/app"
	"bmidash.org/internal/appconf"
)

const maxRequestBody = 64 << 10

type WebUI struct {
	*app.Application
}

func NewWebUI(app *app.Application) *WebUI {
	return &WebUI{Application: app}
}

// Router returns the unprotected routes. Handler wraps it with CSRF checks.
func (webUI *WebUI) Router() *httprouter.Router {
	router := httprouter.New()
	router.HandlerFunc(http.MethodGet, "/", webUI.indexHandler)
	router.HandlerFunc(http.MethodPost, "/dashboard/update", webUI.updateHandler)
	router.HandlerFunc(http.MethodPost, "/dashboard/calculate", webUI.calculateHandler)
	router.HandlerFunc(http.MethodGet, "/charts/:name", webUI.chartHandler)
	router.HandlerFunc(http.MethodGet, "/debug/", webUI.debugIndexHandler)
	return router
}

// Handler is the router behind gorilla/csrf. Without a configured key the
// routes are served unprotected.
func (webUI *WebUI) Handler() http.Handler {
	router := webUI.Router()
	if len(webUI.Config.CSRFKey) == 0 {
		return router
	}

	protect := csrf.Protect(webUI.Config.CSRFKey,
		csrf.Secure(webUI.Config.Env == appconf.Production),
		csrf.Path("/"),
		csrf.ErrorHandler(http.HandlerFunc(webUI.csrfFailureHandler)),
	)
	protected := protect(router)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.TLS == nil {
			r = csrf.PlaintextHTTPRequest(r)
		}
		protected.ServeHTTP(w, r)
	})
}
