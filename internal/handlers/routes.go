package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wchklaus97/remind-me/internal/i18n"
	"github.com/wchklaus97/remind-me/internal/router"
	"github.com/wchklaus97/remind-me/internal/storage"
)

// RouteHandler exposes the route resolver: the navigation host posts its raw
// path/hash strings here and gets back the canonical (route, locale) state or
// a canonical URL to apply.
type RouteHandler struct {
	store       storage.Store
	basePath    string
	hostingMode router.HostingMode
}

// NewRouteHandler creates a new route handler for the deployment's base path
// and hosting mode.
func NewRouteHandler(store storage.Store, basePath string, hostingMode router.HostingMode) *RouteHandler {
	return &RouteHandler{store: store, basePath: basePath, hostingMode: hostingMode}
}

// RegisterRoutes registers route-resolution routes on the given router
func (h *RouteHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/route/resolve", h.Resolve).Methods("GET")
	r.HandleFunc("/route/build", h.Build).Methods("GET")
}

// Resolve applies the startup precedence (hash, locale-prefixed path,
// persisted preference, default) to the supplied path and hash strings.
func (h *RouteHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	route, locale := router.ResolveInitial(
		r.Context(),
		params.Get("path"),
		params.Get("hash"),
		h.basePath,
		h.store,
	)

	respondJSON(w, http.StatusOK, map[string]string{
		"route":  string(route),
		"locale": locale.String(),
		"url":    router.Build(route, locale, h.hostingMode),
	})
}

// Build returns the canonical URL for a (route, locale) pair. Unknown tokens
// default to the landing page and English, mirroring Parse.
func (h *RouteHandler) Build(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	route := router.ParseRoute(params.Get("route"))
	locale := i18n.ParseLocale(params.Get("locale"))

	respondJSON(w, http.StatusOK, map[string]string{
		"route":  string(route),
		"locale": locale.String(),
		"url":    router.Build(route, locale, h.hostingMode),
	})
}
