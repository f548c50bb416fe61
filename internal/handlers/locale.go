package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wchklaus97/remind-me/internal/i18n"
)

// LocaleHandler exposes the locale engine: reading and switching the active
// locale, and key-based translation lookups.
type LocaleHandler struct {
	engine *i18n.Engine
}

// NewLocaleHandler creates a new locale handler
func NewLocaleHandler(engine *i18n.Engine) *LocaleHandler {
	return &LocaleHandler{engine: engine}
}

// RegisterRoutes registers locale routes on the given router
func (h *LocaleHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/locale", h.GetLocale).Methods("GET")
	r.HandleFunc("/locale", h.SetLocale).Methods("PUT")
	r.HandleFunc("/translate", h.Translate).Methods("GET")
}

// SetLocaleRequest represents a locale switch request
type SetLocaleRequest struct {
	Locale string `json:"locale" validate:"required"`
}

// GetLocale returns the active locale
func (h *LocaleHandler) GetLocale(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"locale": h.engine.Current().String()})
}

// SetLocale switches the active locale. Unknown locale tokens normalize to
// English rather than failing, so this endpoint never rejects a value.
func (h *LocaleHandler) SetLocale(w http.ResponseWriter, r *http.Request) {
	var req SetLocaleRequest
	if err := decodeJSON(r, &req); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid JSON body")
		return
	}

	locale := i18n.ParseLocale(req.Locale)
	h.engine.SetLocale(r.Context(), locale)
	respondJSON(w, http.StatusOK, map[string]string{"locale": locale.String()})
}

// Translate resolves one dotted translation key for the active locale. A key
// with no translation in any document comes back as itself.
func (h *LocaleHandler) Translate(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "key query parameter is required")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"key":   key,
		"value": h.engine.Translate(key),
	})
}
