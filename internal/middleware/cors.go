package middleware

import (
	"net/http"
	"strings"

	"github.com/rs/cors"
)

// CORS builds CORS middleware for the API. frontendURL is a comma-separated
// list of allowed origins; localhost:3000 is always permitted for local dev.
func CORS(frontendURL string) func(http.Handler) http.Handler {
	origins := []string{"http://localhost:3000"}
	for _, origin := range strings.Split(frontendURL, ",") {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" && trimmed != origins[0] {
			origins = append(origins, trimmed)
		}
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           86400,
	})
	return c.Handler
}
