package middleware

import (
	"net/http"
)

const (
	// MaxRequestBodySize caps request bodies at 1 MB; reminder payloads are
	// tiny and anything larger is abuse or a bug.
	MaxRequestBodySize = 1 << 20
)

// RequestSize limits the size of request bodies
func RequestSize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBodySize)
		}
		next.ServeHTTP(w, r)
	})
}
