package middleware

import (
	"net/http"
)

// DefaultMaxBodyBytes is the default maximum form body size (1 MiB).
const DefaultMaxBodyBytes = 1 << 20

// MaxBytes caps the request body. Reading past the cap fails, which handlers
// report as 413 Request Entity Too Large when parsing the form.
func MaxBytes(maxBytes int64) func(http.Handler) http.Handler {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodyBytes
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}
