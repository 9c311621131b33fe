package middleware

import (
	"net/http"
	"time"

	"github.com/crucial707/postboard/internal/metrics"
	"github.com/go-chi/chi/v5"
)

// Prometheus records request duration and count labelled by the matched chi
// route pattern, so /users/edit/1 and /users/edit/2 share one series and
// unknown paths all land in metrics.UnmatchedRoute. Scrapes of /metrics are
// not counted. Wrap it inside Recoverer so a recovered panic is counted with its 500.
func Prometheus(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newStatusRecorder(w)
		next.ServeHTTP(rec, r)

		route := routePattern(r)
		if route == "/metrics" {
			return
		}
		metrics.RecordRequest(r.Method, route, rec.status, time.Since(start).Seconds())
	})
}

// routePattern is the pattern chi matched, read after routing has run.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return metrics.UnmatchedRoute
	}
	if p := rctx.RoutePattern(); p != "" {
		return p
	}
	return metrics.UnmatchedRoute
}
