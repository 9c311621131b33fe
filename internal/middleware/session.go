package middleware

import (
	"log/slog"
	"net/http"

	"github.com/crucial707/postboard/internal/db"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Session reserves one store connection for the lifetime of the request and
// exposes it through db.QuerierFrom. The connection goes back to the pool on
// every exit path, including a panic unwinding through the handler. When no
// connection can be had the request is answered 500 through onError.
func Session(p *db.Provider, onError ErrorPage) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			conn, err := p.Acquire(r.Context())
			if err != nil {
				slog.Error("acquire connection",
					"request_id", chimw.GetReqID(r.Context()),
					"path", r.URL.Path,
					"err", err)
				onError.answer(w, r, http.StatusInternalServerError, "Internal server error")
				return
			}
			defer func() {
				if err := conn.Close(); err != nil {
					slog.Warn("release connection", "request_id", chimw.GetReqID(r.Context()), "err", err)
				}
			}()

			next.ServeHTTP(w, r.WithContext(db.WithQuerier(r.Context(), conn)))
		})
	}
}
