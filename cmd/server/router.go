package main

import (
	"database/sql"
	"net/http"

	"github.com/crucial707/postboard/internal/config"
	"github.com/crucial707/postboard/internal/db"
	"github.com/crucial707/postboard/internal/handlers"
	"github.com/crucial707/postboard/internal/middleware"
	"github.com/crucial707/postboard/internal/render"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// newRouter wires every route over the given pool. The pool is owned by the caller.
func newRouter(pool *sql.DB, cfg config.Config) (http.Handler, error) {
	rd, err := render.New()
	if err != nil {
		return nil, err
	}

	base := handlers.Base{Render: rd}
	home := &handlers.HomeHandler{Base: base}
	users := &handlers.UserHandler{Base: base}
	posts := &handlers.PostHandler{Base: base}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog)
	r.Use(middleware.Recoverer(base.ErrorPage))
	r.Use(middleware.Prometheus)
	r.Use(middleware.SecurityHeaders(cfg.TLSEnabled()))

	r.NotFound(home.Page404)

	// Health (no store, no templates)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/", home.Index)
	r.Get("/users/new", users.NewForm)
	r.Get("/posts/new", posts.NewForm)

	session := middleware.Session(db.NewProvider(pool), base.ErrorPage)

	r.Group(func(r chi.Router) {
		r.Use(session)

		r.Get("/users", users.List)
		r.Get("/users/edit/{id}", users.EditForm)
		r.Get("/users/delete/{id}", users.Delete)

		r.Get("/posts", posts.List)
		r.Get("/posts/edit/{id}", posts.EditForm)
		r.Get("/posts/delete/{id}", posts.Delete)
	})

	// Form submissions are throttled and capped before a connection is reserved.
	r.Group(func(r chi.Router) {
		if cfg.FormRateLimitPerMin > 0 {
			r.Use(middleware.PerMinute(cfg.FormRateLimitPerMin).Middleware(base.ErrorPage))
		}
		r.Use(middleware.MaxBytes(cfg.MaxFormBytes))
		r.Use(session)

		r.Post("/users/new", users.Create)
		r.Post("/users/edit/{id}", users.Update)
		r.Post("/posts/new", posts.Create)
		r.Post("/posts/edit/{id}", posts.Update)
	})

	return r, nil
}
