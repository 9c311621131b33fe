package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/crucial707/postboard/internal/db"
	"github.com/crucial707/postboard/internal/forms"
	"github.com/crucial707/postboard/internal/render"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// ErrMessageInternal is the generic message for 500 responses. Do not expose internal details to clients.
const ErrMessageInternal = "Internal server error"

// Base carries what every page handler needs to answer a request.
type Base struct {
	Render *render.Renderer
}

// page renders name, falling back to a plain-text 500 if the template fails.
func (b *Base) page(w http.ResponseWriter, r *http.Request, status int, name string, data render.Page) {
	if err := b.Render.Render(w, status, name, data); err != nil {
		slog.Error("render page",
			"request_id", chimw.GetReqID(r.Context()),
			"page", name,
			"err", err)
		http.Error(w, ErrMessageInternal, http.StatusInternalServerError)
	}
}

// ErrorPage renders the layout's error page. Middleware answers through it so
// 429s, recovered panics and connection failures look like every other page.
func (b *Base) ErrorPage(w http.ResponseWriter, r *http.Request, status int, message string) {
	b.page(w, r, status, "error.html", render.Page{Status: status, Message: message})
}

// NotFound answers 404 with a short message such as "User not found".
func (b *Base) NotFound(w http.ResponseWriter, r *http.Request, message string) {
	b.ErrorPage(w, r, http.StatusNotFound, message)
}

// ServerError logs err with the request id and answers 500 without details.
func (b *Base) ServerError(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("request failed",
		"request_id", chimw.GetReqID(r.Context()),
		"method", r.Method,
		"path", r.URL.Path,
		"err", err)
	b.ErrorPage(w, r, http.StatusInternalServerError, ErrMessageInternal)
}

// InvalidID answers 422 for a path identifier that is not a whole number, and
// 404 with notFound for one too large for any stored row.
func (b *Base) InvalidID(w http.ResponseWriter, r *http.Request, errs forms.Errors, notFound string) {
	if errs.Has("id", forms.OutOfRange) {
		b.NotFound(w, r, notFound)
		return
	}
	b.ErrorPage(w, r, http.StatusUnprocessableEntity, errs.Error())
}

// BadForm answers a body that could not be parsed: 413 when it exceeded the
// size cap, 400 otherwise.
func (b *Base) BadForm(w http.ResponseWriter, r *http.Request, err error) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		b.ErrorPage(w, r, http.StatusRequestEntityTooLarge, "Form too large")
		return
	}
	b.ErrorPage(w, r, http.StatusBadRequest, "Malformed form")
}

// Page404 is the router's fallback for unknown paths.
func (b *Base) Page404(w http.ResponseWriter, r *http.Request) {
	b.NotFound(w, r, "Page not found")
}

// querier returns the request-scoped connection installed by middleware.Session.
func (b *Base) querier(w http.ResponseWriter, r *http.Request) (db.Querier, bool) {
	q, ok := db.QuerierFrom(r.Context())
	if !ok {
		b.ServerError(w, r, errors.New("no store session on request"))
		return nil, false
	}
	return q, true
}
