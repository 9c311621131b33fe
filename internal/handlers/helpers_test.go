package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/crucial707/postboard/internal/db"
	"github.com/crucial707/postboard/internal/render"
	"github.com/go-chi/chi/v5"
)

// requestWithChiURLParams returns a request with chi route context and URL params set.
// A non-nil form is sent url-encoded. A non-nil q is installed as the request's store session.
func requestWithChiURLParams(method, path string, form url.Values, params map[string]string, q db.Querier) *http.Request {
	var r *http.Request
	if form != nil {
		r = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	if q != nil {
		ctx = db.WithQuerier(ctx, q)
	}
	return r.WithContext(ctx)
}

func newBase(t *testing.T) Base {
	t.Helper()
	rd, err := render.New()
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	return Base{Render: rd}
}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	pool, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { pool.Close() })
	return pool, mock
}
