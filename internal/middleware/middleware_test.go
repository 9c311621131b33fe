package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/crucial707/postboard/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_ExposesConnection(t *testing.T) {
	pool, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer pool.Close()

	mock.ExpectExec(`DELETE FROM posts WHERE id = \$1`).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	h := Session(db.NewProvider(pool), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q, ok := db.QuerierFrom(r.Context())
		require.True(t, ok)
		_, err := q.ExecContext(r.Context(), `DELETE FROM posts WHERE id = $1`, 1)
		require.NoError(t, err)
		w.WriteHeader(http.StatusNoContent)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/posts/delete/1", nil))

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, 0, pool.Stats().InUse)
}

func TestSession_ReleasesOnPanic(t *testing.T) {
	pool, _, err := sqlmock.New()
	require.NoError(t, err)
	defer pool.Close()

	var page recordedPage
	h := Recoverer(page.answer)(Session(db.NewProvider(pool), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/users", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, http.StatusInternalServerError, page.status)
	assert.Equal(t, "error page", rr.Body.String())
	assert.Equal(t, 0, pool.Stats().InUse)
}

// recordedPage stands in for the rendered error page.
type recordedPage struct {
	status  int
	message string
}

func (p *recordedPage) answer(w http.ResponseWriter, r *http.Request, status int, message string) {
	p.status, p.message = status, message
	w.WriteHeader(status)
	w.Write([]byte("error page"))
}

func TestSession_AcquireFailure(t *testing.T) {
	pool, _, err := sqlmock.New()
	require.NoError(t, err)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	var page recordedPage
	h := Session(db.NewProvider(pool), page.answer)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/users", nil).WithContext(ctx))

	assert.False(t, called)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "Internal server error", page.message)
}

func TestRateLimiter_Blocks(t *testing.T) {
	l := PerMinute(2)
	var page recordedPage
	h := l.Middleware(page.answer)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusFound)
	}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("POST", "/users/new", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}
	assert.Equal(t, []int{http.StatusFound, http.StatusFound, http.StatusTooManyRequests}, codes)
	assert.Equal(t, http.StatusTooManyRequests, page.status)

	other := httptest.NewRequest("POST", "/users/new", nil)
	other.RemoteAddr = "10.0.0.2:5000"
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, other)
	assert.Equal(t, http.StatusFound, rr.Code)
}

func TestSecurityHeaders(t *testing.T) {
	h := SecurityHeaders(true)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rr.Header().Get("X-Frame-Options"))
	assert.Contains(t, rr.Header().Get("Content-Security-Policy"), "frame-ancestors 'none'")
	assert.NotEmpty(t, rr.Header().Get("Strict-Transport-Security"))
}

func TestMaxBytes(t *testing.T) {
	var parseErr error
	h := MaxBytes(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parseErr = r.ParseForm()
	}))

	req := httptest.NewRequest("POST", "/posts/new", strings.NewReader("content="+strings.Repeat("x", 64)))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	h.ServeHTTP(httptest.NewRecorder(), req)

	var maxErr *http.MaxBytesError
	assert.ErrorAs(t, parseErr, &maxErr)
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	l := PerMinute(1)
	clock := time.Now()
	l.now = func() time.Time { return clock }

	assert.True(t, l.allow("10.0.0.1"))
	assert.False(t, l.allow("10.0.0.1"))
	assert.Equal(t, 1, l.tracked())

	clock = clock.Add(2 * time.Minute)
	assert.True(t, l.allow("10.0.0.2"))
	assert.Equal(t, 1, l.tracked())

	// A returning client starts with a full bucket.
	assert.True(t, l.allow("10.0.0.1"))
	assert.Equal(t, 2, l.tracked())
}

func TestRateLimiter_PlainTextWithoutErrorPage(t *testing.T) {
	h := PerMinute(1).Middleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	var last *httptest.ResponseRecorder
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("POST", "/users/new", nil)
		req.RemoteAddr = "10.0.0.9:5000"
		last = httptest.NewRecorder()
		h.ServeHTTP(last, req)
	}
	assert.Equal(t, http.StatusTooManyRequests, last.Code)
	assert.Equal(t, "60", last.Header().Get("Retry-After"))
}
