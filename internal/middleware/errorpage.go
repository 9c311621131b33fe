package middleware

import "net/http"

// ErrorPage answers a request with status and a short message. The server
// passes the handlers' layout-rendered error page.
type ErrorPage func(w http.ResponseWriter, r *http.Request, status int, message string)

func (f ErrorPage) answer(w http.ResponseWriter, r *http.Request, status int, message string) {
	if f == nil {
		http.Error(w, message, status)
		return
	}
	f(w, r, status, message)
}

// statusRecorder captures the status and body size a handler produced.
type statusRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusRecorder) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
