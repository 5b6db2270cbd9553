// filepath: internal/httpserver/middleware.go
package httpserver

import (
	"net/http"
	"time"

	"todohub/internal/httpserver/requestid"
	"todohub/internal/metrics"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// unmatchedRoute labels requests no route accepted, keeping metric cardinality bounded.
const unmatchedRoute = "unmatched"

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// Middleware provides the request id, access log and metrics middleware.
type Middleware struct {
	Logger  *logrus.Logger
	Metrics *metrics.Collector // optional
}

// NewMiddleware creates a new instance of Middleware.
func NewMiddleware(logger *logrus.Logger, collector *metrics.Collector) *Middleware {
	return &Middleware{Logger: logger, Metrics: collector}
}

// RequestID accepts the caller's X-Request-ID or assigns a new ULID, stores it
// in the request context and echoes it on the response.
func (m *Middleware) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := requestid.Sanitize(r.Header.Get(requestid.Header))
		w.Header().Set(requestid.Header, id)
		next.ServeHTTP(w, r.WithContext(requestid.NewContext(r.Context(), id)))
	})
}

// Observe writes one access log line per request and records request metrics.
func (m *Middleware) Observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		duration := time.Since(start)
		route := routeTemplate(r)
		if m.Metrics != nil {
			m.Metrics.ObserveRequest(route, r.Method, rec.status, duration)
		}

		entry := m.Logger.WithFields(logrus.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"route":      route,
			"status":     rec.status,
			"duration":   duration.String(),
			"request_id": requestid.FromContext(r.Context()),
			"remote":     r.RemoteAddr,
		})
		if rec.status >= http.StatusInternalServerError {
			entry.Warn("HTTP request")
		} else {
			entry.Info("HTTP request")
		}
	})
}

// Wrap applies the middleware chain to a handler outside the router's own chain.
func (m *Middleware) Wrap(h http.Handler) http.Handler {
	return m.RequestID(m.Observe(h))
}

func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tmpl, err := route.GetPathTemplate(); err == nil {
			return tmpl
		}
	}
	return unmatchedRoute
}
