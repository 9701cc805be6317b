package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/dpetrucci/hackfest/internal/metrics"
	"github.com/dpetrucci/hackfest/internal/middleware"
)

// Metrics records request counts and latencies per route. Routes are
// labelled with the mux template, not the raw path, to bound the label
// cardinality.
func Metrics(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := &middleware.ResponseWriter{ResponseWriter: w}

			next.ServeHTTP(wrapped, r)

			route := r.URL.Path
			if current := mux.CurrentRoute(r); current != nil {
				if tpl, err := current.GetPathTemplate(); err == nil {
					route = tpl
				}
			}

			m.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(wrapped.Status())).Inc()
			m.HTTPRequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		})
	}
}
