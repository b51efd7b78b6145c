package middleware

import (
	"net/http"
	"time"

	"agentdesk/internal/platform/metrics"
)

func Metrics(collector *metrics.Collector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if collector == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r)

			route := routePattern(r)
			if route != "" {
				route = r.Method + " " + route
			}
			collector.Record(route, recorder.status, time.Since(start))
		})
	}
}
