package middleware

import (
	"net/http"
	"time"

	"github.com/wansing/blog/metrics"
)

// Prometheus records duration and count of each request except for /metrics.
func Prometheus(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrap := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrap, r)
		if r.URL.Path == "/metrics" {
			return
		}
		path := r.URL.Path
		if path == "" {
			path = "/"
		}
		metrics.RecordRequest(r.Method, path, wrap.status, time.Since(start).Seconds())
	})
}
