// Package middleware contains the HTTP middlewares which wrap the frontend.
package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ctxKey int

const requestIDKey ctxKey = 0

// RequestID returns the request id which RequestLog has stored in ctx, or an empty string.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// responseWriter captures status and size.
type responseWriter struct {
	http.ResponseWriter
	status int
	size   int
}

func (w *responseWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// RequestLog generates a request id, sets the X-Request-ID response header and logs one line per request.
func RequestLog(log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			reqID := uuid.New().String()
			start := time.Now()

			r = r.WithContext(context.WithValue(r.Context(), requestIDKey, reqID))
			w.Header().Set("X-Request-ID", reqID)

			wrap := &responseWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(wrap, r)

			log.Infow("request",
				"request_id", reqID,
				"method", r.Method,
				"path", r.URL.Path,
				"status", wrap.status,
				"size", wrap.size,
				"duration", time.Since(start),
			)
		})
	}
}
