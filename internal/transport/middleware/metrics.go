package middleware

import (
	"net/http"
	"time"
)

// RequestRecorder receives one observation per served HTTP request.
type RequestRecorder interface {
	RecordRequest(method, endpoint string, statusCode int, d time.Duration)
}

// Metrics returns middleware that reports every request under the given
// endpoint label. The label is fixed per route so path parameters never
// explode metric cardinality.
func Metrics(rec RequestRecorder, endpoint string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			rec.RecordRequest(r.Method, endpoint, sw.status, time.Since(start))
		})
	}
}
