package controller

import (
	"math"
	"net/http"
	"strconv"

	"promptparser/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// WithRateLimit returns a middleware admitting at most rps requests per second
// with bursts of up to burst requests. Rejected requests get 429 with a
// Retry-After header. A non-positive rps disables limiting.
func WithRateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	if rps <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				retryAfter := int(math.Ceil(1 / rps))
				logger.Warn(r.Context(), "request rate limited", zap.String("client_ip", GetClientIP(r)))

				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				WriteError(w, http.StatusTooManyRequests, "RATE_LIMITED", "too many requests")

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// WithMaxBodyBytes returns a middleware limiting request bodies to n bytes.
// A non-positive n disables the limit.
func WithMaxBodyBytes(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if n <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, n)
			next.ServeHTTP(w, r)
		})
	}
}
