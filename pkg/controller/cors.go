package controller

import "net/http"

// WithCORS returns a middleware that sets permissive CORS headers on every
// response and short-circuits OPTIONS preflight requests with 204 No Content.
func WithCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Headers",
			"Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Request-Id")
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, DELETE")
		w.Header().Set("Access-Control-Expose-Headers", "X-Request-Id, Retry-After")

		// handle preflight requests quickly
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)

			return
		}

		next.ServeHTTP(w, r)
	})
}
