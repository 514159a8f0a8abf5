// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Provided middlewares:
//   - WithCORS: Adds permissive CORS headers and handles OPTIONS preflight.
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//   - WithRateLimit: Rejects requests above a token-bucket budget with 429 Too Many Requests.
//   - WithMaxBodyBytes: Caps the size of request bodies.
//
// Provided helpers:
//   - PprofMux: Returns a ServeMux exposing net/http/pprof handlers.
//   - WriteError: Writes the JSON error body shared by all API responses.
package controller
