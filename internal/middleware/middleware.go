package middleware

import "net/http"

// Wrap applies the standard chain to one route: metrics capture, rate
// limiting, auth, trace injection, then the handler.
func Wrap(path string, handler http.HandlerFunc) http.HandlerFunc {
	return captureMetrics(path, rateLimit(authenticate(injectTrace(handler))))
}
