package appMiddleware

import (
	"net/http"
)

// LimitBody caps request bodies at maxBytes. Reads past the limit fail,
// which makes form parsing return an error instead of buffering the body.
func LimitBody(maxBytes int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil && maxBytes > 0 {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}
