// Package requesttime pins a single "now" per HTTP request so every validation
// clock read inside one request agrees.
package requesttime

import (
	"net/http"
	"time"

	"realestate/pkg/requestcontext"
)

// Middleware captures the current time at the start of the request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
