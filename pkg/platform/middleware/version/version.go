// Package version provides middleware for API version extraction.
package version

import (
	"net/http"

	id "realestate/pkg/domain"
	"realestate/pkg/requestcontext"
)

// ExtractVersion creates middleware that records the API version of a chi subrouter.
//
//	r.Route("/api/v1", func(v1 chi.Router) {
//	    v1.Use(version.ExtractVersion(id.APIVersionV1))
//	})
func ExtractVersion(version id.APIVersion) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := requestcontext.WithAPIVersion(r.Context(), version)
			w.Header().Set("X-API-Version", version.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
