// Package request provides middleware assigning each request a unique ID.
package request

import (
	"net/http"

	"github.com/google/uuid"

	"slotcheck/pkg/requestcontext"
)

// HeaderRequestID is the response header carrying the assigned request ID.
const HeaderRequestID = "X-Request-Id"

// Middleware assigns a UUID to each request, stores it in the context, and
// echoes it in the response headers. An inbound X-Request-Id is honored so
// callers can correlate across services.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set(HeaderRequestID, id)
		ctx := requestcontext.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
