// Package httpapi assembles the HTTP surface: middleware chain, health and
// metrics endpoints, and the scheduling routes. Transport concerns stay
// here; business logic lives in the service packages.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"slotcheck/internal/scheduling/handler"
	dErrors "slotcheck/pkg/domain-errors"
	"slotcheck/pkg/platform/httputil"
	"slotcheck/pkg/platform/middleware/request"
	"slotcheck/pkg/platform/middleware/requesttime"
)

// NewRouter wires all endpoints. Every request gets an ID and a single
// request-scoped "now" so all validations within it share one snapshot.
func NewRouter(schedHandler *handler.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(request.Middleware)
	r.Use(requesttime.Middleware)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "no such endpoint"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "method not allowed"))
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	schedHandler.Register(r)

	return r
}
