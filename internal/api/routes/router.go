package routes

import (
	"net/http"

	"github.com/hlh-health/facility-registry/internal/api/handlers"
	"github.com/hlh-health/facility-registry/internal/api/middleware"
	"github.com/hlh-health/facility-registry/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	facilityHandler *handlers.FacilityHandler
	ccnHandler      *handlers.CCNHandler

	metrics *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	facilityHandler *handlers.FacilityHandler,
	ccnHandler *handlers.CCNHandler,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		facilityHandler: facilityHandler,
		ccnHandler:      ccnHandler,

		metrics: metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Facility endpoints
	r.mux.HandleFunc("GET /api/facilities/{npi}", r.facilityHandler.GetFacilityType)
	r.mux.HandleFunc("GET /api/facilities/{npi}/related", r.facilityHandler.GetRelated)
	r.mux.HandleFunc("GET /api/facilities/{npi}/profile", r.facilityHandler.GetProfile)

	// CCN search endpoint
	r.mux.HandleFunc("GET /api/ccn/search", r.ccnHandler.SearchCCN)

	// Apply middleware in reverse order (last middleware wraps first)
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)

	// CORS wraps everything so headers are set on every response
	handler = middleware.CORSMiddleware(handler)

	return handler
}
