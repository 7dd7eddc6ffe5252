package http

import (
	"net/http"

	"hello-devsecops/internal/shared/loggers"
	"hello-devsecops/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// RouterOptions tunes the router without changing its routes.
type RouterOptions struct {
	// NormalizeRoutes labels request metrics by route pattern instead of raw path.
	NormalizeRoutes bool
}

// NewRouter creates and configures the HTTP router.
// It registers the request metrics on registry and serves registry on /metrics.
func NewRouter(registry *metrics.Registry, httpLogger loggers.Logger, opts RouterOptions) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger, newHTTPMetrics(registry), opts.NormalizeRoutes)

	router.NotFound(errorHandlingAdapter(notFoundHandler{}))
	router.MethodNotAllowed(errorHandlingAdapter(methodNotAllowedHandler{}))

	// Routes
	router.Get("/", errorHandlingAdapter(NewHelloHandler()))
	router.Get("/health", errorHandlingAdapter(NewHealthHandler()))
	router.Get("/error", errorHandlingAdapter(NewSimulatedErrorHandler()))
	router.Get("/metrics", errorHandlingAdapter(NewMetricsHandler(registry)))

	return router
}
