package http

import (
	"net/http"

	"hello-devsecops/internal/shared/metrics"
)

const helloMessage = "Hello DevSecOps!"

type helloHandler struct{}

// NewHelloHandler serves GET /.
func NewHelloHandler() AppHttpHandler {
	return helloHandler{}
}

func (helloHandler) Handle(w http.ResponseWriter, _ *http.Request) error {
	writeJSONResponse(w, http.StatusOK, map[string]string{"message": helloMessage})
	return nil
}

type healthHandler struct{}

// NewHealthHandler serves GET /health. It reports ok whenever the process can answer HTTP.
func NewHealthHandler() AppHttpHandler {
	return healthHandler{}
}

func (healthHandler) Handle(w http.ResponseWriter, _ *http.Request) error {
	writeJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
	return nil
}

type simulatedErrorHandler struct{}

// NewSimulatedErrorHandler serves GET /error, which always answers 500 so that
// error-rate dashboards and alerts have something to show.
func NewSimulatedErrorHandler() AppHttpHandler {
	return simulatedErrorHandler{}
}

func (simulatedErrorHandler) Handle(_ http.ResponseWriter, _ *http.Request) error {
	return errSimulated()
}

type metricsHandler struct {
	renderer metrics.Renderer
}

// NewMetricsHandler serves GET /metrics from renderer.
func NewMetricsHandler(renderer metrics.Renderer) AppHttpHandler {
	return &metricsHandler{
		renderer: renderer,
	}
}

// Handle renders the snapshot before writing anything, so a render failure can still become a 500.
func (h *metricsHandler) Handle(w http.ResponseWriter, _ *http.Request) error {
	body, err := h.renderer.Render()
	if err != nil {
		return errInternalMetricsRenderFailed(err)
	}

	w.Header().Set(headerContentType, h.renderer.ContentType())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
	return nil
}

type notFoundHandler struct{}

func (notFoundHandler) Handle(_ http.ResponseWriter, _ *http.Request) error {
	return errRouteNotFound()
}

type methodNotAllowedHandler struct{}

func (methodNotAllowedHandler) Handle(_ http.ResponseWriter, _ *http.Request) error {
	return errMethodNotAllowed()
}
