package http

import (
	"fmt"

	"hello-devsecops/internal/shared/svcerrors"
)

const (
	codeSimulatedError   = "APP_5000"
	codeRouteNotFound    = "HTTP_4040"
	codeMethodNotAllowed = "HTTP_4050"

	codeInternalMetricsRenderFailed = "MET_9000"
)

const simulatedErrorMessage = "simulated error for testing"

func errSimulated() *svcerrors.ServiceError {
	return svcerrors.NewSimulatedError(codeSimulatedError, simulatedErrorMessage)
}

func errRouteNotFound() *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeRouteNotFound, "route not found")
}

func errMethodNotAllowed() *svcerrors.ServiceError {
	return svcerrors.NewMethodNotAllowedError(codeMethodNotAllowed, "method not allowed")
}

// errInternalMetricsRenderFailed returns an error when the registry cannot produce a snapshot.
func errInternalMetricsRenderFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalMetricsRenderFailed, fmt.Errorf("metricsRenderFailed: %w", cause))
}
