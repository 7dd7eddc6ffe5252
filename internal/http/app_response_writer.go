package http

import (
	"net/http"

	"hello-devsecops/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5/middleware"
)

// appResponseWriter records the status and the service error of a response so that
// middlewares running after the handler can report them.
type appResponseWriter struct {
	middleware.WrapResponseWriter
	svcError *svcerrors.ServiceError
}

func newAppResponseWriter(w http.ResponseWriter, protoMajor int) *appResponseWriter {
	return &appResponseWriter{
		WrapResponseWriter: middleware.NewWrapResponseWriter(w, protoMajor),
	}
}

func (w *appResponseWriter) SetServiceError(svcError *svcerrors.ServiceError) {
	w.svcError = svcError
}

func (w *appResponseWriter) ErrorCode() string {
	if w.svcError != nil {
		return w.svcError.Code
	}
	return ""
}

// FinalStatus is the status sent to the client. A handler that never wrote a header got 200.
func (w *appResponseWriter) FinalStatus() int {
	if status := w.Status(); status != 0 {
		return status
	}
	return http.StatusOK
}

// responseDetails reads status and error code off w, whether or not it was wrapped.
func responseDetails(w http.ResponseWriter) (status int, errorCode string) {
	if appWriter, ok := w.(*appResponseWriter); ok {
		return appWriter.FinalStatus(), appWriter.ErrorCode()
	}
	return http.StatusOK, ""
}
