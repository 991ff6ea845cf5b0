package http

import (
	"net/http"

	"relay-analytics/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5/middleware"
)

// appResponseWriter is a wrapper around the http.ResponseWriter that stores app details for middleware access
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

// responseStatus returns the status written through w, 200 when the handler never wrote a header.
func responseStatus(w http.ResponseWriter) int {
	if appWriter, ok := w.(*appResponseWriter); ok && appWriter.Status() != 0 {
		return appWriter.Status()
	}
	return http.StatusOK
}

func responseErrorCode(w http.ResponseWriter) string {
	if appWriter, ok := w.(*appResponseWriter); ok {
		return appWriter.ErrorCode()
	}
	return ""
}
