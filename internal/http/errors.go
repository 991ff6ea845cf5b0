package http

import (
	"fmt"

	"relay-analytics/internal/shared/svcerrors"
)

const (
	codeInternalPageRenderFailed = "WEB_9000"
)

// errInternalPageRenderFailed returns an error when an HTML template fails to execute.
func errInternalPageRenderFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalPageRenderFailed, fmt.Errorf("pageRenderFailed: %w", cause))
}
