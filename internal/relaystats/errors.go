package relaystats

import (
	"fmt"

	"relay-analytics/internal/shared/svcerrors"
)

// RelayStatsService errors
const (
	codeInvalidCountryCode = "RLY_1000"

	codeUpstreamUnavailable = "RLY_9000"
)

// errInvalidCountryCode returns an error for a country code that failed normalization.
// The message carries the caller's original input.
func errInvalidCountryCode(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidCountryCode, cause.Error(), cause)
}

// errUpstreamUnavailable returns an error when the relay directory could not be read.
func errUpstreamUnavailable(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUpstreamUnavailableError(codeUpstreamUnavailable, "relay directory unavailable", fmt.Errorf("fetchCountryFailed: %w", cause))
}
