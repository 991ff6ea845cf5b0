package svcerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsServiceError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr *ServiceError
		wantOk  bool
	}{
		{
			name:    "nil input",
			err:     nil,
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "regular error",
			err:     errors.New("x"),
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "direct ServiceError",
			err:     NewInvalidArgumentError("RLY_1000", "invalid country code", nil),
			wantErr: NewInvalidArgumentError("RLY_1000", "invalid country code", nil),
			wantOk:  true,
		},
		{
			name:    "wrapped ServiceError",
			err:     fmt.Errorf("wrap: %w", NewUpstreamUnavailableError("RLY_9000", "relay directory unavailable", nil)),
			wantErr: NewUpstreamUnavailableError("RLY_9000", "relay directory unavailable", nil),
			wantOk:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotErr, gotOk := AsServiceError(tt.err)

			assert.Equal(t, tt.wantOk, gotOk, "AsServiceError() ok value mismatch")

			if tt.wantErr == nil {
				assert.Nil(t, gotErr, "AsServiceError() should return nil error")
			} else {
				require.NotNil(t, gotErr, "AsServiceError() should return non-nil error")
				assert.Equal(t, tt.wantErr.Category, gotErr.Category, "Category mismatch")
				assert.Equal(t, tt.wantErr.Code, gotErr.Code, "Code mismatch")
				assert.Equal(t, tt.wantErr.Message, gotErr.Message, "Message mismatch")
			}
		})
	}
}

func TestServiceError_Categories(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name         string
		err          *ServiceError
		wantCategory string
		wantStatus   int
		wantInternal bool
		wantUpstream bool
	}{
		{
			name:         "invalid argument",
			err:          NewInvalidArgumentError("RLY_1000", "bad", cause),
			wantCategory: "invalid_argument",
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "resource conflict",
			err:          NewResourceConflictError("RLY_2000", "conflict", cause),
			wantCategory: "resource_conflict",
			wantStatus:   http.StatusConflict,
		},
		{
			name:         "upstream unavailable",
			err:          NewUpstreamUnavailableError("RLY_9000", "down", cause),
			wantCategory: "upstream_unavailable",
			wantStatus:   http.StatusBadGateway,
			wantUpstream: true,
		},
		{
			name:         "internal undefined",
			err:          NewInternalErrorUndefined(cause),
			wantCategory: "internal",
			wantStatus:   http.StatusInternalServerError,
			wantInternal: true,
		},
		{
			name:         "internal panic",
			err:          NewInternalErrorPanic(cause),
			wantCategory: "internal",
			wantStatus:   http.StatusInternalServerError,
			wantInternal: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCategory, tt.err.Category)
			assert.Equal(t, tt.wantStatus, tt.err.HttpStatusCode)
			assert.Equal(t, tt.wantInternal, tt.err.IsInternalError())
			assert.Equal(t, tt.wantUpstream, tt.err.IsUpstreamError())
			assert.ErrorIs(t, tt.err, cause)
		})
	}
}

func TestServiceError_Error(t *testing.T) {
	err := NewInvalidArgumentError("RLY_1000", "invalid country code", nil)
	assert.Equal(t, "RLY_1000: invalid country code", err.Error())
	assert.Nil(t, err.Unwrap())
}
