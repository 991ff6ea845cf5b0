package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientFamily(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		userAgent string
		want      string
	}{
		{name: "missing", userAgent: "", want: "unknown"},
		{name: "blank", userAgent: "   ", want: "unknown"},
		{name: "firefox", userAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:123.0) Gecko/20100101 Firefox/123.0", want: "Firefox"},
		{name: "unknown tool", userAgent: "SomeUnknownUserAgent/1.0", want: "SomeUnknownUserAgent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.userAgent != "" {
				req.Header.Set(headerUserAgent, tt.userAgent)
			}
			assert.Equal(t, tt.want, clientFamily(req))
		})
	}
}

func TestRequestID_Trimmed(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(headerRequestID, "  abc  ")
	assert.Equal(t, "abc", requestID(req))

	setRequestID(req, "def")
	assert.Equal(t, "def", requestID(req))
}
