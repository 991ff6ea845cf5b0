package http

import (
	"net/http"
	"strings"

	"github.com/mileusna/useragent"
)

const (
	headerRequestID   = "x-request-id"
	headerContentType = "content-type"
	headerUserAgent   = "user-agent"
)

const (
	clientFamilyUnknown = "unknown"
	clientFamilyOther   = "other"
)

func requestID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerRequestID))
}

func setRequestID(r *http.Request, requestID string) {
	r.Header.Set(headerRequestID, requestID)
}

// clientFamily reduces the User-Agent header to its browser or tool name.
func clientFamily(r *http.Request) string {
	ua := strings.TrimSpace(r.Header.Get(headerUserAgent))
	if ua == "" {
		return clientFamilyUnknown
	}
	parsed := useragent.Parse(ua)
	if parsed.Name != "" {
		return parsed.Name
	}
	return clientFamilyOther
}
