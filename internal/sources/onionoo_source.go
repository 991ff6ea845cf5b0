package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"relay-analytics/internal/models"

	"github.com/hashicorp/go-cleanhttp"
)

const (
	detailsPath      = "/details"
	maxDocumentBytes = 256 * 1024 * 1024

	countryFields = "fingerprint,nickname,country,running,advertised_bandwidth,consensus_weight,as,as_name"
	networkFields = "fingerprint,consensus_weight"
)

type onionooSource struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

// NewOnionooSource returns a RelaySource backed by the Onionoo details endpoint at baseURL.
// timeout bounds each whole request including the body read.
func NewOnionooSource(baseURL, userAgent string, timeout time.Duration) RelaySource {
	client := cleanhttp.DefaultPooledClient()
	client.Timeout = timeout

	return &onionooSource{
		client:    client,
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
	}
}

func (s *onionooSource) FetchCountry(ctx context.Context, country models.CountryCode) (*models.RelaySnapshot, error) {
	query := url.Values{}
	query.Set("country", country.String())
	query.Set("fields", countryFields)
	return s.fetchDetails(ctx, query)
}

func (s *onionooSource) FetchNetwork(ctx context.Context) (*models.RelaySnapshot, error) {
	query := url.Values{}
	query.Set("fields", networkFields)
	return s.fetchDetails(ctx, query)
}

func (s *onionooSource) fetchDetails(ctx context.Context, query url.Values) (*models.RelaySnapshot, error) {
	endpoint := s.baseURL + detailsPath + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build details request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("details request failed: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	return decodeSnapshot(resp.Body)
}
