package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const detailsDocument = `{
  "version": "8.0",
  "relays_published": "2024-05-01 12:00:00",
  "relays": [
    {"nickname": "alpha", "fingerprint": "AAAA", "country": "de", "running": true,
     "advertised_bandwidth": 1048576, "consensus_weight": 100, "as": "AS1", "as_name": "One"},
    {"nickname": "beta", "fingerprint": "BBBB", "country": "de", "running": false,
     "consensus_weight": 50}
  ],
  "bridges": []
}`

func TestOnionooSource_FetchCountry(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/details", r.URL.Path)
		assert.Equal(t, "de", r.URL.Query().Get("country"))
		assert.Equal(t, countryFields, r.URL.Query().Get("fields"))
		assert.Equal(t, "relay-analytics-test", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(detailsDocument))
	}))
	defer server.Close()

	source := NewOnionooSource(server.URL+"/", "relay-analytics-test", 5*time.Second)
	snapshot, err := source.FetchCountry(context.Background(), "de")
	require.NoError(t, err)

	assert.Equal(t, "2024-05-01 12:00:00", snapshot.RelaysPublished)
	require.Len(t, snapshot.Relays, 2)
	assert.Equal(t, "alpha", snapshot.Relays[0].Nickname)
	assert.Equal(t, int64(1048576), snapshot.Relays[0].AdvertisedBandwidthBytes())
	asn, name, ok := snapshot.Relays[0].AutonomousSystem()
	assert.True(t, ok)
	assert.Equal(t, "AS1", asn)
	assert.Equal(t, "One", name)
	assert.Nil(t, snapshot.Relays[1].AdvertisedBandwidth)
	assert.False(t, snapshot.Relays[1].Running)
}

func TestOnionooSource_FetchNetwork(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.Query().Get("country"))
		assert.Equal(t, networkFields, r.URL.Query().Get("fields"))
		_, _ = w.Write([]byte(`{"relays_published":"x","relays":[{"consensus_weight":7},{"consensus_weight":3}]}`))
	}))
	defer server.Close()

	source := NewOnionooSource(server.URL, "", 5*time.Second)
	snapshot, err := source.FetchNetwork(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(10), snapshot.TotalConsensusWeight())
}

func TestOnionooSource_EmptyRelayList(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"relays_published":"x"}`))
	}))
	defer server.Close()

	snapshot, err := NewOnionooSource(server.URL, "", 5*time.Second).FetchCountry(context.Background(), "zz")
	require.NoError(t, err)
	assert.NotNil(t, snapshot.Relays)
	assert.Empty(t, snapshot.Relays)
}

func TestOnionooSource_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "server error", status: http.StatusInternalServerError, body: "oops", wantErr: ErrUnexpectedStatus},
		{name: "bad request", status: http.StatusBadRequest, body: "{}", wantErr: ErrUnexpectedStatus},
		{name: "malformed json", status: http.StatusOK, body: "{not json", wantErr: ErrDecodeFailed},
		{name: "wrong shape", status: http.StatusOK, body: `{"relays": {"a": 1}}`, wantErr: ErrDecodeFailed},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			snapshot, err := NewOnionooSource(server.URL, "", 5*time.Second).FetchCountry(context.Background(), "de")
			assert.Nil(t, snapshot)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOnionooSource_ContextCanceled(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewOnionooSource(server.URL, "", 5*time.Second).FetchNetwork(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestOnionooSource_Unreachable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := NewOnionooSource(url, "", time.Second).FetchNetwork(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "details request failed")
}
