package sources

import (
	"context"
	"sync"
	"time"

	"relay-analytics/internal/models"
	"relay-analytics/internal/shared/loggers"

	"github.com/axiomhq/hyperloglog"
)

type instrumentedRelaySource struct {
	inner RelaySource

	mu     sync.Mutex
	sketch *hyperloglog.Sketch
}

// NewInstrumentedRelaySource wraps inner with fetch metrics and a running estimate of how many
// distinct relays have been observed.
func NewInstrumentedRelaySource(inner RelaySource) RelaySource {
	return &instrumentedRelaySource{
		inner:  inner,
		sketch: hyperloglog.New14(),
	}
}

func (s *instrumentedRelaySource) FetchCountry(ctx context.Context, country models.CountryCode) (*models.RelaySnapshot, error) {
	return s.observe(ctx, ScopeCountry, func() (*models.RelaySnapshot, error) {
		return s.inner.FetchCountry(ctx, country)
	})
}

func (s *instrumentedRelaySource) FetchNetwork(ctx context.Context) (*models.RelaySnapshot, error) {
	return s.observe(ctx, ScopeNetwork, func() (*models.RelaySnapshot, error) {
		return s.inner.FetchNetwork(ctx)
	})
}

func (s *instrumentedRelaySource) observe(ctx context.Context, scope string, fetch func() (*models.RelaySnapshot, error)) (*models.RelaySnapshot, error) {
	logger := loggers.Ctx(ctx)
	start := time.Now()

	snapshot, err := fetch()
	metricFetchDuration.WithLabelValues(scope).Observe(time.Since(start).Seconds())
	if err != nil {
		metricFetchTotal.WithLabelValues(scope, outcomeError).Inc()
		return nil, err
	}

	metricFetchTotal.WithLabelValues(scope, outcomeSuccess).Inc()
	metricRelaysFetchedTotal.WithLabelValues(scope).Add(float64(len(snapshot.Relays)))

	estimate := s.recordFingerprints(snapshot.Relays)
	metricDistinctRelaysEstimate.Set(float64(estimate))

	logger.Debug().
		Str(loggers.FieldUpstreamScope, scope).
		Int(loggers.FieldRelayCount, len(snapshot.Relays)).
		Dur(loggers.FieldDuration, time.Since(start)).
		Msg("fetched relay snapshot")

	return snapshot, nil
}

// recordFingerprints adds fingerprints to the sketch and returns the current estimate.
func (s *instrumentedRelaySource) recordFingerprints(relays []models.RelayRecord) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range relays {
		if relays[i].Fingerprint == "" {
			continue
		}
		s.sketch.Insert([]byte(relays[i].Fingerprint))
	}
	return s.sketch.Estimate()
}

// DistinctRelaysEstimate returns the approximate number of distinct fingerprints seen by source,
// or zero when source is not instrumented.
func DistinctRelaysEstimate(source RelaySource) uint64 {
	s, ok := source.(*instrumentedRelaySource)
	if !ok {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sketch.Estimate()
}
