package sources

import (
	"relay-analytics/internal/shared/metrics"
)

const (
	fieldScope   = "scope"
	fieldOutcome = "outcome"

	outcomeSuccess = "success"
	outcomeError   = "error"
)

var (
	metricFetchTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubUpstream,
			Name:      "fetch_total",
		},
		[]string{fieldScope, fieldOutcome},
	)

	metricFetchDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubUpstream,
			Name:      "fetch_duration_seconds",
			Buckets:   metrics.ExponentialBuckets(0.05, 2, 10),
		},
		[]string{fieldScope},
	)

	metricRelaysFetchedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubUpstream,
			Name:      "relays_fetched_total",
		},
		[]string{fieldScope},
	)

	metricDistinctRelaysEstimate = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubUpstream,
			Name:      "distinct_relays_estimate",
			Help:      "HyperLogLog estimate of distinct relay fingerprints seen since start.",
		},
	)
)
