package relaystats

import (
	"relay-analytics/internal/shared/metrics"
)

const (
	fieldFraction = "fraction"

	fractionConsensusWeight = "consensus_weight"
	fractionBandwidth       = "as_bandwidth"
)

var (
	metricReportsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStats,
			Name:      "reports_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricFractionUnavailableTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStats,
			Name:      "fraction_unavailable_total",
		},
		[]string{fieldFraction},
	)
)
