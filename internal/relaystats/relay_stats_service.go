package relaystats

import (
	"context"

	"relay-analytics/internal/aggregators"
	"relay-analytics/internal/countries"
	"relay-analytics/internal/models"
	"relay-analytics/internal/shared/loggers"
	"relay-analytics/internal/shared/metrics"
	"relay-analytics/internal/sources"

	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=relay_stats_service.go -destination=./mocks/relay_stats_service_mock.go -package=mocks
type RelayStatsService interface {
	// CountryReport normalizes rawCountry, fetches its relays and returns their statistics.
	CountryReport(ctx context.Context, rawCountry string) (*models.CountryReport, error)
}

type relayStatsService struct {
	source        sources.RelaySource
	aggregator    aggregators.StatsAggregator
	networkWeight bool
}

// NewRelayStatsService builds the service. When networkWeight is false the network-wide
// document is never fetched and reports carry no consensus weight fraction.
func NewRelayStatsService(source sources.RelaySource, aggregator aggregators.StatsAggregator, networkWeight bool) RelayStatsService {
	return &relayStatsService{
		source:        source,
		aggregator:    aggregator,
		networkWeight: networkWeight,
	}
}

func (s *relayStatsService) CountryReport(ctx context.Context, rawCountry string) (*models.CountryReport, error) {
	logger := loggers.Ctx(ctx)

	country, err := countries.Normalize(rawCountry)
	if err != nil {
		svcErr := errInvalidCountryCode(err)
		metricReportsTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}
	logger.Debug().Str(loggers.FieldCountry, country.String()).Msg("building country report")

	var (
		countrySnapshot *models.RelaySnapshot
		networkSnapshot *models.RelaySnapshot
		networkErr      error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		snapshot, err := s.source.FetchCountry(gctx, country)
		if err != nil {
			return err
		}
		countrySnapshot = snapshot
		return nil
	})
	if s.networkWeight {
		// never fails the group; a missing network total only drops one fraction
		g.Go(func() error {
			networkSnapshot, networkErr = s.source.FetchNetwork(gctx)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		svcErr := errUpstreamUnavailable(err)
		metricReportsTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}

	var globalTotal *int64
	if networkErr != nil {
		logger.Warn().
			Err(networkErr).
			Str(loggers.FieldCountry, country.String()).
			Str(loggers.FieldUpstreamScope, sources.ScopeNetwork).
			Msg("network consensus weight unavailable, omitting consensus weight fraction")
	} else if networkSnapshot != nil {
		total := networkSnapshot.TotalConsensusWeight()
		globalTotal = &total
	}

	summary := s.aggregator.Aggregate(countrySnapshot.Relays, globalTotal)
	recordUnavailableFractions(summary)

	metricReportsTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return &models.CountryReport{
		Country:         country,
		RelaysPublished: countrySnapshot.RelaysPublished,
		StatsSummary:    *summary,
	}, nil
}

func recordUnavailableFractions(summary *models.StatsSummary) {
	if !summary.ConsensusWeightFraction.Valid {
		metricFractionUnavailableTotal.WithLabelValues(fractionConsensusWeight).Inc()
	}
	if len(summary.ASDistribution) > 0 && !summary.ASDistribution[0].BandwidthFraction.Valid {
		metricFractionUnavailableTotal.WithLabelValues(fractionBandwidth).Inc()
	}
}
