package aggregators

import (
	"sort"

	"relay-analytics/internal/models"
)

//go:generate mockgen -source=stats_aggregator.go -destination=./mocks/stats_aggregator_mock.go -package=mocks
type StatsAggregator interface {
	// Aggregate summarizes relays. globalConsensusWeightTotal is the consensus weight of the whole
	// network; when nil or zero the consensus weight fraction is left unavailable.
	Aggregate(relays []models.RelayRecord, globalConsensusWeightTotal *int64) *models.StatsSummary
}

type statsAggregator struct{}

func NewStatsAggregator() StatsAggregator {
	return &statsAggregator{}
}

// asAccumulator collects the relays of one autonomous system while scanning.
type asAccumulator struct {
	asn        string
	name       string
	relayCount int
	bandwidth  float64 // MB/s
}

func (a *statsAggregator) Aggregate(relays []models.RelayRecord, globalConsensusWeightTotal *int64) *models.StatsSummary {
	var (
		runningCount         int
		notRunningCount      int
		totalBandwidthBytes  int64
		totalConsensusWeight int64
	)
	bySystem := make(map[string]*asAccumulator)
	// first-seen order, used as the tie-break when sorting by bandwidth
	systemOrder := make([]*asAccumulator, 0)

	for i := range relays {
		relay := &relays[i]

		if relay.Running {
			runningCount++
		} else {
			notRunningCount++
		}

		bandwidthBytes := relay.AdvertisedBandwidthBytes()
		totalBandwidthBytes += bandwidthBytes
		totalConsensusWeight += relay.ConsensusWeightOrZero()

		asn, name, ok := relay.AutonomousSystem()
		if !ok {
			continue
		}
		system, exists := bySystem[asn]
		if !exists {
			// the name seen first wins for the whole snapshot
			system = &asAccumulator{asn: asn, name: name}
			bySystem[asn] = system
			systemOrder = append(systemOrder, system)
		}
		system.relayCount++
		system.bandwidth += toMegabytesPerSec(bandwidthBytes)
	}

	totalBandwidth := toMegabytesPerSec(totalBandwidthBytes)

	summary := &models.StatsSummary{
		RunningCount:    runningCount,
		NotRunningCount: notRunningCount,
		TotalBandwidth:  totalBandwidth,
		UniqueASCount:   len(systemOrder),
		ASDistribution:  make([]models.AsGroup, 0, len(systemOrder)),
	}

	if globalConsensusWeightTotal != nil {
		summary.ConsensusWeightFraction = models.NewRatio(float64(totalConsensusWeight), float64(*globalConsensusWeightTotal))
	}

	for _, system := range systemOrder {
		summary.ASDistribution = append(summary.ASDistribution, models.AsGroup{
			ASN:               system.asn,
			Name:              system.name,
			RelayCount:        system.relayCount,
			Bandwidth:         system.bandwidth,
			BandwidthFraction: models.NewRatio(system.bandwidth, totalBandwidth),
		})
	}

	sort.SliceStable(summary.ASDistribution, func(i, j int) bool {
		return summary.ASDistribution[i].Bandwidth > summary.ASDistribution[j].Bandwidth
	})

	return summary
}

func toMegabytesPerSec(bytesPerSec int64) float64 {
	return float64(bytesPerSec) / models.BytesPerMegabyte
}
