package models

// BytesPerMegabyte converts advertised bandwidth (bytes/sec) to megabytes/sec.
const BytesPerMegabyte = 1024 * 1024

// AsGroup holds the relays of one autonomous system within a StatsSummary.
type AsGroup struct {
	ASN               string  `json:"asn"`
	Name              string  `json:"name"`
	RelayCount        int     `json:"relayCount"`
	Bandwidth         float64 `json:"bandwidth"` // MB/s
	BandwidthFraction Ratio   `json:"bandwidthFraction,omitzero"`
}

// StatsSummary is the aggregate view over one set of relays.
//
// Example JSON:
//
//	{
//	  "runningCount": 1,
//	  "notRunningCount": 1,
//	  "totalBandwidth": 3,
//	  "consensusWeightFraction": 0.0125,
//	  "uniqueASCount": 1,
//	  "asDistribution": [
//	    {"asn": "AS1", "name": "Net1", "relayCount": 2, "bandwidth": 3, "bandwidthFraction": 1}
//	  ]
//	}
//
// consensusWeightFraction and bandwidthFraction are omitted when their denominator was zero.
type StatsSummary struct {
	RunningCount            int       `json:"runningCount"`
	NotRunningCount         int       `json:"notRunningCount"`
	TotalBandwidth          float64   `json:"totalBandwidth"` // MB/s
	ConsensusWeightFraction Ratio     `json:"consensusWeightFraction,omitzero"`
	UniqueASCount           int       `json:"uniqueASCount"`
	ASDistribution          []AsGroup `json:"asDistribution"`
}

// RelayCount returns the number of relays the summary was computed from.
func (s *StatsSummary) RelayCount() int {
	return s.RunningCount + s.NotRunningCount
}
