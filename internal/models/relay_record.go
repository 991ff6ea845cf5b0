package models

// RelayRecord is one relay entry of an Onionoo details document. Optional attributes are pointers
// so that "absent" stays distinguishable from zero; callers read them through the accessor methods
// below, which apply the absent-means-zero/excluded policy in one place.
//
// Example JSON:
//
//	{
//	  "nickname": "relayon0",
//	  "fingerprint": "0011BD2485AD45D984EC4159C88FC066E5E3300E",
//	  "country": "de",
//	  "running": true,
//	  "advertised_bandwidth": 2097152,
//	  "consensus_weight": 1400,
//	  "as": "AS24940",
//	  "as_name": "Hetzner Online GmbH"
//	}
type RelayRecord struct {
	Nickname             string  `json:"nickname,omitempty"`
	Fingerprint          string  `json:"fingerprint,omitempty"`
	Country              string  `json:"country,omitempty"`
	Running              bool    `json:"running"`
	AdvertisedBandwidth  *int64  `json:"advertised_bandwidth,omitempty"`
	ConsensusWeight      *int64  `json:"consensus_weight,omitempty"`
	AutonomousSystemID   *string `json:"as,omitempty"`
	AutonomousSystemName *string `json:"as_name,omitempty"`
}

// AdvertisedBandwidthBytes returns the advertised bandwidth in bytes/sec, zero when unknown.
func (r *RelayRecord) AdvertisedBandwidthBytes() int64 {
	if r.AdvertisedBandwidth == nil {
		return 0
	}
	return *r.AdvertisedBandwidth
}

// ConsensusWeightOrZero returns the consensus weight, zero when unknown.
func (r *RelayRecord) ConsensusWeightOrZero() int64 {
	if r.ConsensusWeight == nil {
		return 0
	}
	return *r.ConsensusWeight
}

// AutonomousSystem returns the AS id and name. ok is false unless both are present and non-empty;
// such relays are left out of AS grouping.
func (r *RelayRecord) AutonomousSystem() (asn string, name string, ok bool) {
	if r.AutonomousSystemID == nil || r.AutonomousSystemName == nil {
		return "", "", false
	}
	if *r.AutonomousSystemID == "" || *r.AutonomousSystemName == "" {
		return "", "", false
	}
	return *r.AutonomousSystemID, *r.AutonomousSystemName, true
}
