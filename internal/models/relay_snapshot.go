package models

// RelaySnapshot is a decoded upstream details document.
type RelaySnapshot struct {
	RelaysPublished string        `json:"relays_published"`
	Relays          []RelayRecord `json:"relays"`
}

// TotalConsensusWeight sums the consensus weight of every relay in the snapshot.
func (s *RelaySnapshot) TotalConsensusWeight() int64 {
	var total int64
	for i := range s.Relays {
		total += s.Relays[i].ConsensusWeightOrZero()
	}
	return total
}

// FilterCountry returns a snapshot holding only the relays located in country.
func (s *RelaySnapshot) FilterCountry(country CountryCode) *RelaySnapshot {
	filtered := &RelaySnapshot{
		RelaysPublished: s.RelaysPublished,
		Relays:          make([]RelayRecord, 0),
	}
	for _, relay := range s.Relays {
		if relay.Country == string(country) {
			filtered.Relays = append(filtered.Relays, relay)
		}
	}
	return filtered
}
