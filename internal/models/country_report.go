package models

// CountryReport is a StatsSummary for the relays of one country.
type CountryReport struct {
	Country         CountryCode `json:"country"`
	RelaysPublished string      `json:"relaysPublished,omitempty"`
	StatsSummary
}
