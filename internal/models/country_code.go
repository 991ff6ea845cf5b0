package models

// CountryCode is a normalized two-letter lowercase country code (e.g. "de").
type CountryCode string

func (c CountryCode) String() string {
	return string(c)
}
