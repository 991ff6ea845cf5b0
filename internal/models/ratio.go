package models

import (
	"encoding/json"
)

// Ratio is a fraction that is only available when its denominator was non-zero.
// An unavailable Ratio is its zero value and is omitted from JSON by `omitzero`.
type Ratio struct {
	Value float64
	Valid bool
}

// NewRatio returns numerator/denominator, or an unavailable Ratio when denominator is zero.
func NewRatio(numerator, denominator float64) Ratio {
	if denominator == 0 {
		return Ratio{}
	}
	return Ratio{Value: numerator / denominator, Valid: true}
}

// IsZero reports whether the ratio is unavailable.
func (r Ratio) IsZero() bool {
	return !r.Valid
}

func (r Ratio) MarshalJSON() ([]byte, error) {
	if !r.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(r.Value)
}

func (r *Ratio) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = Ratio{}
		return nil
	}
	var value float64
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*r = Ratio{Value: value, Valid: true}
	return nil
}
