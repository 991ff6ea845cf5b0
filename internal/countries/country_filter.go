package countries

import (
	"errors"
	"fmt"
	"strings"

	"relay-analytics/internal/models"
	"relay-analytics/internal/shared/validators"
)

var ErrInvalidCountryCode = errors.New("invalid country code")

// InvalidCountryCodeError carries the caller's input exactly as received.
type InvalidCountryCodeError struct {
	Input string
}

func (e *InvalidCountryCodeError) Error() string {
	return fmt.Sprintf("%s %q: must be two letters (e.g. de, us, fr)", ErrInvalidCountryCode, e.Input)
}

func (e *InvalidCountryCodeError) Is(target error) bool {
	return target == ErrInvalidCountryCode
}

var validate = validators.New()

// Normalize trims and lower-cases input and accepts it only when exactly two ASCII letters remain.
func Normalize(input string) (models.CountryCode, error) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if err := validate.Var(normalized, validators.TagCountryCode); err != nil {
		return "", &InvalidCountryCodeError{Input: input}
	}
	return models.CountryCode(normalized), nil
}
