package validators

import (
	"github.com/go-playground/validator/v10"
)

// TagCountryCode validates a normalized two-letter lowercase ASCII country code.
const TagCountryCode = "country_code"

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// New creates a new validator instance with the shared aliases registered.
func New() *Validate {
	v := validator.New()
	v.RegisterAlias(TagCountryCode, "len=2,alpha,lowercase")
	return v
}
