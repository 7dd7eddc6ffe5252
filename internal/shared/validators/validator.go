package validators

import (
	"hello-devsecops/internal/shared/loggers"

	"github.com/go-playground/validator/v10"
)

// TagLogLevel validates that a string field names a known log level.
const TagLogLevel = "loglevel"

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// New creates a validator with the service's custom tags registered.
func New() *Validate {
	v := validator.New()
	// registration only fails on an empty tag or nil func
	_ = v.RegisterValidation(TagLogLevel, func(fl validator.FieldLevel) bool {
		return loggers.ValidLevel(fl.Field().String())
	})
	return v
}
