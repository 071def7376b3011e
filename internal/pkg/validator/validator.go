// Package validator provides a thin wrapper around the go-playground/validator library,
// enabling declarative struct validation with standardized error formatting.
//
// It supports validating struct fields using tags (e.g., `validate:"required,eth_addr"`) and
// returns one *FieldError per violated rule, joined under ErrValidationFailed. This package
// is initialized automatically and safe to use directly.
package validator

import (
	"errors"
	"fmt"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is returned as the first error in a multi-error chain when validation fails.
//
// This sentinel error allows callers to detect validation failures explicitly,
// even when multiple field errors are returned.
var ErrValidationFailed = errors.New("struct validation failed")

// validator is a singleton instance of the go-playground validator,
// initialized automatically on package load.
var validator *gvalidator.Validate

// errStringFormat defines the template used to describe individual validation errors.
//
// Example: "'Address': value '0x' does not meet the requirements for the 'eth_addr' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
}

// FieldError describes a single struct field that failed a validation rule.
type FieldError struct {
	Field string // Struct field name
	Value any    // Offending value
	Tag   string // Validation tag that failed (e.g., "required")
}

func (e *FieldError) Error() string {
	return fmt.Sprintf(errStringFormat, e.Field, e.Value, e.Tag)
}

// formatError transforms a raw validator error into a multi-error chain rooted at
// ErrValidationFailed, with one *FieldError per failed field. Any other error is
// returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, &FieldError{
			Field: validationErr.Field(),
			Value: validationErr.Value(),
			Tag:   validationErr.Tag(),
		})
	}

	return errors.Join(errs...)
}

// Validate checks if the given struct satisfies its validation tags.
//
// It returns nil if all fields pass validation. Otherwise, it returns a combined error that
// includes ErrValidationFailed and one *FieldError for each field that failed validation.
//
// Example usage:
//
//	type Input struct {
//	    Address string `validate:"required,eth_addr"`
//	}
//
//	var fieldErr *validator.FieldError
//	if err := validator.Validate(input); errors.As(err, &fieldErr) {
//	    // fieldErr.Field names the offending field
//	}
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
