package validators

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RequestValidator validates request DTOs using the `validate` struct tags
// declared on the models package. A single instance is safe for concurrent
// use and is shared across all handlers.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a RequestValidator with struct-tag based
// rules.
func NewRequestValidator() Validator {
	return &RequestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks obj against its declared constraints.
//
// On failure it returns an error wrapping [ErrValidationFailed] whose text
// lists every violated field and rule, e.g.
//
//	request validation failed: Title must satisfy 'min=3'; Priority must satisfy 'lte=5'
func (v *RequestValidator) Validate(obj any) error {
	err := v.validate.Struct(obj)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	violations := make([]string, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		rule := fieldError.Tag()
		if param := fieldError.Param(); param != "" {
			rule = rule + "=" + param
		}
		violations = append(violations, fmt.Sprintf("%s must satisfy '%s'", fieldError.Field(), rule))
	}

	return fmt.Errorf("%w: %s", ErrValidationFailed, strings.Join(violations, "; "))
}
