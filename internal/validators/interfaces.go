// Package validators checks request payloads against their declared field
// constraints (string lengths, value ranges, email format) before any
// business logic runs. A failed check surfaces as a 422 to the client.
package validators

// Validator validates a request payload against the constraints declared on
// its struct tags.
type Validator interface {
	// Validate returns nil when obj satisfies every constraint, or an
	// error wrapping ErrValidationFailed with a field-level description.
	Validate(obj any) error
}
