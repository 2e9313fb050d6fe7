package validators

import "errors"

// ErrValidationFailed is wrapped by every validation error returned from
// [Validator.Validate]. The transport layer matches it with [errors.Is] and
// maps it to a 422 response.
var ErrValidationFailed = errors.New("request validation failed")
