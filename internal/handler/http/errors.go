package http

import "errors"

// ErrEmptyAuthorizationHeader is logged by the auth middleware when the
// incoming request does not include an "Authorization" header at all.
// Malformed headers surface through [utils.ParseBearerToken] instead.
var ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

// Client-facing detail strings. They are part of the public contract and
// deliberately carry no hint of the internal failure cause.
const (
	detailInvalidCredentials = "Invalid credentials"
	detailUnauthorized       = "Unauthorized"
	detailUserExists         = "User already exists"
	detailDataNotFound       = "Data not found"
	detailTodoNotFound       = "Todo not found"
	detailWrongConfirmation  = "Confirm password is incorrect"
)
