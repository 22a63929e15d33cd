package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but does not follow the "Bearer <token>" format
	// (wrong scheme or missing token value).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header carries the
	// Bearer scheme but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// Client-facing response messages. The wording matches the API contract and
// must not leak which internal case produced the failure.
const (
	msgInvalidJSON       = "Invalid JSON was passed"
	msgInvalidCreds      = "Invalid credentials"
	msgUserRegistered    = "User registered successfully"
	msgUsernameExists    = "Username already exists"
	msgBookNotFound      = "Book not found"
	msgBookDeleted       = "Book deleted"
	msgInvalidPagination = "Invalid pagination parameters"
	msgServerError       = "Server Error"
)
