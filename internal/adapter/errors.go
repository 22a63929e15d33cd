package adapter

import "errors"

// Sentinel errors mapped from API response statuses. Callers match them with
// [errors.Is]; the server-provided message, when present, wraps them.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("client unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrServer       = errors.New("server error")
)
