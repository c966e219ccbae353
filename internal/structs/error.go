package structs

import "errors"

var (
	ErrBadRequest         = errors.New("bad request")
	ErrNotFound           = errors.New("no documents in result")
	ErrUniqueViolation    = errors.New("unique violation error")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
