package errors

import "errors"

var (
	ErrUnauthorized = errors.New("unauthorized")
)
