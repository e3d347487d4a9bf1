package errors

import "errors"

var (
	ErrUnauthorized  = errors.New("unauthorized")
	ErrQueryRequired = errors.New("search query is required")
)
