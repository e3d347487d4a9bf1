package errors

import "errors"

var (
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrInvalidPaymentInput = errors.New("invalid payment input")
	ErrForbidden           = errors.New("forbidden")
	ErrApplicationNotFound = errors.New("application not found")
)
