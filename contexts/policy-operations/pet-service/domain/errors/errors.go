package errors

import "errors"

var (
	ErrPetNotFound        = errors.New("pet not found")
	ErrInvalidPetInput    = errors.New("invalid pet input")
	ErrForbidden          = errors.New("forbidden")
	ErrPetHasApplications = errors.New("pet still has applications")
)
