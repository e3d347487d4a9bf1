package errors

import "errors"

var (
	ErrApplicationNotFound     = errors.New("application not found")
	ErrInvalidApplicationInput = errors.New("invalid application input")
	ErrInvalidStatusTransition = errors.New("invalid application status transition")
	ErrForbidden               = errors.New("forbidden")
	ErrVersionConflict         = errors.New("application was modified concurrently")
	ErrPetNotFound             = errors.New("pet not found")
	ErrPetNotOwnedByCustomer   = errors.New("pet does not belong to the customer")
	ErrCustomerRoleRequired    = errors.New("application customer must hold the customer role")
	ErrDeclineReasonRequired   = errors.New("decline reason is required")
)
