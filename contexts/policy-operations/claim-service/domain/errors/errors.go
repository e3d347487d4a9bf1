package errors

import "errors"

var (
	ErrClaimNotFound           = errors.New("claim not found")
	ErrInvalidClaimInput       = errors.New("invalid claim input")
	ErrInvalidStatusTransition = errors.New("invalid claim status transition")
	ErrForbidden               = errors.New("forbidden")
	ErrVersionConflict         = errors.New("claim was modified concurrently")
	ErrApplicationNotFound     = errors.New("application not found")
	ErrPolicyNotActive         = errors.New("application is not an active policy")
	ErrApprovedAmountRequired  = errors.New("approved amount is required")
	ErrApprovedAmountTooHigh   = errors.New("approved amount exceeds the coverage limit")
)
