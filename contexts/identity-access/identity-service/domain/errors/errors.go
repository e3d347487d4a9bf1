package errors

import "errors"

var (
	ErrUserNotFound             = errors.New("user not found")
	ErrEmailAlreadyRegistered   = errors.New("email already registered")
	ErrInvalidUserInput         = errors.New("invalid user input")
	ErrInvalidCredentials       = errors.New("invalid email or password")
	ErrForbidden                = errors.New("forbidden")
	ErrNoSubmittedApplication   = errors.New("no submitted application found for this email")
	ErrRegistrationTokenInvalid = errors.New("registration token is invalid or expired")
	ErrVerificationTokenInvalid = errors.New("verification token is invalid or expired")
	ErrUserOwnsApplications     = errors.New("user still owns applications")
)
