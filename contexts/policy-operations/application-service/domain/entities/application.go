package entities

import (
	"strings"
	"time"
)

type ApplicationStatus string

const (
	ApplicationStatusSubmitted ApplicationStatus = "submitted"
	ApplicationStatusApproved  ApplicationStatus = "approved"
	ApplicationStatusActive    ApplicationStatus = "active"
	ApplicationStatusInactive  ApplicationStatus = "inactive"
	ApplicationStatusDeclined  ApplicationStatus = "declined"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusSubmitted,
		ApplicationStatusApproved,
		ApplicationStatusActive,
		ApplicationStatusInactive,
		ApplicationStatusDeclined:
		return true
	}
	return false
}

// CanTransitionTo encodes the policy lifecycle:
// submitted -> approved | declined, approved -> active | inactive,
// active <-> inactive. Declined is terminal.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	switch s {
	case ApplicationStatusSubmitted:
		return next == ApplicationStatusApproved || next == ApplicationStatusDeclined
	case ApplicationStatusApproved:
		return next == ApplicationStatusActive || next == ApplicationStatusInactive
	case ApplicationStatusActive:
		return next == ApplicationStatusInactive
	case ApplicationStatusInactive:
		return next == ApplicationStatusActive
	}
	return false
}

type Application struct {
	ApplicationID   string
	PolicyNumber    string
	CustomerID      string
	PetID           string
	Status          ApplicationStatus
	CoverageLimit   float64
	Premium         float64
	StartDate       *time.Time
	Notes           string
	Version         int
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DecidedAt       *time.Time
	DecidedByUserID string
	DeclineReason   string
}

func (a Application) ValidateCreate() bool {
	return strings.TrimSpace(a.CustomerID) != "" &&
		strings.TrimSpace(a.PetID) != "" &&
		a.CoverageLimit > 0 &&
		a.Premium > 0
}
