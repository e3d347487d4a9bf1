package entities

import (
	"strings"
	"time"
)

type ClaimStatus string

const (
	ClaimStatusPending    ClaimStatus = "pending"
	ClaimStatusProcessing ClaimStatus = "processing"
	ClaimStatusApproved   ClaimStatus = "approved"
	ClaimStatusRejected   ClaimStatus = "rejected"
)

func (s ClaimStatus) Valid() bool {
	switch s {
	case ClaimStatusPending, ClaimStatusProcessing, ClaimStatusApproved, ClaimStatusRejected:
		return true
	}
	return false
}

func (s ClaimStatus) Terminal() bool {
	return s == ClaimStatusApproved || s == ClaimStatusRejected
}

// CanTransitionTo encodes pending <-> processing -> approved/rejected.
func (s ClaimStatus) CanTransitionTo(next ClaimStatus) bool {
	switch s {
	case ClaimStatusPending:
		return next == ClaimStatusProcessing || next == ClaimStatusApproved || next == ClaimStatusRejected
	case ClaimStatusProcessing:
		return next == ClaimStatusPending || next == ClaimStatusApproved || next == ClaimStatusRejected
	}
	return false
}

type Claim struct {
	ClaimID          string
	ClaimNumber      string
	ApplicationID    string
	Status           ClaimStatus
	ClaimedAmount    float64
	ApprovedAmount   *float64
	Description      string
	VeterinarianName string
	TreatmentDate    *time.Time
	AdjusterNotes    string
	Version          int
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DecidedAt        *time.Time
	DecidedByUserID  string
}

func (c Claim) ValidateCreate() bool {
	return strings.TrimSpace(c.ApplicationID) != "" &&
		c.ClaimedAmount > 0 &&
		strings.TrimSpace(c.Description) != ""
}
