package entities

import (
	"strings"
	"time"
)

type Pet struct {
	PetID       string
	OwnerUserID string
	Name        string
	Species     string
	Breed       string
	BirthDate   *time.Time
	MicrochipID string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p Pet) ValidateCreate() bool {
	return strings.TrimSpace(p.OwnerUserID) != "" &&
		strings.TrimSpace(p.Name) != "" &&
		strings.TrimSpace(p.Species) != ""
}
