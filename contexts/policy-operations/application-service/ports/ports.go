package ports

import (
	"context"
	"time"

	"pawsure/contexts/policy-operations/application-service/domain/entities"
)

type ApplicationFilter struct {
	CustomerID string
	Statuses   []entities.ApplicationStatus
	Page       int
	Limit      int
}

type Repository interface {
	CreateApplication(ctx context.Context, app entities.Application) error
	GetApplication(ctx context.Context, applicationID string) (entities.Application, error)
	// UpdateApplication persists the row only when the stored version
	// still equals expectedVersion; a stale version is a conflict.
	UpdateApplication(ctx context.Context, app entities.Application, expectedVersion int) error
	ListApplications(ctx context.Context, filter ApplicationFilter) ([]entities.Application, int64, error)
}

// PetDirectory is a read-only view into the pet context.
type PetDirectory interface {
	GetPetOwner(ctx context.Context, petID string) (string, error)
}

// CustomerDirectory is a read-only view into the identity context.
type CustomerDirectory interface {
	IsCustomer(ctx context.Context, userID string) (bool, error)
}

// CredentialProvisioner issues login credentials for a customer when
// their application is submitted.
type CredentialProvisioner interface {
	ProvisionCredentials(ctx context.Context, customerID string) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
