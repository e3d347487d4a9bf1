package ports

import (
	"context"
	"time"

	"pawsure/contexts/policy-operations/pet-service/domain/entities"
)

type PetFilter struct {
	OwnerUserID string
	Page        int
	Limit       int
}

type Repository interface {
	CreatePet(ctx context.Context, pet entities.Pet) error
	GetPet(ctx context.Context, petID string) (entities.Pet, error)
	UpdatePet(ctx context.Context, pet entities.Pet) error
	DeletePet(ctx context.Context, petID string) error
	ListPets(ctx context.Context, filter PetFilter) ([]entities.Pet, int64, error)
}

// ApplicationDirectory is a read-only view over the application
// context, used to refuse deleting a pet that is still insured.
type ApplicationDirectory interface {
	CountApplicationsByPet(ctx context.Context, petID string) (int64, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
