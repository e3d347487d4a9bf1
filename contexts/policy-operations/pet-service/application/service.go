package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"pawsure/contexts/policy-operations/pet-service/domain/entities"
	domainerrors "pawsure/contexts/policy-operations/pet-service/domain/errors"
	"pawsure/contexts/policy-operations/pet-service/ports"
)

const roleAdmin = "admin"

type Service struct {
	Repository   ports.Repository
	Applications ports.ApplicationDirectory
	Clock        ports.Clock
	IDGen        ports.IDGenerator
	Logger       *slog.Logger
}

type CreatePetInput struct {
	OwnerUserID string
	Name        string
	Species     string
	Breed       string
	BirthDate   *time.Time
	MicrochipID string
}

type UpdatePetInput struct {
	Name        *string
	Species     *string
	Breed       *string
	BirthDate   *time.Time
	MicrochipID *string
}

// CreatePet registers a pet. Customers register for themselves; admins
// may register on an owner's behalf.
func (s Service) CreatePet(ctx context.Context, actorID string, actorRole string, input CreatePetInput) (entities.Pet, error) {
	logger := ResolveLogger(s.Logger)

	ownerID := strings.TrimSpace(input.OwnerUserID)
	if actorRole != roleAdmin {
		if ownerID == "" {
			ownerID = strings.TrimSpace(actorID)
		}
		if ownerID != strings.TrimSpace(actorID) {
			return entities.Pet{}, domainerrors.ErrForbidden
		}
	}

	pet := entities.Pet{
		OwnerUserID: ownerID,
		Name:        strings.TrimSpace(input.Name),
		Species:     strings.TrimSpace(input.Species),
		Breed:       strings.TrimSpace(input.Breed),
		BirthDate:   input.BirthDate,
		MicrochipID: strings.TrimSpace(input.MicrochipID),
	}
	if !pet.ValidateCreate() {
		return entities.Pet{}, domainerrors.ErrInvalidPetInput
	}

	id, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.Pet{}, err
	}
	now := s.now()
	pet.PetID = id
	pet.CreatedAt = now
	pet.UpdatedAt = now

	if err := s.Repository.CreatePet(ctx, pet); err != nil {
		return entities.Pet{}, err
	}

	logger.Info("pet registered",
		"event", "pet_registered",
		"module", "policy-operations/pet-service",
		"layer", "application",
		"pet_id", pet.PetID,
		"owner_user_id", pet.OwnerUserID,
	)
	return pet, nil
}

func (s Service) GetPet(ctx context.Context, actorID string, actorRole string, petID string) (entities.Pet, error) {
	pet, err := s.Repository.GetPet(ctx, strings.TrimSpace(petID))
	if err != nil {
		return entities.Pet{}, err
	}
	if actorRole != roleAdmin && pet.OwnerUserID != strings.TrimSpace(actorID) {
		return entities.Pet{}, domainerrors.ErrForbidden
	}
	return pet, nil
}

func (s Service) UpdatePet(ctx context.Context, actorID string, actorRole string, petID string, input UpdatePetInput) (entities.Pet, error) {
	pet, err := s.Repository.GetPet(ctx, strings.TrimSpace(petID))
	if err != nil {
		return entities.Pet{}, err
	}
	if actorRole != roleAdmin && pet.OwnerUserID != strings.TrimSpace(actorID) {
		return entities.Pet{}, domainerrors.ErrForbidden
	}

	if input.Name != nil {
		pet.Name = strings.TrimSpace(*input.Name)
	}
	if input.Species != nil {
		pet.Species = strings.TrimSpace(*input.Species)
	}
	if input.Breed != nil {
		pet.Breed = strings.TrimSpace(*input.Breed)
	}
	if input.BirthDate != nil {
		pet.BirthDate = input.BirthDate
	}
	if input.MicrochipID != nil {
		pet.MicrochipID = strings.TrimSpace(*input.MicrochipID)
	}
	if !pet.ValidateCreate() {
		return entities.Pet{}, domainerrors.ErrInvalidPetInput
	}
	pet.UpdatedAt = s.now()

	if err := s.Repository.UpdatePet(ctx, pet); err != nil {
		return entities.Pet{}, err
	}
	return pet, nil
}

// DeletePet refuses while the pet still backs applications, to keep
// policy records resolvable.
func (s Service) DeletePet(ctx context.Context, actorID string, actorRole string, petID string) error {
	logger := ResolveLogger(s.Logger)

	pet, err := s.Repository.GetPet(ctx, strings.TrimSpace(petID))
	if err != nil {
		return err
	}
	if actorRole != roleAdmin && pet.OwnerUserID != strings.TrimSpace(actorID) {
		return domainerrors.ErrForbidden
	}

	count, err := s.Applications.CountApplicationsByPet(ctx, pet.PetID)
	if err != nil {
		return err
	}
	if count > 0 {
		return domainerrors.ErrPetHasApplications
	}

	if err := s.Repository.DeletePet(ctx, pet.PetID); err != nil {
		return err
	}
	logger.Info("pet deleted",
		"event", "pet_deleted",
		"module", "policy-operations/pet-service",
		"layer", "application",
		"pet_id", pet.PetID,
	)
	return nil
}

// ListPets constrains the query to the actor's own pets for non-admins.
func (s Service) ListPets(ctx context.Context, actorID string, actorRole string, page int, limit int) ([]entities.Pet, int64, error) {
	filter := ports.PetFilter{Page: page, Limit: limit}
	if actorRole != roleAdmin {
		filter.OwnerUserID = strings.TrimSpace(actorID)
	}
	return s.Repository.ListPets(ctx, filter)
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
