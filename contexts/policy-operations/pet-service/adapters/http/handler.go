package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"pawsure/contexts/policy-operations/pet-service/application"
	"pawsure/contexts/policy-operations/pet-service/domain/entities"
	domainerrors "pawsure/contexts/policy-operations/pet-service/domain/errors"
	httptransport "pawsure/contexts/policy-operations/pet-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) CreatePetHandler(
	ctx context.Context,
	actorID string,
	actorRole string,
	req httptransport.CreatePetRequest,
) (httptransport.PetResponse, error) {
	birthDate, err := parseOptionalDate(req.BirthDate)
	if err != nil {
		return httptransport.PetResponse{}, domainerrors.ErrInvalidPetInput
	}
	pet, err := h.Service.CreatePet(ctx, actorID, actorRole, application.CreatePetInput{
		OwnerUserID: req.OwnerUserID,
		Name:        req.Name,
		Species:     req.Species,
		Breed:       req.Breed,
		BirthDate:   birthDate,
		MicrochipID: req.MicrochipID,
	})
	if err != nil {
		return httptransport.PetResponse{}, err
	}
	return httptransport.PetResponse{Pet: mapPet(pet)}, nil
}

func (h Handler) GetPetHandler(ctx context.Context, actorID string, actorRole string, petID string) (httptransport.PetResponse, error) {
	pet, err := h.Service.GetPet(ctx, actorID, actorRole, petID)
	if err != nil {
		return httptransport.PetResponse{}, err
	}
	return httptransport.PetResponse{Pet: mapPet(pet)}, nil
}

func (h Handler) UpdatePetHandler(
	ctx context.Context,
	actorID string,
	actorRole string,
	petID string,
	req httptransport.UpdatePetRequest,
) (httptransport.PetResponse, error) {
	birthDate, err := parseOptionalDate(req.BirthDate)
	if err != nil {
		return httptransport.PetResponse{}, domainerrors.ErrInvalidPetInput
	}
	pet, err := h.Service.UpdatePet(ctx, actorID, actorRole, petID, application.UpdatePetInput{
		Name:        req.Name,
		Species:     req.Species,
		Breed:       req.Breed,
		BirthDate:   birthDate,
		MicrochipID: req.MicrochipID,
	})
	if err != nil {
		return httptransport.PetResponse{}, err
	}
	return httptransport.PetResponse{Pet: mapPet(pet)}, nil
}

func (h Handler) DeletePetHandler(ctx context.Context, actorID string, actorRole string, petID string) error {
	return h.Service.DeletePet(ctx, actorID, actorRole, petID)
}

func (h Handler) ListPetsHandler(
	ctx context.Context,
	actorID string,
	actorRole string,
	page int,
	limit int,
) (httptransport.ListPetsResponse, int64, error) {
	items, total, err := h.Service.ListPets(ctx, actorID, actorRole, page, limit)
	if err != nil {
		return httptransport.ListPetsResponse{}, 0, err
	}
	result := make([]httptransport.PetDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapPet(item))
	}
	return httptransport.ListPetsResponse{Items: result, Total: total}, total, nil
}

func mapPet(pet entities.Pet) httptransport.PetDTO {
	dto := httptransport.PetDTO{
		PetID:       pet.PetID,
		OwnerUserID: pet.OwnerUserID,
		Name:        pet.Name,
		Species:     pet.Species,
		Breed:       pet.Breed,
		MicrochipID: pet.MicrochipID,
		CreatedAt:   pet.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   pet.UpdatedAt.Format(time.RFC3339),
	}
	if pet.BirthDate != nil {
		dto.BirthDate = pet.BirthDate.Format("2006-01-02")
	}
	return dto
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	parsed = parsed.UTC()
	return &parsed, nil
}
