package unit

import (
	"context"
	"errors"
	"testing"
	"time"

	petservice "pawsure/contexts/policy-operations/pet-service"
	"pawsure/contexts/policy-operations/pet-service/domain/entities"
	domainerrors "pawsure/contexts/policy-operations/pet-service/domain/errors"
	httptransport "pawsure/contexts/policy-operations/pet-service/transport/http"
)

func seededPet(id string, ownerUserID string) entities.Pet {
	now := time.Now().UTC()
	return entities.Pet{
		PetID:       id,
		OwnerUserID: ownerUserID,
		Name:        "Milo",
		Species:     "dog",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestCreatePetDefaultsOwnerToActor(t *testing.T) {
	module := petservice.NewInMemoryModule(nil, nil)
	ctx := context.Background()

	resp, err := module.Handler.CreatePetHandler(ctx, "cust-1", "customer", httptransport.CreatePetRequest{
		Name:      "Milo",
		Species:   "dog",
		Breed:     "beagle",
		BirthDate: "2022-04-15",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if resp.Pet.OwnerUserID != "cust-1" {
		t.Fatalf("expected actor as owner, got %s", resp.Pet.OwnerUserID)
	}

	// Customers cannot register pets for someone else.
	_, err = module.Handler.CreatePetHandler(ctx, "cust-1", "customer", httptransport.CreatePetRequest{
		OwnerUserID: "cust-2",
		Name:        "Luna",
		Species:     "cat",
	})
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}

	// Admins can.
	if _, err := module.Handler.CreatePetHandler(ctx, "admin-1", "admin", httptransport.CreatePetRequest{
		OwnerUserID: "cust-2",
		Name:        "Luna",
		Species:     "cat",
	}); err != nil {
		t.Fatalf("admin create failed: %v", err)
	}
}

func TestGetPetIsOwnerOrAdmin(t *testing.T) {
	module := petservice.NewInMemoryModule([]entities.Pet{seededPet("pet-1", "cust-1")}, nil)
	ctx := context.Background()

	if _, err := module.Handler.GetPetHandler(ctx, "cust-1", "customer", "pet-1"); err != nil {
		t.Fatalf("owner read failed: %v", err)
	}
	if _, err := module.Handler.GetPetHandler(ctx, "admin-1", "admin", "pet-1"); err != nil {
		t.Fatalf("admin read failed: %v", err)
	}
	if _, err := module.Handler.GetPetHandler(ctx, "cust-2", "customer", "pet-1"); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected cross-owner read to be forbidden, got %v", err)
	}
}

func TestDeletePetRefusesWhileApplicationsExist(t *testing.T) {
	module := petservice.NewInMemoryModule([]entities.Pet{seededPet("pet-1", "cust-1")}, nil)
	ctx := context.Background()

	module.Store.SetApplicationCount("pet-1", 1)
	err := module.Handler.DeletePetHandler(ctx, "cust-1", "customer", "pet-1")
	if !errors.Is(err, domainerrors.ErrPetHasApplications) {
		t.Fatalf("expected applications guard, got %v", err)
	}

	module.Store.SetApplicationCount("pet-1", 0)
	if err := module.Handler.DeletePetHandler(ctx, "cust-1", "customer", "pet-1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := module.Handler.GetPetHandler(ctx, "cust-1", "customer", "pet-1"); !errors.Is(err, domainerrors.ErrPetNotFound) {
		t.Fatalf("expected pet gone, got %v", err)
	}
}

func TestListPetsIsOwnerScoped(t *testing.T) {
	module := petservice.NewInMemoryModule([]entities.Pet{
		seededPet("pet-1", "cust-1"),
		seededPet("pet-2", "cust-2"),
		seededPet("pet-3", "cust-1"),
	}, nil)
	ctx := context.Background()

	resp, total, err := module.Handler.ListPetsHandler(ctx, "cust-1", "customer", 1, 20)
	if err != nil {
		t.Fatalf("customer list failed: %v", err)
	}
	if total != 2 || len(resp.Items) != 2 {
		t.Fatalf("expected two owned pets, got total=%d items=%d", total, len(resp.Items))
	}

	_, total, err = module.Handler.ListPetsHandler(ctx, "admin-1", "admin", 1, 20)
	if err != nil {
		t.Fatalf("admin list failed: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected all pets for admin, got %d", total)
	}
}
