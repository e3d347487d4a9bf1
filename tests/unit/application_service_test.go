package unit

import (
	"context"
	"errors"
	"testing"
	"time"

	applicationservice "pawsure/contexts/policy-operations/application-service"
	"pawsure/contexts/policy-operations/application-service/domain/entities"
	domainerrors "pawsure/contexts/policy-operations/application-service/domain/errors"
	httptransport "pawsure/contexts/policy-operations/application-service/transport/http"
)

func seededApplication(id string, customerID string, status entities.ApplicationStatus) entities.Application {
	now := time.Now().UTC()
	return entities.Application{
		ApplicationID: id,
		PolicyNumber:  "PI-TEST" + id,
		CustomerID:    customerID,
		PetID:         "pet-" + id,
		Status:        status,
		CoverageLimit: 5000,
		Premium:       42.50,
		Version:       1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestCreateApplicationChecksPetOwnership(t *testing.T) {
	module := applicationservice.NewInMemoryModule(nil, nil)
	ctx := context.Background()

	module.Store.SetCustomer("cust-1", true)
	module.Store.SetPetOwner("pet-1", "cust-1")
	module.Store.SetPetOwner("pet-2", "cust-other")

	resp, err := module.Handler.CreateApplicationHandler(ctx, "cust-1", "customer", httptransport.CreateApplicationRequest{
		PetID:         "pet-1",
		CoverageLimit: 5000,
		Premium:       42.50,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if resp.Application.Status != "submitted" {
		t.Fatalf("expected submitted status, got %s", resp.Application.Status)
	}
	if resp.Application.PolicyNumber == "" || resp.Application.Version != 1 {
		t.Fatalf("expected policy number and version 1, got %+v", resp.Application)
	}

	_, err = module.Handler.CreateApplicationHandler(ctx, "cust-1", "customer", httptransport.CreateApplicationRequest{
		PetID:         "pet-2",
		CoverageLimit: 5000,
		Premium:       42.50,
	})
	if !errors.Is(err, domainerrors.ErrPetNotOwnedByCustomer) {
		t.Fatalf("expected pet ownership guard, got %v", err)
	}
}

func TestCreateApplicationRequiresCustomerRole(t *testing.T) {
	module := applicationservice.NewInMemoryModule(nil, nil)
	ctx := context.Background()

	module.Store.SetCustomer("admin-1", false)
	module.Store.SetPetOwner("pet-1", "admin-1")

	_, err := module.Handler.CreateApplicationHandler(ctx, "admin-9", "admin", httptransport.CreateApplicationRequest{
		CustomerID:    "admin-1",
		PetID:         "pet-1",
		CoverageLimit: 5000,
		Premium:       42.50,
	})
	if !errors.Is(err, domainerrors.ErrCustomerRoleRequired) {
		t.Fatalf("expected customer role guard, got %v", err)
	}
}

func TestCreateApplicationForbidsApplyingForOthers(t *testing.T) {
	module := applicationservice.NewInMemoryModule(nil, nil)

	_, err := module.Handler.CreateApplicationHandler(context.Background(), "cust-1", "customer", httptransport.CreateApplicationRequest{
		CustomerID:    "cust-2",
		PetID:         "pet-1",
		CoverageLimit: 5000,
		Premium:       42.50,
	})
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestApplicationLifecycleTransitions(t *testing.T) {
	module := applicationservice.NewInMemoryModule([]entities.Application{
		seededApplication("app-1", "cust-1", entities.ApplicationStatusSubmitted),
	}, nil)
	ctx := context.Background()

	resp, err := module.Handler.ApproveApplicationHandler(ctx, "admin-1", "admin", "app-1")
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if resp.Application.Status != "approved" || resp.Application.Version != 2 {
		t.Fatalf("expected approved v2, got %+v", resp.Application)
	}
	if resp.Application.DecidedAt == "" || resp.Application.DecidedByUserID != "admin-1" {
		t.Fatalf("expected decision audit fields, got %+v", resp.Application)
	}

	if resp, err = module.Handler.ActivateApplicationHandler(ctx, "admin-1", "admin", "app-1"); err != nil {
		t.Fatalf("activate failed: %v", err)
	}
	if resp.Application.Status != "active" {
		t.Fatalf("expected active, got %s", resp.Application.Status)
	}

	if resp, err = module.Handler.DeactivateApplicationHandler(ctx, "admin-1", "admin", "app-1"); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}
	if resp.Application.Status != "inactive" {
		t.Fatalf("expected inactive, got %s", resp.Application.Status)
	}

	if resp, err = module.Handler.ActivateApplicationHandler(ctx, "admin-1", "admin", "app-1"); err != nil {
		t.Fatalf("reactivate failed: %v", err)
	}
	if resp.Application.Status != "active" || resp.Application.Version != 5 {
		t.Fatalf("expected active v5, got %+v", resp.Application)
	}
}

func TestDeclinedApplicationStaysDeclined(t *testing.T) {
	module := applicationservice.NewInMemoryModule([]entities.Application{
		seededApplication("app-1", "cust-1", entities.ApplicationStatusSubmitted),
	}, nil)
	ctx := context.Background()

	_, err := module.Handler.DeclineApplicationHandler(ctx, "admin-1", "admin", "app-1", httptransport.DeclineApplicationRequest{})
	if !errors.Is(err, domainerrors.ErrDeclineReasonRequired) {
		t.Fatalf("expected decline reason guard, got %v", err)
	}

	resp, err := module.Handler.DeclineApplicationHandler(ctx, "admin-1", "admin", "app-1", httptransport.DeclineApplicationRequest{
		Reason: "pre-existing condition",
	})
	if err != nil {
		t.Fatalf("decline failed: %v", err)
	}
	if resp.Application.Status != "declined" || resp.Application.DeclineReason != "pre-existing condition" {
		t.Fatalf("expected declined with reason, got %+v", resp.Application)
	}

	// Declined is terminal. A rejected approve must leave the row untouched.
	_, err = module.Handler.ApproveApplicationHandler(ctx, "admin-1", "admin", "app-1")
	if !errors.Is(err, domainerrors.ErrInvalidStatusTransition) {
		t.Fatalf("expected invalid transition, got %v", err)
	}
	stored, err := module.Store.GetApplication(ctx, "app-1")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if stored.Status != entities.ApplicationStatusDeclined || stored.Version != 2 {
		t.Fatalf("declined row changed after failed approve: %+v", stored)
	}
}

func TestTransitionIsAdminOnly(t *testing.T) {
	module := applicationservice.NewInMemoryModule([]entities.Application{
		seededApplication("app-1", "cust-1", entities.ApplicationStatusSubmitted),
	}, nil)

	_, err := module.Handler.ApproveApplicationHandler(context.Background(), "cust-1", "customer", "app-1")
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden for customer approve, got %v", err)
	}
}

func TestUpdateApplicationDetectsVersionConflict(t *testing.T) {
	module := applicationservice.NewInMemoryModule([]entities.Application{
		seededApplication("app-1", "cust-1", entities.ApplicationStatusSubmitted),
	}, nil)
	ctx := context.Background()

	// Simulate a concurrent writer bumping the version between read and write.
	stale := seededApplication("app-1", "cust-1", entities.ApplicationStatusSubmitted)
	stale.Version = 7
	if err := module.Store.CreateApplication(ctx, stale); err != nil {
		t.Fatalf("seeding conflict failed: %v", err)
	}
	err := module.Store.UpdateApplication(ctx, seededApplication("app-1", "cust-1", entities.ApplicationStatusSubmitted), 1)
	if !errors.Is(err, domainerrors.ErrVersionConflict) {
		t.Fatalf("expected version conflict, got %v", err)
	}
}

func TestSubmitApplicationProvisionsCredentials(t *testing.T) {
	module := applicationservice.NewInMemoryModule([]entities.Application{
		seededApplication("app-1", "cust-1", entities.ApplicationStatusSubmitted),
	}, nil)
	ctx := context.Background()

	_, err := module.Handler.SubmitApplicationHandler(ctx, "cust-1", "customer", "app-1")
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected submit to be admin-only, got %v", err)
	}

	if _, err := module.Handler.SubmitApplicationHandler(ctx, "admin-1", "admin", "app-1"); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	provisioned := module.Provisioner.Provisioned()
	if len(provisioned) != 1 || provisioned[0] != "cust-1" {
		t.Fatalf("expected credentials provisioned for cust-1, got %v", provisioned)
	}
}

func TestListApplicationsIsOwnerScoped(t *testing.T) {
	module := applicationservice.NewInMemoryModule([]entities.Application{
		seededApplication("app-1", "cust-1", entities.ApplicationStatusSubmitted),
		seededApplication("app-2", "cust-2", entities.ApplicationStatusActive),
		seededApplication("app-3", "cust-1", entities.ApplicationStatusActive),
	}, nil)
	ctx := context.Background()

	resp, total, err := module.Handler.ListApplicationsHandler(ctx, "cust-1", "customer", nil, 1, 20)
	if err != nil {
		t.Fatalf("customer list failed: %v", err)
	}
	if total != 2 || len(resp.Items) != 2 {
		t.Fatalf("expected two owned applications, got total=%d items=%d", total, len(resp.Items))
	}
	for _, item := range resp.Items {
		if item.CustomerID != "cust-1" {
			t.Fatalf("foreign application leaked: %+v", item)
		}
	}

	_, total, err = module.Handler.ListApplicationsHandler(ctx, "admin-1", "admin", []entities.ApplicationStatus{entities.ApplicationStatusActive}, 1, 20)
	if err != nil {
		t.Fatalf("admin list failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected two active applications across customers, got %d", total)
	}

	_, err = module.Handler.GetApplicationHandler(ctx, "cust-2", "customer", "app-1")
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected cross-owner read to be forbidden, got %v", err)
	}
}
