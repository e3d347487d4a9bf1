package unit

import (
	"context"
	"errors"
	"testing"

	dashboardservice "pawsure/contexts/internal-ops/dashboard-service"
	searchservice "pawsure/contexts/internal-ops/search-service"
	searcherrors "pawsure/contexts/internal-ops/search-service/domain/errors"
	searchports "pawsure/contexts/internal-ops/search-service/ports"
)

func TestDashboardStatsScopesToCustomer(t *testing.T) {
	module := dashboardservice.NewInMemoryModule(nil)
	ctx := context.Background()

	module.Store.SeedApplication("cust-1", "active")
	module.Store.SeedApplication("cust-1", "submitted")
	module.Store.SeedApplication("cust-2", "active")
	module.Store.SeedClaim("cust-1", "pending")
	module.Store.SeedClaim("cust-2", "approved")
	module.Store.SeedPet("cust-1")
	module.Store.SeedPet("cust-2")
	module.Store.SeedPayment("cust-1", 42.50)
	module.Store.SeedPayment("cust-2", 99.00)

	resp, err := module.Handler.GetStatsHandler(ctx, "cust-1", "customer")
	if err != nil {
		t.Fatalf("customer stats failed: %v", err)
	}
	if resp.Applications["active"] != 1 || resp.Applications["submitted"] != 1 {
		t.Fatalf("unexpected application counts: %+v", resp.Applications)
	}
	if resp.Claims["pending"] != 1 || resp.Claims["approved"] != 0 {
		t.Fatalf("foreign claims leaked: %+v", resp.Claims)
	}
	if resp.Pets != 1 || resp.Payments.Count != 1 || resp.Payments.TotalAmount != 42.50 {
		t.Fatalf("unexpected customer totals: %+v", resp)
	}

	resp, err = module.Handler.GetStatsHandler(ctx, "admin-1", "admin")
	if err != nil {
		t.Fatalf("admin stats failed: %v", err)
	}
	if resp.Applications["active"] != 2 || resp.Pets != 2 || resp.Payments.Count != 2 {
		t.Fatalf("unexpected global totals: %+v", resp)
	}
	if resp.Payments.TotalAmount != 141.50 {
		t.Fatalf("unexpected payment sum: %v", resp.Payments.TotalAmount)
	}
}

func TestSearchScopesToCustomer(t *testing.T) {
	module := searchservice.NewInMemoryModule(nil)
	ctx := context.Background()

	module.Store.SeedUser(searchports.UserMatch{UserID: "cust-1", Email: "milo.owner@example.com", FullName: "Ada Quinn", Role: "customer"})
	module.Store.SeedPet(searchports.PetMatch{PetID: "pet-1", OwnerUserID: "cust-1", Name: "Milo", Species: "dog"})
	module.Store.SeedPet(searchports.PetMatch{PetID: "pet-2", OwnerUserID: "cust-2", Name: "Milou", Species: "dog"})
	module.Store.SeedApplication(searchports.ApplicationMatch{
		ApplicationID: "app-1", PolicyNumber: "PI-MILO01", CustomerID: "cust-1", Status: "active", Notes: "milo annual plan",
	})
	module.Store.SeedClaim(searchports.ClaimMatch{
		ClaimID: "claim-1", ClaimNumber: "CL-MILO01", ApplicationID: "app-1", Status: "pending", Description: "milo ear infection",
	}, "cust-1")
	module.Store.SeedClaim(searchports.ClaimMatch{
		ClaimID: "claim-2", ClaimNumber: "CL-MILO02", ApplicationID: "app-2", Status: "pending", Description: "milou checkup",
	}, "cust-2")

	resp, err := module.Handler.SearchHandler(ctx, "cust-1", "customer", "milo")
	if err != nil {
		t.Fatalf("customer search failed: %v", err)
	}
	if len(resp.Users) != 0 {
		t.Fatalf("user matches must be admin-only, got %+v", resp.Users)
	}
	if len(resp.Pets) != 1 || resp.Pets[0].PetID != "pet-1" {
		t.Fatalf("expected only owned pets, got %+v", resp.Pets)
	}
	if len(resp.Claims) != 1 || resp.Claims[0].ClaimID != "claim-1" {
		t.Fatalf("expected only owned claims, got %+v", resp.Claims)
	}

	resp, err = module.Handler.SearchHandler(ctx, "admin-1", "admin", "milo")
	if err != nil {
		t.Fatalf("admin search failed: %v", err)
	}
	if len(resp.Users) != 1 || len(resp.Pets) != 2 || len(resp.Claims) != 2 {
		t.Fatalf("expected unscoped admin results with users, got %+v", resp)
	}
}

func TestSearchRequiresQuery(t *testing.T) {
	module := searchservice.NewInMemoryModule(nil)

	_, err := module.Handler.SearchHandler(context.Background(), "cust-1", "customer", "   ")
	if !errors.Is(err, searcherrors.ErrQueryRequired) {
		t.Fatalf("expected query-required guard, got %v", err)
	}
}
