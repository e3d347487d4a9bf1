package unit

import (
	"context"
	"errors"
	"testing"
	"time"

	claimservice "pawsure/contexts/policy-operations/claim-service"
	"pawsure/contexts/policy-operations/claim-service/domain/entities"
	domainerrors "pawsure/contexts/policy-operations/claim-service/domain/errors"
	"pawsure/contexts/policy-operations/claim-service/ports"
	httptransport "pawsure/contexts/policy-operations/claim-service/transport/http"
)

func activePolicy(applicationID string, customerID string) ports.PolicySummary {
	return ports.PolicySummary{
		ApplicationID: applicationID,
		CustomerID:    customerID,
		Status:        "active",
		CoverageLimit: 5000,
	}
}

func seededClaim(id string, applicationID string, status entities.ClaimStatus) entities.Claim {
	now := time.Now().UTC()
	return entities.Claim{
		ClaimID:       id,
		ClaimNumber:   "CL-TEST" + id,
		ApplicationID: applicationID,
		Status:        status,
		ClaimedAmount: 300,
		Description:   "ear infection treatment",
		Version:       1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestFileClaimRequiresActivePolicy(t *testing.T) {
	module := claimservice.NewInMemoryModule(nil, nil)
	ctx := context.Background()

	module.Store.SeedPolicy(ports.PolicySummary{
		ApplicationID: "app-1",
		CustomerID:    "cust-1",
		Status:        "approved",
		CoverageLimit: 5000,
	})

	_, err := module.Handler.FileClaimHandler(ctx, "cust-1", "customer", httptransport.FileClaimRequest{
		ApplicationID: "app-1",
		ClaimedAmount: 300,
		Description:   "ear infection treatment",
	})
	if !errors.Is(err, domainerrors.ErrPolicyNotActive) {
		t.Fatalf("expected active-policy guard, got %v", err)
	}

	module.Store.SeedPolicy(activePolicy("app-1", "cust-1"))
	resp, err := module.Handler.FileClaimHandler(ctx, "cust-1", "customer", httptransport.FileClaimRequest{
		ApplicationID: "app-1",
		ClaimedAmount: 300,
		Description:   "ear infection treatment",
		TreatmentDate: "2026-08-01",
	})
	if err != nil {
		t.Fatalf("filing failed: %v", err)
	}
	if resp.Claim.Status != "pending" || resp.Claim.ClaimNumber == "" || resp.Claim.Version != 1 {
		t.Fatalf("unexpected filed claim: %+v", resp.Claim)
	}
}

func TestFileClaimForbidsForeignPolicies(t *testing.T) {
	module := claimservice.NewInMemoryModule(nil, nil)
	module.Store.SeedPolicy(activePolicy("app-1", "cust-1"))

	_, err := module.Handler.FileClaimHandler(context.Background(), "cust-2", "customer", httptransport.FileClaimRequest{
		ApplicationID: "app-1",
		ClaimedAmount: 300,
		Description:   "ear infection treatment",
	})
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestApproveClaimValidatesApprovedAmount(t *testing.T) {
	module := claimservice.NewInMemoryModule([]entities.Claim{
		seededClaim("claim-1", "app-1", entities.ClaimStatusPending),
	}, nil)
	module.Store.SeedPolicy(activePolicy("app-1", "cust-1"))
	ctx := context.Background()

	_, err := module.Handler.ApproveClaimHandler(ctx, "admin-1", "admin", "claim-1", httptransport.ReviewClaimRequest{})
	if !errors.Is(err, domainerrors.ErrApprovedAmountRequired) {
		t.Fatalf("expected approved-amount guard, got %v", err)
	}

	tooHigh := 6000.0
	_, err = module.Handler.ApproveClaimHandler(ctx, "admin-1", "admin", "claim-1", httptransport.ReviewClaimRequest{
		ApprovedAmount: &tooHigh,
	})
	if !errors.Is(err, domainerrors.ErrApprovedAmountTooHigh) {
		t.Fatalf("expected coverage-limit guard, got %v", err)
	}

	// Rejected approvals must not have modified the stored row.
	stored, err := module.Store.GetClaim(ctx, "claim-1")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if stored.Status != entities.ClaimStatusPending || stored.Version != 1 {
		t.Fatalf("claim changed after failed approvals: %+v", stored)
	}

	amount := 250.0
	resp, err := module.Handler.ApproveClaimHandler(ctx, "admin-1", "admin", "claim-1", httptransport.ReviewClaimRequest{
		ApprovedAmount: &amount,
		AdjusterNotes:  "invoice verified",
	})
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if resp.Claim.Status != "approved" || resp.Claim.ApprovedAmount == nil || *resp.Claim.ApprovedAmount != 250 {
		t.Fatalf("unexpected approved claim: %+v", resp.Claim)
	}
	if resp.Claim.DecidedAt == "" || resp.Claim.DecidedByUserID != "admin-1" {
		t.Fatalf("expected decision audit fields, got %+v", resp.Claim)
	}
}

func TestClaimReviewIsAdminOnly(t *testing.T) {
	module := claimservice.NewInMemoryModule([]entities.Claim{
		seededClaim("claim-1", "app-1", entities.ClaimStatusPending),
	}, nil)
	module.Store.SeedPolicy(activePolicy("app-1", "cust-1"))

	_, err := module.Handler.RejectClaimHandler(context.Background(), "cust-1", "customer", "claim-1", httptransport.ReviewClaimRequest{})
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden for customer reject, got %v", err)
	}
}

func TestClaimLifecycleTransitions(t *testing.T) {
	module := claimservice.NewInMemoryModule([]entities.Claim{
		seededClaim("claim-1", "app-1", entities.ClaimStatusPending),
	}, nil)
	module.Store.SeedPolicy(activePolicy("app-1", "cust-1"))
	ctx := context.Background()

	resp, err := module.Handler.StartProcessingClaimHandler(ctx, "admin-1", "admin", "claim-1", httptransport.ReviewClaimRequest{})
	if err != nil {
		t.Fatalf("start processing failed: %v", err)
	}
	if resp.Claim.Status != "processing" || resp.Claim.Version != 2 {
		t.Fatalf("expected processing v2, got %+v", resp.Claim)
	}

	if resp, err = module.Handler.ReturnClaimToPendingHandler(ctx, "admin-1", "admin", "claim-1", httptransport.ReviewClaimRequest{
		AdjusterNotes: "missing invoice",
	}); err != nil {
		t.Fatalf("return to pending failed: %v", err)
	}
	if resp.Claim.Status != "pending" || resp.Claim.AdjusterNotes != "missing invoice" {
		t.Fatalf("expected pending with notes, got %+v", resp.Claim)
	}

	if resp, err = module.Handler.RejectClaimHandler(ctx, "admin-1", "admin", "claim-1", httptransport.ReviewClaimRequest{}); err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	if resp.Claim.Status != "rejected" {
		t.Fatalf("expected rejected, got %s", resp.Claim.Status)
	}

	// Rejected is terminal.
	_, err = module.Handler.StartProcessingClaimHandler(ctx, "admin-1", "admin", "claim-1", httptransport.ReviewClaimRequest{})
	if !errors.Is(err, domainerrors.ErrInvalidStatusTransition) {
		t.Fatalf("expected invalid transition, got %v", err)
	}
}

func TestClaimVersionConflict(t *testing.T) {
	module := claimservice.NewInMemoryModule([]entities.Claim{
		seededClaim("claim-1", "app-1", entities.ClaimStatusPending),
	}, nil)
	ctx := context.Background()

	err := module.Store.UpdateClaim(ctx, seededClaim("claim-1", "app-1", entities.ClaimStatusProcessing), 4)
	if !errors.Is(err, domainerrors.ErrVersionConflict) {
		t.Fatalf("expected version conflict, got %v", err)
	}
}

func TestListClaimsIsOwnerScoped(t *testing.T) {
	module := claimservice.NewInMemoryModule([]entities.Claim{
		seededClaim("claim-1", "app-1", entities.ClaimStatusPending),
		seededClaim("claim-2", "app-2", entities.ClaimStatusApproved),
		seededClaim("claim-3", "app-1", entities.ClaimStatusRejected),
	}, nil)
	module.Store.SeedPolicy(activePolicy("app-1", "cust-1"))
	module.Store.SeedPolicy(activePolicy("app-2", "cust-2"))
	ctx := context.Background()

	resp, total, err := module.Handler.ListClaimsHandler(ctx, "cust-1", "customer", "", nil, 1, 20)
	if err != nil {
		t.Fatalf("customer list failed: %v", err)
	}
	if total != 2 || len(resp.Items) != 2 {
		t.Fatalf("expected two owned claims, got total=%d items=%d", total, len(resp.Items))
	}
	for _, item := range resp.Items {
		if item.ApplicationID != "app-1" {
			t.Fatalf("foreign claim leaked: %+v", item)
		}
	}

	_, total, err = module.Handler.ListClaimsHandler(ctx, "admin-1", "admin", "", []entities.ClaimStatus{
		entities.ClaimStatusApproved,
		entities.ClaimStatusRejected,
	}, 1, 20)
	if err != nil {
		t.Fatalf("admin list failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected two decided claims, got %d", total)
	}

	_, err = module.Handler.GetClaimHandler(ctx, "cust-2", "customer", "claim-1")
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected cross-owner read to be forbidden, got %v", err)
	}
}
