package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "pawsure/contexts/policy-operations/claim-service/application"
	"pawsure/contexts/policy-operations/claim-service/domain/entities"
	domainerrors "pawsure/contexts/policy-operations/claim-service/domain/errors"
	"pawsure/contexts/policy-operations/claim-service/ports"
)

type FileClaimCommand struct {
	ActorID   string
	ActorRole string

	ApplicationID    string
	ClaimedAmount    float64
	Description      string
	VeterinarianName string
	TreatmentDate    *time.Time
}

type FileClaimUseCase struct {
	Repository ports.Repository
	Policies   ports.PolicyDirectory
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

// Execute files a claim against an active policy. Customers may only
// file against their own applications.
func (uc FileClaimUseCase) Execute(ctx context.Context, cmd FileClaimCommand) (entities.Claim, error) {
	logger := application.ResolveLogger(uc.Logger)

	claim := entities.Claim{
		ApplicationID:    strings.TrimSpace(cmd.ApplicationID),
		Status:           entities.ClaimStatusPending,
		ClaimedAmount:    cmd.ClaimedAmount,
		Description:      strings.TrimSpace(cmd.Description),
		VeterinarianName: strings.TrimSpace(cmd.VeterinarianName),
		TreatmentDate:    cmd.TreatmentDate,
	}
	if !claim.ValidateCreate() {
		return entities.Claim{}, domainerrors.ErrInvalidClaimInput
	}

	policy, err := uc.Policies.GetPolicy(ctx, claim.ApplicationID)
	if err != nil {
		return entities.Claim{}, err
	}
	if !isAdmin(cmd.ActorRole) && policy.CustomerID != strings.TrimSpace(cmd.ActorID) {
		return entities.Claim{}, domainerrors.ErrForbidden
	}
	if !policy.Active() {
		return entities.Claim{}, domainerrors.ErrPolicyNotActive
	}

	id, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Claim{}, err
	}
	now := uc.Clock.Now().UTC()
	claim.ClaimID = id
	claim.ClaimNumber = "CL-" + strings.ToUpper(strings.ReplaceAll(id, "-", ""))[:8]
	claim.Version = 1
	claim.CreatedAt = now
	claim.UpdatedAt = now

	if err := uc.Repository.CreateClaim(ctx, claim); err != nil {
		return entities.Claim{}, err
	}

	logger.Info("claim filed",
		"event", "claim_filed",
		"module", "policy-operations/claim-service",
		"layer", "application",
		"claim_id", claim.ClaimID,
		"application_id", claim.ApplicationID,
	)
	return claim, nil
}
