package commands

import (
	"context"
	"log/slog"
	"strings"

	application "pawsure/contexts/policy-operations/claim-service/application"
	"pawsure/contexts/policy-operations/claim-service/domain/entities"
	domainerrors "pawsure/contexts/policy-operations/claim-service/domain/errors"
	"pawsure/contexts/policy-operations/claim-service/ports"
)

type ReviewClaimCommand struct {
	ClaimID   string
	ActorID   string
	ActorRole string

	ApprovedAmount *float64
	AdjusterNotes  string
}

// ReviewClaimUseCase moves a claim through adjudication. Every move is
// admin-only and version-guarded.
type ReviewClaimUseCase struct {
	Repository ports.Repository
	Policies   ports.PolicyDirectory
	Clock      ports.Clock
	Logger     *slog.Logger
}

// Approve settles the claim. The approved amount is required and must
// not exceed the coverage limit of the underlying policy.
func (uc ReviewClaimUseCase) Approve(ctx context.Context, cmd ReviewClaimCommand) (entities.Claim, error) {
	if cmd.ApprovedAmount == nil || *cmd.ApprovedAmount <= 0 {
		return entities.Claim{}, domainerrors.ErrApprovedAmountRequired
	}
	return uc.transition(ctx, cmd, entities.ClaimStatusApproved)
}

func (uc ReviewClaimUseCase) Reject(ctx context.Context, cmd ReviewClaimCommand) (entities.Claim, error) {
	return uc.transition(ctx, cmd, entities.ClaimStatusRejected)
}

func (uc ReviewClaimUseCase) StartProcessing(ctx context.Context, cmd ReviewClaimCommand) (entities.Claim, error) {
	return uc.transition(ctx, cmd, entities.ClaimStatusProcessing)
}

func (uc ReviewClaimUseCase) ReturnToPending(ctx context.Context, cmd ReviewClaimCommand) (entities.Claim, error) {
	return uc.transition(ctx, cmd, entities.ClaimStatusPending)
}

func (uc ReviewClaimUseCase) transition(
	ctx context.Context,
	cmd ReviewClaimCommand,
	next entities.ClaimStatus,
) (entities.Claim, error) {
	logger := application.ResolveLogger(uc.Logger)

	if !isAdmin(cmd.ActorRole) {
		return entities.Claim{}, domainerrors.ErrForbidden
	}

	claim, err := uc.Repository.GetClaim(ctx, strings.TrimSpace(cmd.ClaimID))
	if err != nil {
		return entities.Claim{}, err
	}
	if !claim.Status.CanTransitionTo(next) {
		return entities.Claim{}, domainerrors.ErrInvalidStatusTransition
	}

	if next == entities.ClaimStatusApproved {
		policy, err := uc.Policies.GetPolicy(ctx, claim.ApplicationID)
		if err != nil {
			return entities.Claim{}, err
		}
		if *cmd.ApprovedAmount > policy.CoverageLimit {
			return entities.Claim{}, domainerrors.ErrApprovedAmountTooHigh
		}
	}

	now := uc.Clock.Now().UTC()
	expectedVersion := claim.Version
	previous := claim.Status
	claim.Status = next
	claim.Version = expectedVersion + 1
	claim.UpdatedAt = now
	if notes := strings.TrimSpace(cmd.AdjusterNotes); notes != "" {
		claim.AdjusterNotes = notes
	}
	if next.Terminal() {
		claim.DecidedAt = &now
		claim.DecidedByUserID = strings.TrimSpace(cmd.ActorID)
	}
	if next == entities.ClaimStatusApproved {
		claim.ApprovedAmount = cmd.ApprovedAmount
	}

	if err := uc.Repository.UpdateClaim(ctx, claim, expectedVersion); err != nil {
		return entities.Claim{}, err
	}

	logger.Info("claim status changed",
		"event", "claim_status_changed",
		"module", "policy-operations/claim-service",
		"layer", "application",
		"claim_id", claim.ClaimID,
		"from", string(previous),
		"to", string(next),
		"actor_id", strings.TrimSpace(cmd.ActorID),
	)
	return claim, nil
}
