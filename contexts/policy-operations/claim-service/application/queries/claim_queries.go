package queries

import (
	"context"
	"log/slog"
	"strings"

	"pawsure/contexts/policy-operations/claim-service/domain/entities"
	domainerrors "pawsure/contexts/policy-operations/claim-service/domain/errors"
	"pawsure/contexts/policy-operations/claim-service/ports"
)

type QueryUseCase struct {
	Repository ports.Repository
	Policies   ports.PolicyDirectory
	Logger     *slog.Logger
}

// GetClaim resolves ownership through the underlying policy: a claim
// belongs to whoever owns the application it was filed against.
func (uc QueryUseCase) GetClaim(ctx context.Context, actorID string, actorRole string, claimID string) (entities.Claim, error) {
	claim, err := uc.Repository.GetClaim(ctx, strings.TrimSpace(claimID))
	if err != nil {
		return entities.Claim{}, err
	}
	if actorRole != "admin" {
		policy, err := uc.Policies.GetPolicy(ctx, claim.ApplicationID)
		if err != nil {
			return entities.Claim{}, err
		}
		if policy.CustomerID != strings.TrimSpace(actorID) {
			return entities.Claim{}, domainerrors.ErrForbidden
		}
	}
	return claim, nil
}

type ListClaimsQuery struct {
	ActorID       string
	ActorRole     string
	ApplicationID string
	Statuses      []entities.ClaimStatus
	Page          int
	Limit         int
}

// ListClaims constrains the query to the actor's own records for
// non-admins so pagination counts never leak other customers' rows.
func (uc QueryUseCase) ListClaims(ctx context.Context, query ListClaimsQuery) ([]entities.Claim, int64, error) {
	filter := ports.ClaimFilter{
		ApplicationID: strings.TrimSpace(query.ApplicationID),
		Statuses:      query.Statuses,
		Page:          query.Page,
		Limit:         query.Limit,
	}
	if query.ActorRole != "admin" {
		filter.CustomerID = strings.TrimSpace(query.ActorID)
	}
	return uc.Repository.ListClaims(ctx, filter)
}
