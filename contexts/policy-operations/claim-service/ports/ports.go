package ports

import (
	"context"
	"time"

	"pawsure/contexts/policy-operations/claim-service/domain/entities"
)

type ClaimFilter struct {
	CustomerID    string
	ApplicationID string
	Statuses      []entities.ClaimStatus
	Page          int
	Limit         int
}

type Repository interface {
	CreateClaim(ctx context.Context, claim entities.Claim) error
	GetClaim(ctx context.Context, claimID string) (entities.Claim, error)
	// UpdateClaim persists the row only when the stored version still
	// equals expectedVersion.
	UpdateClaim(ctx context.Context, claim entities.Claim, expectedVersion int) error
	// ListClaims constrains by transitive ownership when CustomerID is
	// set; the filter is applied in the query, not post-hoc.
	ListClaims(ctx context.Context, filter ClaimFilter) ([]entities.Claim, int64, error)
}

// PolicySummary is the slice of an application this context needs.
type PolicySummary struct {
	ApplicationID string
	CustomerID    string
	Status        string
	CoverageLimit float64
}

func (p PolicySummary) Active() bool {
	return p.Status == "active"
}

// PolicyDirectory is a read-only view into the application context.
type PolicyDirectory interface {
	GetPolicy(ctx context.Context, applicationID string) (PolicySummary, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
