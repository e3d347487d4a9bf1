package ports

import (
	"context"
	"time"

	"pawsure/contexts/policy-operations/payment-service/domain/entities"
)

type PaymentFilter struct {
	CustomerID    string
	ApplicationID string
	Page          int
	Limit         int
}

type Repository interface {
	CreatePayment(ctx context.Context, payment entities.Payment) error
	GetPayment(ctx context.Context, paymentID string) (entities.Payment, error)
	ListPayments(ctx context.Context, filter PaymentFilter) ([]entities.Payment, int64, error)
}

// PolicySummary is the slice of the application context this context
// needs: ownership and nothing else.
type PolicySummary struct {
	ApplicationID string
	CustomerID    string
}

type PolicyDirectory interface {
	GetPolicy(ctx context.Context, applicationID string) (PolicySummary, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
