package ports

import "context"

// StatsScope narrows the aggregates to one customer's records. An
// empty CustomerID means platform-wide.
type StatsScope struct {
	CustomerID string
}

type DashboardStats struct {
	ApplicationsByStatus map[string]int64
	ClaimsByStatus       map[string]int64
	PetCount             int64
	PaymentCount         int64
	PaymentTotalAmount   float64
}

type Repository interface {
	GetStats(ctx context.Context, scope StatsScope) (DashboardStats, error)
}
