package application

import (
	"context"
	"log/slog"
	"strings"

	domainerrors "pawsure/contexts/internal-ops/dashboard-service/domain/errors"
	"pawsure/contexts/internal-ops/dashboard-service/ports"
)

const roleAdmin = "admin"

type Service struct {
	Repo   ports.Repository
	Logger *slog.Logger
}

// GetStats returns platform-wide aggregates for admins and the actor's
// own slice for everyone else.
func (s Service) GetStats(ctx context.Context, actorID string, actorRole string) (ports.DashboardStats, error) {
	if strings.TrimSpace(actorID) == "" {
		return ports.DashboardStats{}, domainerrors.ErrUnauthorized
	}
	scope := ports.StatsScope{}
	if actorRole != roleAdmin {
		scope.CustomerID = strings.TrimSpace(actorID)
	}
	return s.Repo.GetStats(ctx, scope)
}
