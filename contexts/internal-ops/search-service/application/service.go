package application

import (
	"context"
	"log/slog"
	"strings"

	domainerrors "pawsure/contexts/internal-ops/search-service/domain/errors"
	"pawsure/contexts/internal-ops/search-service/ports"
)

const (
	roleAdmin    = "admin"
	limitPerType = 10
)

type Service struct {
	Repo   ports.Repository
	Logger *slog.Logger
}

// Search runs a case-insensitive substring match across entity types.
// Non-admins only see their own records and never see user matches.
func (s Service) Search(ctx context.Context, actorID string, actorRole string, query string) (ports.SearchResults, error) {
	if strings.TrimSpace(actorID) == "" {
		return ports.SearchResults{}, domainerrors.ErrUnauthorized
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return ports.SearchResults{}, domainerrors.ErrQueryRequired
	}

	scope := ports.SearchScope{IncludeUsers: actorRole == roleAdmin}
	if actorRole != roleAdmin {
		scope.CustomerID = strings.TrimSpace(actorID)
	}
	return s.Repo.Search(ctx, query, scope, limitPerType)
}
