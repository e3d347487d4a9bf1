package queries

import (
	"context"
	"log/slog"
	"strings"

	"pawsure/contexts/policy-operations/application-service/domain/entities"
	domainerrors "pawsure/contexts/policy-operations/application-service/domain/errors"
	"pawsure/contexts/policy-operations/application-service/ports"
)

type QueryUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (uc QueryUseCase) GetApplication(ctx context.Context, actorID string, actorRole string, applicationID string) (entities.Application, error) {
	app, err := uc.Repository.GetApplication(ctx, strings.TrimSpace(applicationID))
	if err != nil {
		return entities.Application{}, err
	}
	if actorRole != "admin" && app.CustomerID != strings.TrimSpace(actorID) {
		return entities.Application{}, domainerrors.ErrForbidden
	}
	return app, nil
}

type ListApplicationsQuery struct {
	ActorID   string
	ActorRole string
	Statuses  []entities.ApplicationStatus
	Page      int
	Limit     int
}

// ListApplications constrains the query to the actor's own records for
// non-admins so pagination counts never leak other customers' rows.
func (uc QueryUseCase) ListApplications(ctx context.Context, query ListApplicationsQuery) ([]entities.Application, int64, error) {
	filter := ports.ApplicationFilter{
		Statuses: query.Statuses,
		Page:     query.Page,
		Limit:    query.Limit,
	}
	if query.ActorRole != "admin" {
		filter.CustomerID = strings.TrimSpace(query.ActorID)
	}
	return uc.Repository.ListApplications(ctx, filter)
}
