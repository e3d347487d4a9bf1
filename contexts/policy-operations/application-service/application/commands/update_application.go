package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "pawsure/contexts/policy-operations/application-service/application"
	"pawsure/contexts/policy-operations/application-service/domain/entities"
	domainerrors "pawsure/contexts/policy-operations/application-service/domain/errors"
	"pawsure/contexts/policy-operations/application-service/ports"
)

// UpdateApplicationCommand carries descriptive-field changes only.
// Workflow moves go through the transition and submit commands.
type UpdateApplicationCommand struct {
	ApplicationID string
	ActorID       string
	ActorRole     string

	CoverageLimit *float64
	Premium       *float64
	StartDate     *time.Time
	Notes         *string
}

type UpdateApplicationUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (uc UpdateApplicationUseCase) Execute(ctx context.Context, cmd UpdateApplicationCommand) (entities.Application, error) {
	logger := application.ResolveLogger(uc.Logger)

	app, err := uc.Repository.GetApplication(ctx, strings.TrimSpace(cmd.ApplicationID))
	if err != nil {
		return entities.Application{}, err
	}
	if !isAdmin(cmd.ActorRole) && app.CustomerID != strings.TrimSpace(cmd.ActorID) {
		return entities.Application{}, domainerrors.ErrForbidden
	}

	expectedVersion := app.Version
	if cmd.CoverageLimit != nil {
		if *cmd.CoverageLimit <= 0 {
			return entities.Application{}, domainerrors.ErrInvalidApplicationInput
		}
		app.CoverageLimit = *cmd.CoverageLimit
	}
	if cmd.Premium != nil {
		if *cmd.Premium <= 0 {
			return entities.Application{}, domainerrors.ErrInvalidApplicationInput
		}
		app.Premium = *cmd.Premium
	}
	if cmd.StartDate != nil {
		startDate := cmd.StartDate.UTC()
		app.StartDate = &startDate
	}
	if cmd.Notes != nil {
		app.Notes = strings.TrimSpace(*cmd.Notes)
	}

	app.Version = expectedVersion + 1
	app.UpdatedAt = uc.Clock.Now().UTC()
	if err := uc.Repository.UpdateApplication(ctx, app, expectedVersion); err != nil {
		return entities.Application{}, err
	}

	logger.Info("application updated",
		"event", "application_updated",
		"module", "policy-operations/application-service",
		"layer", "application",
		"application_id", app.ApplicationID,
	)
	return app, nil
}
