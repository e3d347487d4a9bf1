package commands

import (
	"context"
	"log/slog"
	"strings"

	application "pawsure/contexts/policy-operations/application-service/application"
	"pawsure/contexts/policy-operations/application-service/domain/entities"
	domainerrors "pawsure/contexts/policy-operations/application-service/domain/errors"
	"pawsure/contexts/policy-operations/application-service/ports"
)

type TransitionApplicationCommand struct {
	ApplicationID string
	ActorID       string
	ActorRole     string
	Reason        string
}

// TransitionApplicationUseCase moves an application through its
// lifecycle. Every move is admin-only and version-guarded.
type TransitionApplicationUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (uc TransitionApplicationUseCase) Approve(ctx context.Context, cmd TransitionApplicationCommand) (entities.Application, error) {
	return uc.transition(ctx, cmd, entities.ApplicationStatusApproved)
}

func (uc TransitionApplicationUseCase) Decline(ctx context.Context, cmd TransitionApplicationCommand) (entities.Application, error) {
	if strings.TrimSpace(cmd.Reason) == "" {
		return entities.Application{}, domainerrors.ErrDeclineReasonRequired
	}
	return uc.transition(ctx, cmd, entities.ApplicationStatusDeclined)
}

func (uc TransitionApplicationUseCase) Activate(ctx context.Context, cmd TransitionApplicationCommand) (entities.Application, error) {
	return uc.transition(ctx, cmd, entities.ApplicationStatusActive)
}

func (uc TransitionApplicationUseCase) Deactivate(ctx context.Context, cmd TransitionApplicationCommand) (entities.Application, error) {
	return uc.transition(ctx, cmd, entities.ApplicationStatusInactive)
}

func (uc TransitionApplicationUseCase) transition(
	ctx context.Context,
	cmd TransitionApplicationCommand,
	next entities.ApplicationStatus,
) (entities.Application, error) {
	logger := application.ResolveLogger(uc.Logger)

	if !isAdmin(cmd.ActorRole) {
		return entities.Application{}, domainerrors.ErrForbidden
	}

	app, err := uc.Repository.GetApplication(ctx, strings.TrimSpace(cmd.ApplicationID))
	if err != nil {
		return entities.Application{}, err
	}
	if !app.Status.CanTransitionTo(next) {
		return entities.Application{}, domainerrors.ErrInvalidStatusTransition
	}

	now := uc.Clock.Now().UTC()
	expectedVersion := app.Version
	previous := app.Status
	app.Status = next
	app.Version = expectedVersion + 1
	app.UpdatedAt = now
	app.DecidedAt = &now
	app.DecidedByUserID = strings.TrimSpace(cmd.ActorID)
	if next == entities.ApplicationStatusDeclined {
		app.DeclineReason = strings.TrimSpace(cmd.Reason)
	}

	if err := uc.Repository.UpdateApplication(ctx, app, expectedVersion); err != nil {
		return entities.Application{}, err
	}

	logger.Info("application status changed",
		"event", "application_status_changed",
		"module", "policy-operations/application-service",
		"layer", "application",
		"application_id", app.ApplicationID,
		"from", string(previous),
		"to", string(next),
		"actor_id", app.DecidedByUserID,
	)
	return app, nil
}
