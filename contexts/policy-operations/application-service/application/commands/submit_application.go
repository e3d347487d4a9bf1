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

type SubmitApplicationCommand struct {
	ApplicationID string
	ActorID       string
	ActorRole     string
}

// SubmitApplicationUseCase finalizes intake for a submitted
// application: it provisions login credentials for the owning customer
// (temporary password, verification token, email). Kept separate from
// the generic update so credential issuance can never ride along on an
// unrelated field patch.
type SubmitApplicationUseCase struct {
	Repository  ports.Repository
	Credentials ports.CredentialProvisioner
	Clock       ports.Clock
	Logger      *slog.Logger
}

func (uc SubmitApplicationUseCase) Execute(ctx context.Context, cmd SubmitApplicationCommand) (entities.Application, error) {
	logger := application.ResolveLogger(uc.Logger)

	if !isAdmin(cmd.ActorRole) {
		return entities.Application{}, domainerrors.ErrForbidden
	}

	app, err := uc.Repository.GetApplication(ctx, strings.TrimSpace(cmd.ApplicationID))
	if err != nil {
		return entities.Application{}, err
	}
	if app.Status != entities.ApplicationStatusSubmitted {
		return entities.Application{}, domainerrors.ErrInvalidStatusTransition
	}

	expectedVersion := app.Version
	app.Version = expectedVersion + 1
	app.UpdatedAt = uc.Clock.Now().UTC()
	if err := uc.Repository.UpdateApplication(ctx, app, expectedVersion); err != nil {
		return entities.Application{}, err
	}

	if err := uc.Credentials.ProvisionCredentials(ctx, app.CustomerID); err != nil {
		return entities.Application{}, err
	}

	logger.Info("application submitted",
		"event", "application_submitted",
		"module", "policy-operations/application-service",
		"layer", "application",
		"application_id", app.ApplicationID,
		"customer_id", app.CustomerID,
	)
	return app, nil
}
