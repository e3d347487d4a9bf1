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

type CreateApplicationCommand struct {
	ActorID   string
	ActorRole string

	CustomerID    string
	PetID         string
	CoverageLimit float64
	Premium       float64
	StartDate     *time.Time
	Notes         string
}

type CreateApplicationUseCase struct {
	Repository ports.Repository
	Pets       ports.PetDirectory
	Customers  ports.CustomerDirectory
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

// Execute drafts a new application in submitted status. Customers may
// only apply for themselves; admins may apply on a customer's behalf.
func (uc CreateApplicationUseCase) Execute(ctx context.Context, cmd CreateApplicationCommand) (entities.Application, error) {
	logger := application.ResolveLogger(uc.Logger)

	customerID := strings.TrimSpace(cmd.CustomerID)
	if !isAdmin(cmd.ActorRole) {
		if customerID == "" {
			customerID = strings.TrimSpace(cmd.ActorID)
		}
		if customerID != strings.TrimSpace(cmd.ActorID) {
			return entities.Application{}, domainerrors.ErrForbidden
		}
	}

	app := entities.Application{
		CustomerID:    customerID,
		PetID:         strings.TrimSpace(cmd.PetID),
		Status:        entities.ApplicationStatusSubmitted,
		CoverageLimit: cmd.CoverageLimit,
		Premium:       cmd.Premium,
		StartDate:     cmd.StartDate,
		Notes:         strings.TrimSpace(cmd.Notes),
	}
	if !app.ValidateCreate() {
		return entities.Application{}, domainerrors.ErrInvalidApplicationInput
	}

	isCustomer, err := uc.Customers.IsCustomer(ctx, app.CustomerID)
	if err != nil {
		return entities.Application{}, err
	}
	if !isCustomer {
		return entities.Application{}, domainerrors.ErrCustomerRoleRequired
	}

	owner, err := uc.Pets.GetPetOwner(ctx, app.PetID)
	if err != nil {
		return entities.Application{}, err
	}
	if owner != app.CustomerID {
		return entities.Application{}, domainerrors.ErrPetNotOwnedByCustomer
	}

	id, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Application{}, err
	}
	now := uc.Clock.Now().UTC()
	app.ApplicationID = id
	app.PolicyNumber = "PI-" + strings.ToUpper(strings.ReplaceAll(id, "-", ""))[:8]
	app.Version = 1
	app.CreatedAt = now
	app.UpdatedAt = now

	if err := uc.Repository.CreateApplication(ctx, app); err != nil {
		return entities.Application{}, err
	}

	logger.Info("application created",
		"event", "application_created",
		"module", "policy-operations/application-service",
		"layer", "application",
		"application_id", app.ApplicationID,
		"customer_id", app.CustomerID,
	)
	return app, nil
}
