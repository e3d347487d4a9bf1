package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	application "pawsure/contexts/identity-access/identity-service/application"
	"pawsure/contexts/identity-access/identity-service/domain/entities"
	domainerrors "pawsure/contexts/identity-access/identity-service/domain/errors"
	"pawsure/contexts/identity-access/identity-service/ports"
)

type RegisterUserCommand struct {
	Email             string
	FullName          string
	Password          string
	Role              entities.Role
	RegistrationToken string

	Phone      string
	Address    string
	City       string
	PostalCode string
}

type RegisterUserUseCase struct {
	Repository   ports.Repository
	Applications ports.ApplicationDirectory
	Notifier     ports.Notifier
	Hasher       ports.PasswordHasher
	Clock        ports.Clock
	IDGen        ports.IDGenerator
	Logger       *slog.Logger
}

// Execute registers an account. Customers must present an admin-issued
// registration token or already have a submitted application matching
// their email; admins always need a token.
func (uc RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (entities.User, error) {
	logger := application.ResolveLogger(uc.Logger)

	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	user := entities.User{
		Email:    email,
		FullName: strings.TrimSpace(cmd.FullName),
		Role:     cmd.Role,
	}
	if !user.ValidateCreate() || strings.TrimSpace(cmd.Password) == "" {
		return entities.User{}, domainerrors.ErrInvalidUserInput
	}

	if err := uc.checkEligibility(ctx, email, cmd); err != nil {
		return entities.User{}, err
	}

	hash, err := uc.Hasher.Hash(cmd.Password)
	if err != nil {
		return entities.User{}, err
	}

	now := uc.Clock.Now().UTC()
	existing, err := uc.Repository.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		// Intake-created customer claiming their account. An account
		// that can already log in must not be re-registered over.
		if existing.HasCredentials() || existing.Role != entities.RoleCustomer {
			return entities.User{}, domainerrors.ErrEmailAlreadyRegistered
		}
		existing.FullName = user.FullName
		existing.PasswordHash = hash
		existing.UpdatedAt = now
		user = existing
		if err := uc.Repository.UpdateUser(ctx, user); err != nil {
			return entities.User{}, err
		}
	case errors.Is(err, domainerrors.ErrUserNotFound):
		id, idErr := uc.IDGen.NewID(ctx)
		if idErr != nil {
			return entities.User{}, idErr
		}
		user.UserID = id
		user.PasswordHash = hash
		user.CreatedAt = now
		user.UpdatedAt = now
		if err := uc.Repository.CreateUser(ctx, user); err != nil {
			return entities.User{}, err
		}
	default:
		return entities.User{}, err
	}

	if user.Role == entities.RoleCustomer {
		details := entities.ClientDetails{
			UserID:     user.UserID,
			Phone:      strings.TrimSpace(cmd.Phone),
			Address:    strings.TrimSpace(cmd.Address),
			City:       strings.TrimSpace(cmd.City),
			PostalCode: strings.TrimSpace(cmd.PostalCode),
			UpdatedAt:  now,
		}
		if err := uc.Repository.UpsertClientDetails(ctx, details); err != nil {
			return entities.User{}, err
		}
	}

	if strings.TrimSpace(cmd.RegistrationToken) != "" {
		if err := uc.Repository.MarkRegistrationTokenUsed(ctx, strings.TrimSpace(cmd.RegistrationToken), now); err != nil {
			return entities.User{}, err
		}
	}

	if err := uc.Notifier.SendWelcome(ctx, user.Email, user.FullName); err != nil {
		logger.Warn("welcome email dispatch failed",
			"event", "welcome_email_failed",
			"module", "identity-access/identity-service",
			"layer", "application",
			"user_id", user.UserID,
			"error", err.Error(),
		)
	}

	logger.Info("user registered",
		"event", "user_registered",
		"module", "identity-access/identity-service",
		"layer", "application",
		"user_id", user.UserID,
		"role", string(user.Role),
	)
	return user, nil
}

func (uc RegisterUserUseCase) checkEligibility(ctx context.Context, email string, cmd RegisterUserCommand) error {
	token := strings.TrimSpace(cmd.RegistrationToken)
	if token != "" {
		record, err := uc.Repository.GetRegistrationToken(ctx, token)
		if err != nil {
			return domainerrors.ErrRegistrationTokenInvalid
		}
		if !record.Usable(email, uc.Clock.Now().UTC()) {
			return domainerrors.ErrRegistrationTokenInvalid
		}
		return nil
	}

	if cmd.Role != entities.RoleCustomer {
		return domainerrors.ErrForbidden
	}

	submitted, err := uc.Applications.HasSubmittedApplicationForEmail(ctx, email)
	if err != nil {
		return err
	}
	if !submitted {
		return domainerrors.ErrNoSubmittedApplication
	}
	return nil
}
