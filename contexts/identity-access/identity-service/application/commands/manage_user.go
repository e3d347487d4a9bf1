package commands

import (
	"context"
	"log/slog"
	"strings"

	application "pawsure/contexts/identity-access/identity-service/application"
	"pawsure/contexts/identity-access/identity-service/domain/entities"
	domainerrors "pawsure/contexts/identity-access/identity-service/domain/errors"
	"pawsure/contexts/identity-access/identity-service/ports"
)

type UpdateUserCommand struct {
	UserID    string
	ActorID   string
	ActorRole entities.Role

	FullName string
	Role     entities.Role

	Phone      string
	Address    string
	City       string
	PostalCode string
}

type DeleteUserCommand struct {
	UserID    string
	ActorRole entities.Role
}

type ManageUserUseCase struct {
	Repository   ports.Repository
	Applications ports.ApplicationDirectory
	Clock        ports.Clock
	Logger       *slog.Logger
}

func (uc ManageUserUseCase) Update(ctx context.Context, cmd UpdateUserCommand) (entities.User, error) {
	logger := application.ResolveLogger(uc.Logger)

	userID := strings.TrimSpace(cmd.UserID)
	if cmd.ActorRole != entities.RoleAdmin && cmd.ActorID != userID {
		return entities.User{}, domainerrors.ErrForbidden
	}

	user, err := uc.Repository.GetUser(ctx, userID)
	if err != nil {
		return entities.User{}, err
	}

	if name := strings.TrimSpace(cmd.FullName); name != "" {
		user.FullName = name
	}
	if cmd.Role != "" && cmd.Role != user.Role {
		// Role changes are an admin-only privilege escalation path.
		if cmd.ActorRole != entities.RoleAdmin {
			return entities.User{}, domainerrors.ErrForbidden
		}
		if !cmd.Role.Valid() {
			return entities.User{}, domainerrors.ErrInvalidUserInput
		}
		user.Role = cmd.Role
	}

	now := uc.Clock.Now().UTC()
	user.UpdatedAt = now
	if err := uc.Repository.UpdateUser(ctx, user); err != nil {
		return entities.User{}, err
	}

	if user.Role == entities.RoleCustomer {
		details, err := uc.Repository.GetClientDetails(ctx, user.UserID)
		if err != nil {
			return entities.User{}, err
		}
		details.UserID = user.UserID
		if v := strings.TrimSpace(cmd.Phone); v != "" {
			details.Phone = v
		}
		if v := strings.TrimSpace(cmd.Address); v != "" {
			details.Address = v
		}
		if v := strings.TrimSpace(cmd.City); v != "" {
			details.City = v
		}
		if v := strings.TrimSpace(cmd.PostalCode); v != "" {
			details.PostalCode = v
		}
		details.UpdatedAt = now
		if err := uc.Repository.UpsertClientDetails(ctx, details); err != nil {
			return entities.User{}, err
		}
	}

	logger.Info("user updated",
		"event", "user_updated",
		"module", "identity-access/identity-service",
		"layer", "application",
		"user_id", user.UserID,
	)
	return user, nil
}

func (uc ManageUserUseCase) Delete(ctx context.Context, cmd DeleteUserCommand) error {
	logger := application.ResolveLogger(uc.Logger)

	if cmd.ActorRole != entities.RoleAdmin {
		return domainerrors.ErrForbidden
	}
	userID := strings.TrimSpace(cmd.UserID)
	if _, err := uc.Repository.GetUser(ctx, userID); err != nil {
		return err
	}

	owned, err := uc.Applications.CountApplicationsByCustomer(ctx, userID)
	if err != nil {
		return err
	}
	if owned > 0 {
		return domainerrors.ErrUserOwnsApplications
	}

	if err := uc.Repository.DeleteUser(ctx, userID); err != nil {
		return err
	}
	logger.Info("user deleted",
		"event", "user_deleted",
		"module", "identity-access/identity-service",
		"layer", "application",
		"user_id", userID,
	)
	return nil
}
