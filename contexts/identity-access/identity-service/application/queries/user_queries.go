package queries

import (
	"context"
	"log/slog"
	"strings"

	"pawsure/contexts/identity-access/identity-service/domain/entities"
	domainerrors "pawsure/contexts/identity-access/identity-service/domain/errors"
	"pawsure/contexts/identity-access/identity-service/ports"
)

type QueryUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

type UserProfile struct {
	User    entities.User
	Details entities.ClientDetails
}

func (uc QueryUseCase) GetUser(ctx context.Context, actorID string, actorRole entities.Role, userID string) (UserProfile, error) {
	userID = strings.TrimSpace(userID)
	if actorRole != entities.RoleAdmin && actorID != userID {
		return UserProfile{}, domainerrors.ErrForbidden
	}

	user, err := uc.Repository.GetUser(ctx, userID)
	if err != nil {
		return UserProfile{}, err
	}
	profile := UserProfile{User: user}
	if user.Role == entities.RoleCustomer {
		details, err := uc.Repository.GetClientDetails(ctx, user.UserID)
		if err != nil {
			return UserProfile{}, err
		}
		profile.Details = details
	}
	return profile, nil
}

type ListUsersQuery struct {
	ActorRole entities.Role
	Role      string
	Page      int
	Limit     int
}

func (uc QueryUseCase) ListUsers(ctx context.Context, query ListUsersQuery) ([]entities.User, int64, error) {
	if query.ActorRole != entities.RoleAdmin {
		return nil, 0, domainerrors.ErrForbidden
	}
	return uc.Repository.ListUsers(ctx, ports.UserFilter{
		Role:  entities.Role(strings.TrimSpace(query.Role)),
		Page:  query.Page,
		Limit: query.Limit,
	})
}
