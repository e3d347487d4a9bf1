package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"pawsure/contexts/identity-access/identity-service/application/commands"
	"pawsure/contexts/identity-access/identity-service/application/queries"
	"pawsure/contexts/identity-access/identity-service/domain/entities"
	httptransport "pawsure/contexts/identity-access/identity-service/transport/http"
)

type Handler struct {
	Register   commands.RegisterUserUseCase
	Login      commands.LoginUseCase
	Tokens     commands.TokenUseCase
	ManageUser commands.ManageUserUseCase
	Queries    queries.QueryUseCase
	Logger     *slog.Logger
}

func (h Handler) RegisterHandler(ctx context.Context, req httptransport.RegisterRequest) (httptransport.RegisterResponse, error) {
	user, err := h.Register.Execute(ctx, commands.RegisterUserCommand{
		Email:             req.Email,
		FullName:          req.FullName,
		Password:          req.Password,
		Role:              entities.Role(req.Role),
		RegistrationToken: req.RegistrationToken,
		Phone:             req.Phone,
		Address:           req.Address,
		City:              req.City,
		PostalCode:        req.PostalCode,
	})
	if err != nil {
		return httptransport.RegisterResponse{}, err
	}
	return httptransport.RegisterResponse{User: mapUser(user)}, nil
}

func (h Handler) LoginHandler(ctx context.Context, req httptransport.LoginRequest) (httptransport.LoginResponse, error) {
	session, err := h.Login.Execute(ctx, commands.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return httptransport.LoginResponse{}, err
	}
	return httptransport.LoginResponse{
		User:      mapUser(session.User),
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt.Format(time.RFC3339),
	}, nil
}

func (h Handler) VerifyEmailHandler(ctx context.Context, req httptransport.VerifyEmailRequest) error {
	return h.Tokens.VerifyEmail(ctx, req.Token)
}

func (h Handler) IssueRegistrationTokenHandler(
	ctx context.Context,
	actorID string,
	actorRole string,
	req httptransport.IssueRegistrationTokenRequest,
) (httptransport.IssueRegistrationTokenResponse, error) {
	token, err := h.Tokens.IssueRegistrationToken(ctx, commands.IssueRegistrationTokenCommand{
		Email:     req.Email,
		ActorID:   actorID,
		ActorRole: entities.Role(actorRole),
	})
	if err != nil {
		return httptransport.IssueRegistrationTokenResponse{}, err
	}
	return httptransport.IssueRegistrationTokenResponse{
		Token:     token.Token,
		Email:     token.Email,
		ExpiresAt: token.ExpiresAt.Format(time.RFC3339),
	}, nil
}

func (h Handler) GetUserHandler(ctx context.Context, actorID string, actorRole string, userID string) (httptransport.UserProfileResponse, error) {
	profile, err := h.Queries.GetUser(ctx, actorID, entities.Role(actorRole), userID)
	if err != nil {
		return httptransport.UserProfileResponse{}, err
	}
	resp := httptransport.UserProfileResponse{User: mapUser(profile.User)}
	if profile.User.Role == entities.RoleCustomer {
		resp.Details = &httptransport.ClientDetailsDTO{
			Phone:      profile.Details.Phone,
			Address:    profile.Details.Address,
			City:       profile.Details.City,
			PostalCode: profile.Details.PostalCode,
		}
	}
	return resp, nil
}

func (h Handler) UpdateUserHandler(
	ctx context.Context,
	actorID string,
	actorRole string,
	userID string,
	req httptransport.UpdateUserRequest,
) (httptransport.UserProfileResponse, error) {
	user, err := h.ManageUser.Update(ctx, commands.UpdateUserCommand{
		UserID:     userID,
		ActorID:    actorID,
		ActorRole:  entities.Role(actorRole),
		FullName:   req.FullName,
		Role:       entities.Role(req.Role),
		Phone:      req.Phone,
		Address:    req.Address,
		City:       req.City,
		PostalCode: req.PostalCode,
	})
	if err != nil {
		return httptransport.UserProfileResponse{}, err
	}
	return httptransport.UserProfileResponse{User: mapUser(user)}, nil
}

func (h Handler) DeleteUserHandler(ctx context.Context, actorRole string, userID string) error {
	return h.ManageUser.Delete(ctx, commands.DeleteUserCommand{
		UserID:    userID,
		ActorRole: entities.Role(actorRole),
	})
}

func (h Handler) ListUsersHandler(ctx context.Context, actorRole string, role string, page int, limit int) (httptransport.ListUsersResponse, int64, error) {
	items, total, err := h.Queries.ListUsers(ctx, queries.ListUsersQuery{
		ActorRole: entities.Role(actorRole),
		Role:      role,
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		return httptransport.ListUsersResponse{}, 0, err
	}
	result := make([]httptransport.UserDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapUser(item))
	}
	return httptransport.ListUsersResponse{Items: result, Total: total}, total, nil
}

func mapUser(user entities.User) httptransport.UserDTO {
	dto := httptransport.UserDTO{
		UserID:    user.UserID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		UpdatedAt: user.UpdatedAt.Format(time.RFC3339),
	}
	if user.EmailVerifiedAt != nil {
		dto.EmailVerifiedAt = user.EmailVerifiedAt.Format(time.RFC3339)
	}
	return dto
}
