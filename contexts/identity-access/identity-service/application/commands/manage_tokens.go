package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "pawsure/contexts/identity-access/identity-service/application"
	"pawsure/contexts/identity-access/identity-service/domain/entities"
	domainerrors "pawsure/contexts/identity-access/identity-service/domain/errors"
	"pawsure/contexts/identity-access/identity-service/ports"
)

type IssueRegistrationTokenCommand struct {
	Email     string
	ActorID   string
	ActorRole entities.Role
}

type TokenUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	TokenTTL   time.Duration
	Logger     *slog.Logger
}

func (uc TokenUseCase) IssueRegistrationToken(ctx context.Context, cmd IssueRegistrationTokenCommand) (entities.RegistrationToken, error) {
	logger := application.ResolveLogger(uc.Logger)

	if cmd.ActorRole != entities.RoleAdmin {
		return entities.RegistrationToken{}, domainerrors.ErrForbidden
	}
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if email == "" || !strings.Contains(email, "@") {
		return entities.RegistrationToken{}, domainerrors.ErrInvalidUserInput
	}

	value, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.RegistrationToken{}, err
	}
	ttl := uc.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	now := uc.Clock.Now().UTC()
	token := entities.RegistrationToken{
		Token:          value,
		Email:          email,
		IssuedByUserID: strings.TrimSpace(cmd.ActorID),
		ExpiresAt:      now.Add(ttl),
		CreatedAt:      now,
	}
	if err := uc.Repository.CreateRegistrationToken(ctx, token); err != nil {
		return entities.RegistrationToken{}, err
	}

	logger.Info("registration token issued",
		"event", "registration_token_issued",
		"module", "identity-access/identity-service",
		"layer", "application",
		"email", email,
		"issued_by", token.IssuedByUserID,
	)
	return token, nil
}

// VerifyEmail consumes a verification token and stamps the user record.
func (uc TokenUseCase) VerifyEmail(ctx context.Context, tokenValue string) error {
	logger := application.ResolveLogger(uc.Logger)

	token, err := uc.Repository.ConsumeVerificationToken(ctx, strings.TrimSpace(tokenValue))
	if err != nil {
		return err
	}
	now := uc.Clock.Now().UTC()
	if token.Expired(now) {
		return domainerrors.ErrVerificationTokenInvalid
	}

	user, err := uc.Repository.GetUser(ctx, token.Identifier)
	if err != nil {
		return err
	}
	user.EmailVerifiedAt = &now
	user.UpdatedAt = now
	if err := uc.Repository.UpdateUser(ctx, user); err != nil {
		return err
	}

	logger.Info("email verified",
		"event", "email_verified",
		"module", "identity-access/identity-service",
		"layer", "application",
		"user_id", user.UserID,
	)
	return nil
}
