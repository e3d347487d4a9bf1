package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	application "pawsure/contexts/identity-access/identity-service/application"
	"pawsure/contexts/identity-access/identity-service/domain/entities"
	domainerrors "pawsure/contexts/identity-access/identity-service/domain/errors"
	"pawsure/contexts/identity-access/identity-service/ports"
)

type LoginCommand struct {
	Email    string
	Password string
}

type Session struct {
	User      entities.User
	Token     string
	ExpiresAt time.Time
}

type LoginUseCase struct {
	Repository ports.Repository
	Hasher     ports.PasswordHasher
	Sessions   ports.SessionIssuer
	SessionTTL time.Duration
	Logger     *slog.Logger
}

func (uc LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (Session, error) {
	logger := application.ResolveLogger(uc.Logger)

	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if email == "" || cmd.Password == "" {
		return Session{}, domainerrors.ErrInvalidCredentials
	}

	user, err := uc.Repository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return Session{}, domainerrors.ErrInvalidCredentials
		}
		return Session{}, err
	}
	if !user.HasCredentials() {
		return Session{}, domainerrors.ErrInvalidCredentials
	}
	if err := uc.Hasher.Compare(user.PasswordHash, cmd.Password); err != nil {
		return Session{}, domainerrors.ErrInvalidCredentials
	}

	ttl := uc.SessionTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	token, expiresAt, err := uc.Sessions.Issue(user.UserID, user.Role, ttl)
	if err != nil {
		return Session{}, err
	}

	logger.Info("user logged in",
		"event", "user_logged_in",
		"module", "identity-access/identity-service",
		"layer", "application",
		"user_id", user.UserID,
	)
	return Session{User: user, Token: token, ExpiresAt: expiresAt}, nil
}
