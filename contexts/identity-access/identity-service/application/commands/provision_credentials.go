package commands

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"log/slog"
	"strings"
	"time"

	application "pawsure/contexts/identity-access/identity-service/application"
	"pawsure/contexts/identity-access/identity-service/domain/entities"
	"pawsure/contexts/identity-access/identity-service/ports"
)

type ProvisionCredentialsUseCase struct {
	Repository ports.Repository
	Notifier   ports.Notifier
	Hasher     ports.PasswordHasher
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	TokenTTL   time.Duration
	BaseURL    string
	Logger     *slog.Logger
}

// Execute issues a temporary password and a time-limited verification
// token for the given customer, then emails both. The password and
// token writes must succeed; email dispatch failure is logged only.
func (uc ProvisionCredentialsUseCase) Execute(ctx context.Context, customerID string) error {
	logger := application.ResolveLogger(uc.Logger)

	user, err := uc.Repository.GetUser(ctx, strings.TrimSpace(customerID))
	if err != nil {
		return err
	}

	tempPassword, err := generateTempPassword()
	if err != nil {
		return err
	}
	hash, err := uc.Hasher.Hash(tempPassword)
	if err != nil {
		return err
	}

	now := uc.Clock.Now().UTC()
	user.PasswordHash = hash
	user.UpdatedAt = now
	if err := uc.Repository.UpdateUser(ctx, user); err != nil {
		return err
	}

	ttl := uc.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	tokenValue, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return err
	}
	token := entities.VerificationToken{
		Token:      tokenValue,
		Identifier: user.UserID,
		ExpiresAt:  now.Add(ttl),
		CreatedAt:  now,
	}
	if err := uc.Repository.CreateVerificationToken(ctx, token); err != nil {
		return err
	}

	verifyURL := strings.TrimRight(uc.BaseURL, "/") + "/verify?token=" + token.Token
	if err := uc.Notifier.SendTemporaryCredentials(ctx, user.Email, tempPassword, verifyURL); err != nil {
		logger.Warn("credential email dispatch failed",
			"event", "credential_email_failed",
			"module", "identity-access/identity-service",
			"layer", "application",
			"user_id", user.UserID,
			"error", err.Error(),
		)
	}

	logger.Info("customer credentials provisioned",
		"event", "credentials_provisioned",
		"module", "identity-access/identity-service",
		"layer", "application",
		"user_id", user.UserID,
		"token_expires_at", token.ExpiresAt.Format(time.RFC3339),
	)
	return nil
}

func generateTempPassword() (string, error) {
	buf := make([]byte, 10)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return strings.ToLower(base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(buf)), nil
}
