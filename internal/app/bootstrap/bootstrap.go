package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	identityservice "pawsure/contexts/identity-access/identity-service"
	identitycrypto "pawsure/contexts/identity-access/identity-service/adapters/crypto"
	identitypostgres "pawsure/contexts/identity-access/identity-service/adapters/postgres"
	identitycommands "pawsure/contexts/identity-access/identity-service/application/commands"
	dashboardservice "pawsure/contexts/internal-ops/dashboard-service"
	dashboardpostgres "pawsure/contexts/internal-ops/dashboard-service/adapters/postgres"
	searchservice "pawsure/contexts/internal-ops/search-service"
	searchpostgres "pawsure/contexts/internal-ops/search-service/adapters/postgres"
	applicationservice "pawsure/contexts/policy-operations/application-service"
	applicationpostgres "pawsure/contexts/policy-operations/application-service/adapters/postgres"
	claimservice "pawsure/contexts/policy-operations/claim-service"
	claimpostgres "pawsure/contexts/policy-operations/claim-service/adapters/postgres"
	paymentservice "pawsure/contexts/policy-operations/payment-service"
	paymentpostgres "pawsure/contexts/policy-operations/payment-service/adapters/postgres"
	petservice "pawsure/contexts/policy-operations/pet-service"
	petpostgres "pawsure/contexts/policy-operations/pet-service/adapters/postgres"
	"pawsure/internal/platform/config"
	"pawsure/internal/platform/db"
	"pawsure/internal/platform/httpserver"
	"pawsure/internal/platform/mailer"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

// credentialProvisioner bridges the application context's submit side
// effect to the identity context's provisioning command.
type credentialProvisioner struct {
	provision identitycommands.ProvisionCredentialsUseCase
}

func (p credentialProvisioner) ProvisionCredentials(ctx context.Context, customerID string) error {
	return p.provision.Execute(ctx, customerID)
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	notifier := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom, logger)

	identityRepo := identitypostgres.NewRepository(pg.DB, logger)
	identityModule := identityservice.NewModule(identityservice.Dependencies{
		Repository:   identityRepo,
		Applications: identityRepo,
		Notifier:     notifier,
		Hasher:       identitycrypto.BcryptHasher{},
		Sessions:     identitycrypto.JWTSessionIssuer{Secret: []byte(cfg.JWTSecret)},
		Clock:        identitypostgres.SystemClock{},
		IDGen:        identitypostgres.UUIDGenerator{},
		SessionTTL:   time.Duration(cfg.SessionTTLHrs) * time.Hour,
		TokenTTL:     time.Duration(cfg.TokenTTLHrs) * time.Hour,
		BaseURL:      cfg.BaseURL,
		Logger:       logger,
	})

	applicationRepo := applicationpostgres.NewRepository(pg.DB, logger)
	applicationModule := applicationservice.NewModule(applicationservice.Dependencies{
		Repository:  applicationRepo,
		Pets:        applicationRepo,
		Customers:   applicationRepo,
		Credentials: credentialProvisioner{provision: identityModule.Provision},
		Clock:       applicationpostgres.SystemClock{},
		IDGen:       applicationpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	claimRepo := claimpostgres.NewRepository(pg.DB, logger)
	claimModule := claimservice.NewModule(claimservice.Dependencies{
		Repository: claimRepo,
		Policies:   claimRepo,
		Clock:      claimpostgres.SystemClock{},
		IDGen:      claimpostgres.UUIDGenerator{},
		Logger:     logger,
	})

	petRepo := petpostgres.NewRepository(pg.DB, logger)
	petModule := petservice.NewModule(petservice.Dependencies{
		Repository:   petRepo,
		Applications: petRepo,
		Clock:        petpostgres.SystemClock{},
		IDGen:        petpostgres.UUIDGenerator{},
		Logger:       logger,
	})

	paymentRepo := paymentpostgres.NewRepository(pg.DB, logger)
	paymentModule := paymentservice.NewModule(paymentservice.Dependencies{
		Repository: paymentRepo,
		Policies:   paymentRepo,
		Clock:      paymentpostgres.SystemClock{},
		IDGen:      paymentpostgres.UUIDGenerator{},
		Logger:     logger,
	})

	dashboardModule := dashboardservice.NewModule(dashboardservice.Dependencies{
		Repository: dashboardpostgres.NewRepository(pg.DB, logger),
		Logger:     logger,
	})

	searchModule := searchservice.NewModule(searchservice.Dependencies{
		Repository: searchpostgres.NewRepository(pg.DB, logger),
		Logger:     logger,
	})

	server := httpserver.New(httpserver.Modules{
		Identity:     identityModule,
		Applications: applicationModule,
		Claims:       claimModule,
		Pets:         petModule,
		Payments:     paymentModule,
		Dashboard:    dashboardModule,
		Search:       searchModule,
	}, []byte(cfg.JWTSecret), logger, normalizeAddr(cfg.HTTPPort))

	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	port = strings.TrimSpace(port)
	if port == "" {
		return ":8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}
