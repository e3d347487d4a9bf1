package identityservice

import (
	"log/slog"
	"time"

	"pawsure/contexts/identity-access/identity-service/adapters/crypto"
	httpadapter "pawsure/contexts/identity-access/identity-service/adapters/http"
	"pawsure/contexts/identity-access/identity-service/adapters/memory"
	"pawsure/contexts/identity-access/identity-service/application/commands"
	"pawsure/contexts/identity-access/identity-service/application/queries"
	"pawsure/contexts/identity-access/identity-service/domain/entities"
	"pawsure/contexts/identity-access/identity-service/ports"
)

type Module struct {
	Handler   httpadapter.Handler
	Provision commands.ProvisionCredentialsUseCase
	Store     *memory.Store
	Notifier  *memory.Notifier
}

type Dependencies struct {
	Repository   ports.Repository
	Applications ports.ApplicationDirectory
	Notifier     ports.Notifier
	Hasher       ports.PasswordHasher
	Sessions     ports.SessionIssuer
	Clock        ports.Clock
	IDGen        ports.IDGenerator
	SessionTTL   time.Duration
	TokenTTL     time.Duration
	BaseURL      string
	Logger       *slog.Logger
}

func NewModule(deps Dependencies) Module {
	register := commands.RegisterUserUseCase{
		Repository:   deps.Repository,
		Applications: deps.Applications,
		Notifier:     deps.Notifier,
		Hasher:       deps.Hasher,
		Clock:        deps.Clock,
		IDGen:        deps.IDGen,
		Logger:       deps.Logger,
	}
	login := commands.LoginUseCase{
		Repository: deps.Repository,
		Hasher:     deps.Hasher,
		Sessions:   deps.Sessions,
		SessionTTL: deps.SessionTTL,
		Logger:     deps.Logger,
	}
	tokens := commands.TokenUseCase{
		Repository: deps.Repository,
		Clock:      deps.Clock,
		IDGen:      deps.IDGen,
		TokenTTL:   deps.TokenTTL,
		Logger:     deps.Logger,
	}
	manageUser := commands.ManageUserUseCase{
		Repository:   deps.Repository,
		Applications: deps.Applications,
		Clock:        deps.Clock,
		Logger:       deps.Logger,
	}
	provision := commands.ProvisionCredentialsUseCase{
		Repository: deps.Repository,
		Notifier:   deps.Notifier,
		Hasher:     deps.Hasher,
		Clock:      deps.Clock,
		IDGen:      deps.IDGen,
		TokenTTL:   deps.TokenTTL,
		BaseURL:    deps.BaseURL,
		Logger:     deps.Logger,
	}
	queryUseCase := queries.QueryUseCase{
		Repository: deps.Repository,
		Logger:     deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			Register:   register,
			Login:      login,
			Tokens:     tokens,
			ManageUser: manageUser,
			Queries:    queryUseCase,
			Logger:     deps.Logger,
		},
		Provision: provision,
	}
}

// NewInMemoryModule wires the module against in-process adapters with a
// low bcrypt cost and a fixed signing secret. Test and local use only.
func NewInMemoryModule(seed []entities.User, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	notifier := memory.NewNotifier()
	module := NewModule(Dependencies{
		Repository:   store,
		Applications: store,
		Notifier:     notifier,
		Hasher:       crypto.BcryptHasher{Cost: 4},
		Sessions:     crypto.JWTSessionIssuer{Secret: []byte("in-memory-signing-secret")},
		Clock:        store,
		IDGen:        store,
		SessionTTL:   24 * time.Hour,
		TokenTTL:     24 * time.Hour,
		BaseURL:      "http://localhost:8080",
		Logger:       logger,
	})
	module.Store = store
	module.Notifier = notifier
	return module
}
