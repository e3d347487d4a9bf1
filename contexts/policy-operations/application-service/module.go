package applicationservice

import (
	"log/slog"

	httpadapter "pawsure/contexts/policy-operations/application-service/adapters/http"
	"pawsure/contexts/policy-operations/application-service/adapters/memory"
	"pawsure/contexts/policy-operations/application-service/application/commands"
	"pawsure/contexts/policy-operations/application-service/application/queries"
	"pawsure/contexts/policy-operations/application-service/domain/entities"
	"pawsure/contexts/policy-operations/application-service/ports"
)

type Module struct {
	Handler     httpadapter.Handler
	Store       *memory.Store
	Provisioner *memory.Provisioner
}

type Dependencies struct {
	Repository  ports.Repository
	Pets        ports.PetDirectory
	Customers   ports.CustomerDirectory
	Credentials ports.CredentialProvisioner
	Clock       ports.Clock
	IDGen       ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	create := commands.CreateApplicationUseCase{
		Repository: deps.Repository,
		Pets:       deps.Pets,
		Customers:  deps.Customers,
		Clock:      deps.Clock,
		IDGen:      deps.IDGen,
		Logger:     deps.Logger,
	}
	update := commands.UpdateApplicationUseCase{
		Repository: deps.Repository,
		Clock:      deps.Clock,
		Logger:     deps.Logger,
	}
	transition := commands.TransitionApplicationUseCase{
		Repository: deps.Repository,
		Clock:      deps.Clock,
		Logger:     deps.Logger,
	}
	submit := commands.SubmitApplicationUseCase{
		Repository:  deps.Repository,
		Credentials: deps.Credentials,
		Clock:       deps.Clock,
		Logger:      deps.Logger,
	}
	queryUseCase := queries.QueryUseCase{
		Repository: deps.Repository,
		Logger:     deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			Create:     create,
			Update:     update,
			Transition: transition,
			Submit:     submit,
			Queries:    queryUseCase,
			Logger:     deps.Logger,
		},
	}
}

func NewInMemoryModule(seed []entities.Application, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	provisioner := memory.NewProvisioner()
	module := NewModule(Dependencies{
		Repository:  store,
		Pets:        store,
		Customers:   store,
		Credentials: provisioner,
		Clock:       store,
		IDGen:       store,
		Logger:      logger,
	})
	module.Store = store
	module.Provisioner = provisioner
	return module
}
