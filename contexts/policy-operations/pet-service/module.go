package petservice

import (
	"log/slog"

	httpadapter "pawsure/contexts/policy-operations/pet-service/adapters/http"
	"pawsure/contexts/policy-operations/pet-service/adapters/memory"
	"pawsure/contexts/policy-operations/pet-service/application"
	"pawsure/contexts/policy-operations/pet-service/domain/entities"
	"pawsure/contexts/policy-operations/pet-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Repository   ports.Repository
	Applications ports.ApplicationDirectory
	Clock        ports.Clock
	IDGen        ports.IDGenerator
	Logger       *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repository:   deps.Repository,
		Applications: deps.Applications,
		Clock:        deps.Clock,
		IDGen:        deps.IDGen,
		Logger:       deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
	}
}

func NewInMemoryModule(seed []entities.Pet, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Repository:   store,
		Applications: store,
		Clock:        store,
		IDGen:        store,
		Logger:       logger,
	})
	module.Store = store
	return module
}
