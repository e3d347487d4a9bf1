package claimservice

import (
	"log/slog"

	httpadapter "pawsure/contexts/policy-operations/claim-service/adapters/http"
	"pawsure/contexts/policy-operations/claim-service/adapters/memory"
	"pawsure/contexts/policy-operations/claim-service/application/commands"
	"pawsure/contexts/policy-operations/claim-service/application/queries"
	"pawsure/contexts/policy-operations/claim-service/domain/entities"
	"pawsure/contexts/policy-operations/claim-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Repository ports.Repository
	Policies   ports.PolicyDirectory
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	file := commands.FileClaimUseCase{
		Repository: deps.Repository,
		Policies:   deps.Policies,
		Clock:      deps.Clock,
		IDGen:      deps.IDGen,
		Logger:     deps.Logger,
	}
	review := commands.ReviewClaimUseCase{
		Repository: deps.Repository,
		Policies:   deps.Policies,
		Clock:      deps.Clock,
		Logger:     deps.Logger,
	}
	queryUseCase := queries.QueryUseCase{
		Repository: deps.Repository,
		Policies:   deps.Policies,
		Logger:     deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			File:    file,
			Review:  review,
			Queries: queryUseCase,
			Logger:  deps.Logger,
		},
	}
}

func NewInMemoryModule(seed []entities.Claim, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Repository: store,
		Policies:   store,
		Clock:      store,
		IDGen:      store,
		Logger:     logger,
	})
	module.Store = store
	return module
}
