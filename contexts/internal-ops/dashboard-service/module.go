package dashboardservice

import (
	"log/slog"

	httpadapter "pawsure/contexts/internal-ops/dashboard-service/adapters/http"
	"pawsure/contexts/internal-ops/dashboard-service/adapters/memory"
	"pawsure/contexts/internal-ops/dashboard-service/application"
	"pawsure/contexts/internal-ops/dashboard-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Handler: httpadapter.Handler{
			Service: application.Service{
				Repo:   deps.Repository,
				Logger: deps.Logger,
			},
			Logger: deps.Logger,
		},
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository: store,
		Logger:     logger,
	})
	module.Store = store
	return module
}
