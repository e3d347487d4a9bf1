package paymentservice

import (
	"log/slog"

	httpadapter "pawsure/contexts/policy-operations/payment-service/adapters/http"
	"pawsure/contexts/policy-operations/payment-service/adapters/memory"
	"pawsure/contexts/policy-operations/payment-service/application"
	"pawsure/contexts/policy-operations/payment-service/domain/entities"
	"pawsure/contexts/policy-operations/payment-service/ports"
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
	service := application.Service{
		Repository: deps.Repository,
		Policies:   deps.Policies,
		Clock:      deps.Clock,
		IDGen:      deps.IDGen,
		Logger:     deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
	}
}

func NewInMemoryModule(seed []entities.Payment, logger *slog.Logger) Module {
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
