package eventcatalogservice

import (
	"log/slog"

	httpadapter "senkron/contexts/temporal-analysis/event-catalog-service/adapters/http"
	"senkron/contexts/temporal-analysis/event-catalog-service/adapters/memory"
	"senkron/contexts/temporal-analysis/event-catalog-service/application"
	"senkron/contexts/temporal-analysis/event-catalog-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Repo      ports.Repository
	Validator ports.BatchValidator
	Observer  ports.CatalogObserver
	Logger    *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:      deps.Repo,
		Validator: deps.Validator,
		Observer:  deps.Observer,
		Logger:    deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

func NewInMemoryModule(validator ports.BatchValidator, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repo:      store,
		Validator: validator,
		Logger:    logger,
	})
	module.Store = store
	return module
}
