package timelineservice

import (
	"log/slog"

	httpadapter "senkron/contexts/temporal-analysis/timeline-service/adapters/http"
	"senkron/contexts/temporal-analysis/timeline-service/adapters/memory"
	"senkron/contexts/temporal-analysis/timeline-service/application"
	"senkron/contexts/temporal-analysis/timeline-service/domain/services"
	"senkron/contexts/temporal-analysis/timeline-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Source    ports.EventSource
	Runs      ports.RunRepository
	Clock     ports.Clock
	Discovery services.Config
	Logger    *slog.Logger
}

func NewModule(deps Dependencies) Module {
	// An unset threshold gets the default here, at construction, so an
	// explicit zero passed per request still means "accept everything".
	if deps.Discovery.MinScore <= 0 {
		deps.Discovery.MinScore = services.DefaultConfig().MinScore
	}
	service := application.Service{
		Source:    deps.Source,
		Clock:     deps.Clock,
		Discovery: deps.Discovery,
		Logger:    deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Runs:    deps.Runs,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

func NewInMemoryModule(seed []ports.SourceEvent, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Source:    store,
		Runs:      store,
		Clock:     store,
		Discovery: services.DefaultConfig(),
		Logger:    logger,
	})
	module.Store = store
	return module
}
