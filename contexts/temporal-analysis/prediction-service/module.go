package predictionservice

import (
	"log/slog"

	"senkron/contexts/temporal-analysis/prediction-service/adapters/ephemeris"
	httpadapter "senkron/contexts/temporal-analysis/prediction-service/adapters/http"
	"senkron/contexts/temporal-analysis/prediction-service/application"
	"senkron/contexts/temporal-analysis/prediction-service/domain/services"
	"senkron/contexts/temporal-analysis/prediction-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
}

type Dependencies struct {
	Ephemeris ports.Ephemeris
	Stats     ports.WindowStatsSource
	Quantum   services.QuantumParams
	Weights   services.FusionWeights
	Logger    *slog.Logger
}

func NewModule(deps Dependencies) Module {
	if deps.Ephemeris == nil {
		deps.Ephemeris = ephemeris.NewEngine()
	}
	service := application.Service{
		Ephemeris: deps.Ephemeris,
		Stats:     deps.Stats,
		Quantum:   deps.Quantum,
		Weights:   deps.Weights,
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
