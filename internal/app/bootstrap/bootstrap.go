package bootstrap

import (
	"context"
	"log/slog"
	"strings"
	"time"

	eventcatalog "senkron/contexts/temporal-analysis/event-catalog-service"
	catalogcsv "senkron/contexts/temporal-analysis/event-catalog-service/adapters/csv"
	catalogmemory "senkron/contexts/temporal-analysis/event-catalog-service/adapters/memory"
	catalogpostgres "senkron/contexts/temporal-analysis/event-catalog-service/adapters/postgres"
	"senkron/contexts/temporal-analysis/event-catalog-service/adapters/schema"
	catalogapp "senkron/contexts/temporal-analysis/event-catalog-service/application"
	catalogports "senkron/contexts/temporal-analysis/event-catalog-service/ports"
	prediction "senkron/contexts/temporal-analysis/prediction-service"
	predictionports "senkron/contexts/temporal-analysis/prediction-service/ports"
	timeline "senkron/contexts/temporal-analysis/timeline-service"
	timelinebus "senkron/contexts/temporal-analysis/timeline-service/adapters/bus"
	timelinememory "senkron/contexts/temporal-analysis/timeline-service/adapters/memory"
	timelinepostgres "senkron/contexts/temporal-analysis/timeline-service/adapters/postgres"
	timelineapp "senkron/contexts/temporal-analysis/timeline-service/application"
	"senkron/contexts/temporal-analysis/timeline-service/application/workers"
	"senkron/contexts/temporal-analysis/timeline-service/domain/services"
	timelineports "senkron/contexts/temporal-analysis/timeline-service/ports"
	"senkron/internal/platform/config"
	"senkron/internal/platform/db"
	"senkron/internal/platform/httpserver"
	"senkron/internal/platform/messaging"
	"senkron/internal/platform/metrics"
	"senkron/internal/shared/events"
)

// Package bootstrap is the composition root. Cross-module wiring (catalog
// rows feeding the timeline engine, timeline windows feeding prediction
// stats) happens here so module code stays oblivious to its neighbours.

const version = "1.0.0"

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	watcher  *catalogcsv.Watcher
	logger   *slog.Logger
}

type WorkerApp struct {
	scan         workers.TriggerScan
	bus          *messaging.Bus
	postgres     *db.Postgres
	scanInterval time.Duration
	logger       *slog.Logger
}

// assembly holds the wired modules shared by the API and worker builds.
type assembly struct {
	catalog    eventcatalog.Module
	timeline   timeline.Module
	prediction prediction.Module
	runs       timelineports.RunRepository
	registry   *metrics.Registry
	postgres   *db.Postgres
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	app, err := assemble(cfg, logger)
	if err != nil {
		return nil, err
	}

	importCatalogFile(context.Background(), cfg, app.catalog.Service, logger)

	api := &APIApp{
		server: httpserver.New(
			app.timeline,
			app.catalog,
			app.prediction,
			app.registry,
			logger,
			normalizeAddr(cfg.HTTPPort),
			version,
		),
		postgres: app.postgres,
		logger:   logger,
	}

	if cfg.WatchCSV && strings.TrimSpace(cfg.EventsCSVPath) != "" {
		api.watcher = &catalogcsv.Watcher{
			Path: cfg.EventsCSVPath,
			OnChange: func(ctx context.Context) {
				importCatalogFile(ctx, cfg, app.catalog.Service, logger)
			},
			Logger: logger,
		}
	}
	return api, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	app, err := assemble(cfg, logger)
	if err != nil {
		return nil, err
	}

	importCatalogFile(context.Background(), cfg, app.catalog.Service, logger)

	bus := messaging.NewBus(logger)
	return &WorkerApp{
		scan: workers.TriggerScan{
			Service:      app.timeline.Service,
			Runs:         app.runs,
			Publisher:    timelinebus.Publisher{Bus: bus, SourceService: cfg.ServiceName},
			IDGen:        timelinepostgres.UUIDGenerator{},
			Clock:        timelinepostgres.SystemClock{},
			Observer:     app.registry,
			LookbackDays: cfg.ScanLookbackDays,
			Logger:       logger,
		},
		bus:          bus,
		postgres:     app.postgres,
		scanInterval: cfg.ScanInterval,
		logger:       logger,
	}, nil
}

func assemble(cfg config.Config, logger *slog.Logger) (assembly, error) {
	registry := metrics.New(cfg.ServiceName)

	validator, err := schema.NewValidator()
	if err != nil {
		return assembly{}, err
	}

	var (
		pg          *db.Postgres
		catalogRepo catalogports.Repository
		runs        timelineports.RunRepository
	)
	if strings.TrimSpace(cfg.PostgresDSN) != "" {
		pg, err = db.Connect(cfg.PostgresDSN)
		if err != nil {
			return assembly{}, err
		}
		catalogPG := catalogpostgres.NewRepository(pg.DB, logger)
		if err := catalogPG.Migrate(); err != nil {
			return assembly{}, err
		}
		runsPG := timelinepostgres.NewRepository(pg.DB, logger)
		if err := runsPG.Migrate(); err != nil {
			return assembly{}, err
		}
		catalogRepo = catalogPG
		runs = runsPG
	} else {
		logger.Warn("no postgres dsn configured, using in-memory stores",
			"event", "bootstrap_memory_fallback",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
		catalogRepo = catalogmemory.NewStore()
		runs = timelinememory.NewStore(nil)
	}

	catalogModule := eventcatalog.NewModule(eventcatalog.Dependencies{
		Repo:      catalogRepo,
		Validator: validator,
		Observer:  registry,
		Logger:    logger,
	})

	timelineModule := timeline.NewModule(timeline.Dependencies{
		Source: catalogEventSource{catalog: catalogModule.Service},
		Runs:   runs,
		Clock:  timelinepostgres.SystemClock{},
		Discovery: services.Config{
			MinScore:        cfg.MinScore,
			SimilarityFloor: cfg.SimilarityFloor,
			CategoryBonus:   cfg.CategoryBonus,
			TopN:            cfg.TopN,
		},
		Logger: logger,
	})

	predictionModule := prediction.NewModule(prediction.Dependencies{
		Stats:  timelineWindowStats{timeline: timelineModule.Service},
		Logger: logger,
	})

	return assembly{
		catalog:    catalogModule,
		timeline:   timelineModule,
		prediction: predictionModule,
		runs:       runs,
		registry:   registry,
		postgres:   pg,
	}, nil
}

// importCatalogFile loads the configured events file. A missing or broken
// file is logged, not fatal: the catalog can still be filled over HTTP.
func importCatalogFile(ctx context.Context, cfg config.Config, catalog catalogapp.Service, logger *slog.Logger) {
	path := strings.TrimSpace(cfg.EventsCSVPath)
	if path == "" {
		return
	}
	report, err := catalog.ImportSource(ctx, catalogcsv.FileSource{Path: path})
	if err != nil {
		logger.Warn("events file import failed",
			"event", "bootstrap_catalog_import_failed",
			"module", "internal/app/bootstrap",
			"layer", "platform",
			"path", path,
			"error", err.Error(),
		)
		return
	}
	logger.Info("events file imported",
		"event", "bootstrap_catalog_imported",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"path", path,
		"imported", report.Imported,
		"skipped", report.Skipped,
	)
}

// catalogEventSource adapts the catalog module into the timeline engine's
// row source. Dates go back to their textual form at the boundary so the
// timeline keeps a single parsing path for every source it reads from.
type catalogEventSource struct {
	catalog catalogapp.Service
}

func (s catalogEventSource) FetchAll(ctx context.Context) ([]timelineports.SourceEvent, error) {
	rows, err := s.catalog.ListEvents(ctx, catalogports.ListFilter{})
	if err != nil {
		return nil, err
	}
	out := make([]timelineports.SourceEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, timelineports.SourceEvent{
			ID:             row.ID,
			Date:           row.Date.Format("2006-01-02"),
			Label:          row.Title,
			Category:       row.Category,
			Description:    row.Description,
			AstroSignature: row.AstroSignature,
		})
	}
	return out, nil
}

// timelineWindowStats feeds the prediction fusion with aggregate window
// activity from the timeline engine.
type timelineWindowStats struct {
	timeline timelineapp.Service
}

func (s timelineWindowStats) WindowStats(ctx context.Context, start, end time.Time) (predictionports.WindowStats, error) {
	window := s.timeline.BuildWindow(ctx, start, end)
	stats := predictionports.WindowStats{EventCount: len(window)}
	for _, record := range window {
		stats.SignatureCount += len(record.AstroSignature)
	}
	return stats, nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}

func (a *APIApp) Run(ctx context.Context) error {
	if a.watcher != nil {
		go func() {
			if err := a.watcher.Run(ctx); err != nil && ctx.Err() == nil {
				a.logger.Error("events file watcher stopped",
					"event", "bootstrap_watch_stopped",
					"module", "internal/app/bootstrap",
					"layer", "platform",
					"error", err.Error(),
				)
			}
		}()
	}
	a.logger.Info("api app started",
		"event", "bootstrap_api_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
	)
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	err := w.bus.Subscribe(ctx, "timeline.pattern.discovered", "timeline-pattern-log-cg",
		func(_ context.Context, event events.Envelope) error {
			w.logger.Info("pattern discovered",
				"event", "worker_pattern_received",
				"module", "internal/app/bootstrap",
				"layer", "platform",
				"event_id", event.EventID,
				"entity_id", event.EntityID,
			)
			return nil
		})
	if err != nil {
		return err
	}

	ticker := time.NewTicker(w.scanInterval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"scan_interval", w.scanInterval.String(),
	)

	for {
		if err := w.scan.RunOnce(ctx); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}
