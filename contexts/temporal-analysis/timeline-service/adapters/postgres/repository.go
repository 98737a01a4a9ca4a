package postgresadapter

import (
	"context"
	"log/slog"
	"time"

	"senkron/contexts/temporal-analysis/timeline-service/ports"

	"gorm.io/gorm"
)

// Repository persists scan runs so the worker's discovery history
// survives restarts.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(&scanRunModel{})
}

func (r *Repository) SaveRun(ctx context.Context, run ports.ScanRun) error {
	row := scanRunModelFromPort(run)
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) ListRuns(ctx context.Context, limit int) ([]ports.ScanRun, error) {
	if limit <= 0 {
		limit = 50
	}
	var rows []scanRunModel
	if err := r.db.WithContext(ctx).
		Order("completed_at DESC").
		Limit(limit).
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	runs := make([]ports.ScanRun, 0, len(rows))
	for _, row := range rows {
		runs = append(runs, row.toPort())
	}
	return runs, nil
}

type scanRunModel struct {
	RunID        string    `gorm:"column:run_id;primaryKey"`
	WindowAStart time.Time `gorm:"column:window_a_start"`
	WindowAEnd   time.Time `gorm:"column:window_a_end"`
	WindowBStart time.Time `gorm:"column:window_b_start"`
	WindowBEnd   time.Time `gorm:"column:window_b_end"`
	PatternCount int       `gorm:"column:pattern_count"`
	TopScore     float64   `gorm:"column:top_score"`
	StartedAt    time.Time `gorm:"column:started_at"`
	CompletedAt  time.Time `gorm:"column:completed_at;index"`
}

func (scanRunModel) TableName() string {
	return "timeline_scan_runs"
}

func scanRunModelFromPort(run ports.ScanRun) scanRunModel {
	return scanRunModel{
		RunID:        run.RunID,
		WindowAStart: run.WindowAStart.UTC(),
		WindowAEnd:   run.WindowAEnd.UTC(),
		WindowBStart: run.WindowBStart.UTC(),
		WindowBEnd:   run.WindowBEnd.UTC(),
		PatternCount: run.PatternCount,
		TopScore:     run.TopScore,
		StartedAt:    run.StartedAt.UTC(),
		CompletedAt:  run.CompletedAt.UTC(),
	}
}

func (m scanRunModel) toPort() ports.ScanRun {
	return ports.ScanRun{
		RunID:        m.RunID,
		WindowAStart: m.WindowAStart.UTC(),
		WindowAEnd:   m.WindowAEnd.UTC(),
		WindowBStart: m.WindowBStart.UTC(),
		WindowBEnd:   m.WindowBEnd.UTC(),
		PatternCount: m.PatternCount,
		TopScore:     m.TopScore,
		StartedAt:    m.StartedAt.UTC(),
		CompletedAt:  m.CompletedAt.UTC(),
	}
}
