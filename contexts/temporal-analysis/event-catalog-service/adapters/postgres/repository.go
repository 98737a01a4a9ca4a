package postgresadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"senkron/contexts/temporal-analysis/event-catalog-service/domain/entities"
	"senkron/contexts/temporal-analysis/event-catalog-service/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

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

// Migrate creates the catalog table when it does not exist yet.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(&catalogEventModel{})
}

func (r *Repository) UpsertBatch(ctx context.Context, events []entities.CatalogEvent) error {
	if len(events) == 0 {
		return nil
	}
	rows := make([]catalogEventModel, 0, len(events))
	for _, event := range events {
		rows = append(rows, catalogEventModelFromEntity(event))
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_id"}},
			UpdateAll: true,
		}).
		Create(&rows).
		Error
}

func (r *Repository) List(ctx context.Context, filter ports.ListFilter) ([]entities.CatalogEvent, error) {
	tx := r.db.WithContext(ctx).Model(&catalogEventModel{})
	if strings.TrimSpace(filter.Category) != "" {
		tx = tx.Where("category = ?", strings.TrimSpace(filter.Category))
	}
	if filter.MinWeight > 0 {
		tx = tx.Where("weight >= ?", filter.MinWeight)
	}
	if !filter.From.IsZero() {
		tx = tx.Where("event_date >= ?", filter.From.UTC())
	}
	if !filter.To.IsZero() {
		tx = tx.Where("event_date <= ?", filter.To.UTC())
	}
	if filter.Limit > 0 {
		tx = tx.Limit(filter.Limit)
	}

	var rows []catalogEventModel
	if err := tx.Order("event_date ASC, event_id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]entities.CatalogEvent, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&catalogEventModel{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return int(total), nil
}

type catalogEventModel struct {
	EventID        string    `gorm:"column:event_id;primaryKey"`
	EventDate      time.Time `gorm:"column:event_date;index"`
	Title          string    `gorm:"column:title"`
	Category       string    `gorm:"column:category;index"`
	Description    string    `gorm:"column:description"`
	AstroSignature string    `gorm:"column:astro_signature"`
	Weight         float64   `gorm:"column:weight"`
}

func (catalogEventModel) TableName() string {
	return "catalog_events"
}

func catalogEventModelFromEntity(item entities.CatalogEvent) catalogEventModel {
	return catalogEventModel{
		EventID:        strings.TrimSpace(item.ID),
		EventDate:      item.Date.UTC(),
		Title:          strings.TrimSpace(item.Title),
		Category:       strings.TrimSpace(item.Category),
		Description:    strings.TrimSpace(item.Description),
		AstroSignature: strings.TrimSpace(item.AstroSignature),
		Weight:         item.Weight,
	}
}

func (m catalogEventModel) toEntity() entities.CatalogEvent {
	return entities.CatalogEvent{
		ID:             m.EventID,
		Date:           m.EventDate.UTC(),
		Title:          m.Title,
		Category:       m.Category,
		Description:    m.Description,
		AstroSignature: m.AstroSignature,
		Weight:         m.Weight,
	}
}
