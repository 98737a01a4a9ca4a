package entities

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

const (
	// DefaultCategory is assigned when a row carries no category.
	DefaultCategory = "macro"

	// Weight bounds; out-of-range weights are clamped, not rejected.
	MinWeight = 0.0
	MaxWeight = 5.0

	DefaultWeight = 1.0
)

// CatalogEvent is one historical event in the catalog. The astro
// signature stays in its textual "body:degrees,..." form here; the
// analysis side parses it when building windows.
type CatalogEvent struct {
	ID             string
	Date           time.Time
	Title          string
	Category       string
	Description    string
	AstroSignature string
	Weight         float64
}

// NewCatalogEvent validates and normalizes one event: the title is
// required, a missing id is derived from title and date, a missing
// category falls back to DefaultCategory, and the weight is clamped to
// [MinWeight, MaxWeight].
func NewCatalogEvent(
	id string,
	date time.Time,
	title string,
	category string,
	description string,
	astroSignature string,
	weight float64,
) (CatalogEvent, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return CatalogEvent{}, fmt.Errorf("catalog event requires a title")
	}
	if date.IsZero() {
		return CatalogEvent{}, fmt.Errorf("catalog event requires a date")
	}

	id = strings.TrimSpace(id)
	if id == "" {
		id = DeriveEventID(title, date)
	}

	category = strings.TrimSpace(category)
	if category == "" {
		category = DefaultCategory
	}

	switch {
	case weight < MinWeight:
		weight = MinWeight
	case weight > MaxWeight:
		weight = MaxWeight
	}

	return CatalogEvent{
		ID:             id,
		Date:           date,
		Title:          title,
		Category:       category,
		Description:    strings.TrimSpace(description),
		AstroSignature: strings.TrimSpace(astroSignature),
		Weight:         weight,
	}, nil
}

// DeriveEventID builds a stable 8-hex-character id from the title and
// date, so re-imports of the same row dedupe instead of duplicating.
func DeriveEventID(title string, date time.Time) string {
	sum := md5.Sum([]byte(fmt.Sprintf("%s_%s", title, date.Format("2006-01-02"))))
	return hex.EncodeToString(sum[:])[:8]
}
