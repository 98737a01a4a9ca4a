package application

import (
	"context"
	"errors"
	"testing"

	"senkron/contexts/temporal-analysis/event-catalog-service/adapters/memory"
	domainerrors "senkron/contexts/temporal-analysis/event-catalog-service/domain/errors"
	"senkron/contexts/temporal-analysis/event-catalog-service/ports"
)

type fakeValidator struct{ err error }

func (f fakeValidator) Validate(payload []byte) error { return f.err }

type fakeObserver struct{ size int }

func (f *fakeObserver) SetCatalogSize(total int) { f.size = total }

func TestImportRowsNormalizesAndStores(t *testing.T) {
	store := memory.NewStore()
	observer := &fakeObserver{}
	svc := Service{Repo: store, Observer: observer}

	report, err := svc.ImportRows(context.Background(), []ports.RawEvent{
		{Date: "2024-01-15", Title: "Solar eclipse", AstroSignature: "sun:295.5", Weight: "2.5"},
		{Date: "2024-02-01", Title: "Market crash", Category: "finance", Weight: "9.0"},
		{Date: "2024-03-01", Title: "No weight row"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Imported != 3 || report.Skipped != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if report.CatalogTotal != 3 {
		t.Fatalf("expected catalog total 3, got %d", report.CatalogTotal)
	}
	if observer.size != 3 {
		t.Fatalf("observer not updated, got %d", observer.size)
	}

	events, err := store.List(context.Background(), ports.ListFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if events[0].Category != "macro" {
		t.Fatalf("expected default category, got %q", events[0].Category)
	}
	if len(events[0].ID) != 8 {
		t.Fatalf("expected derived id, got %q", events[0].ID)
	}
	if events[1].Weight != 5.0 {
		t.Fatalf("expected weight clamped to 5.0, got %f", events[1].Weight)
	}
	if events[2].Weight != 1.0 {
		t.Fatalf("expected default weight 1.0, got %f", events[2].Weight)
	}
}

func TestImportRowsSkipsBadRowsWithReasons(t *testing.T) {
	svc := Service{Repo: memory.NewStore()}

	report, err := svc.ImportRows(context.Background(), []ports.RawEvent{
		{Date: "2024-01-15", Title: ""},
		{Date: "not-a-date", Title: "Bad date"},
		{Date: "2024-01-16", Title: "Good row"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Imported != 1 || report.Skipped != 2 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if report.SkipReasons["missing_title"] != 1 ||
		report.SkipReasons["bad_date"] != 1 {
		t.Fatalf("unexpected skip reasons: %v", report.SkipReasons)
	}
}

func TestImportRowsKeepsRowWithUnreadableWeight(t *testing.T) {
	store := memory.NewStore()
	svc := Service{Repo: store}

	report, err := svc.ImportRows(context.Background(), []ports.RawEvent{
		{Date: "2024-01-15", Title: "Sloppy weight", Weight: "heavy"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Imported != 1 || report.Skipped != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}

	events, err := store.List(context.Background(), ports.ListFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 || events[0].Weight != 1.0 {
		t.Fatalf("expected one row with the default weight, got %+v", events)
	}
}

func TestImportRowsReimportIsIdempotent(t *testing.T) {
	store := memory.NewStore()
	svc := Service{Repo: store}
	rows := []ports.RawEvent{
		{Date: "2024-01-15", Title: "Solar eclipse"},
	}

	if _, err := svc.ImportRows(context.Background(), rows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	report, err := svc.ImportRows(context.Background(), rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.CatalogTotal != 1 {
		t.Fatalf("reimport must dedupe on derived id, got total %d", report.CatalogTotal)
	}
}

func TestImportBatchRejectsInvalidPayload(t *testing.T) {
	svc := Service{
		Repo:      memory.NewStore(),
		Validator: fakeValidator{err: errors.New("missing events")},
	}

	_, err := svc.ImportBatch(context.Background(), []byte(`{}`))
	if !errors.Is(err, domainerrors.ErrInvalidBatch) {
		t.Fatalf("expected ErrInvalidBatch, got %v", err)
	}
}

func TestImportBatchAcceptsValidPayload(t *testing.T) {
	svc := Service{Repo: memory.NewStore(), Validator: fakeValidator{}}

	payload := []byte(`{"events":[{"date":"2024-01-15","title":"Solar eclipse","weight":2.5}]}`)
	report, err := svc.ImportBatch(context.Background(), payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Imported != 1 {
		t.Fatalf("expected 1 imported, got %d", report.Imported)
	}
}

func TestListEventsRejectsBadFilter(t *testing.T) {
	svc := Service{Repo: memory.NewStore()}

	_, err := svc.ListEvents(context.Background(), ports.ListFilter{MinWeight: -1})
	if !errors.Is(err, domainerrors.ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter, got %v", err)
	}

	_, err = svc.ListEvents(context.Background(), ports.ListFilter{Limit: -5})
	if !errors.Is(err, domainerrors.ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter, got %v", err)
	}
}

func TestListEventsFilters(t *testing.T) {
	store := memory.NewStore()
	svc := Service{Repo: store}

	_, err := svc.ImportRows(context.Background(), []ports.RawEvent{
		{Date: "2024-01-15", Title: "A", Category: "macro", Weight: "1"},
		{Date: "2024-02-15", Title: "B", Category: "finance", Weight: "3"},
		{Date: "2024-03-15", Title: "C", Category: "finance", Weight: "0.5"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	events, err := svc.ListEvents(context.Background(), ports.ListFilter{Category: "finance", MinWeight: 1.0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 || events[0].Title != "B" {
		t.Fatalf("unexpected filter result: %+v", events)
	}
}
