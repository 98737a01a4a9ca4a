package workers

import (
	"context"
	"fmt"
	"testing"
	"time"

	application "senkron/contexts/temporal-analysis/timeline-service/application"
	"senkron/contexts/temporal-analysis/timeline-service/domain/services"
	"senkron/contexts/temporal-analysis/timeline-service/ports"
)

type fakeSource struct {
	rows []ports.SourceEvent
}

func (f fakeSource) FetchAll(ctx context.Context) ([]ports.SourceEvent, error) {
	return f.rows, nil
}

type fakeRuns struct {
	saved []ports.ScanRun
}

func (f *fakeRuns) SaveRun(ctx context.Context, run ports.ScanRun) error {
	f.saved = append(f.saved, run)
	return nil
}

func (f *fakeRuns) ListRuns(ctx context.Context, limit int) ([]ports.ScanRun, error) {
	return f.saved, nil
}

type fakePublisher struct {
	published []ports.EventEnvelope
}

func (f *fakePublisher) Publish(ctx context.Context, topic string, event ports.EventEnvelope) error {
	if topic != "timeline.pattern.discovered" {
		return fmt.Errorf("unexpected topic %q", topic)
	}
	f.published = append(f.published, event)
	return nil
}

type fakeClock struct{ now time.Time }

func (f fakeClock) Now() time.Time { return f.now }

type fakeIDGen struct{ next int }

func (f *fakeIDGen) NewID(ctx context.Context) (string, error) {
	f.next++
	return fmt.Sprintf("id-%d", f.next), nil
}

type fakeObserver struct {
	calls      int
	discovered int
}

func (f *fakeObserver) ObserveScan(started time.Time, discovered int) {
	f.calls++
	f.discovered = discovered
}

func TestTriggerScanRunOnce(t *testing.T) {
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	source := fakeSource{rows: []ports.SourceEvent{
		// 50 days back lands in window A, 10 days back in window B.
		{ID: "a1", Date: "2024-01-11", Label: "Eclipse", Category: "macro", AstroSignature: "sun:10"},
		{ID: "b1", Date: "2024-02-20", Label: "Rally", Category: "macro", AstroSignature: "sun:12"},
	}}

	runs := &fakeRuns{}
	publisher := &fakePublisher{}
	observer := &fakeObserver{}
	scan := TriggerScan{
		Service: application.Service{
			Source:    source,
			Discovery: services.DefaultConfig(),
		},
		Runs:         runs,
		Publisher:    publisher,
		IDGen:        &fakeIDGen{},
		Clock:        fakeClock{now: now},
		Observer:     observer,
		LookbackDays: 60,
	}

	if err := scan.RunOnce(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(runs.saved) != 1 {
		t.Fatalf("expected 1 saved run, got %d", len(runs.saved))
	}
	run := runs.saved[0]
	if run.RunID != "id-1" {
		t.Fatalf("unexpected run id %q", run.RunID)
	}
	if run.PatternCount != 1 {
		t.Fatalf("expected 1 discovered pattern, got %d", run.PatternCount)
	}
	if run.TopScore <= 0 {
		t.Fatalf("expected a positive top score, got %f", run.TopScore)
	}
	if !run.WindowBEnd.Equal(now) {
		t.Fatalf("window B must end at the clock time, got %v", run.WindowBEnd)
	}

	if len(publisher.published) != 1 {
		t.Fatalf("expected 1 published pattern, got %d", len(publisher.published))
	}
	envelope := publisher.published[0]
	if envelope.EventID == run.RunID {
		t.Fatal("envelope must carry its own event id, not the run id")
	}
	if envelope.EntityType != "meta_pattern" {
		t.Fatalf("unexpected entity type %q", envelope.EntityType)
	}

	if observer.calls != 1 || observer.discovered != 1 {
		t.Fatalf("observer not notified as expected: calls=%d discovered=%d", observer.calls, observer.discovered)
	}
}

func TestTriggerScanPublishTopBound(t *testing.T) {
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	source := fakeSource{rows: []ports.SourceEvent{
		{ID: "a1", Date: "2024-01-11", Label: "A1", Category: "macro", AstroSignature: "sun:10"},
		{ID: "a2", Date: "2024-01-12", Label: "A2", Category: "macro", AstroSignature: "sun:11"},
		{ID: "b1", Date: "2024-02-20", Label: "B1", Category: "macro", AstroSignature: "sun:12"},
		{ID: "b2", Date: "2024-02-21", Label: "B2", Category: "macro", AstroSignature: "sun:13"},
	}}

	publisher := &fakePublisher{}
	scan := TriggerScan{
		Service: application.Service{
			Source:    source,
			Discovery: services.DefaultConfig(),
		},
		Publisher:    publisher,
		IDGen:        &fakeIDGen{},
		Clock:        fakeClock{now: now},
		LookbackDays: 60,
		PublishTop:   1,
	}

	if err := scan.RunOnce(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(publisher.published) != 1 {
		t.Fatalf("expected 1 published pattern with PublishTop=1, got %d", len(publisher.published))
	}
}

func TestTriggerScanNoDataStillRecordsRun(t *testing.T) {
	runs := &fakeRuns{}
	observer := &fakeObserver{}
	scan := TriggerScan{
		Service: application.Service{
			Source:    fakeSource{},
			Discovery: services.DefaultConfig(),
		},
		Runs:     runs,
		IDGen:    &fakeIDGen{},
		Clock:    fakeClock{now: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)},
		Observer: observer,
	}

	if err := scan.RunOnce(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runs.saved) != 1 {
		t.Fatalf("expected the empty scan to be recorded, got %d runs", len(runs.saved))
	}
	if runs.saved[0].PatternCount != 0 {
		t.Fatalf("expected 0 patterns, got %d", runs.saved[0].PatternCount)
	}
	if observer.discovered != 0 {
		t.Fatalf("expected observer to see 0 discovered, got %d", observer.discovered)
	}
}
