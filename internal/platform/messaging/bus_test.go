package messaging

import (
	"context"
	"testing"
	"time"

	"senkron/internal/shared/events"
)

func TestBusDeliversToSubscriber(t *testing.T) {
	bus := NewBus(nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan events.Envelope, 1)
	err := bus.Subscribe(ctx, "timeline.pattern.discovered", "test-cg",
		func(_ context.Context, event events.Envelope) error {
			received <- event
			return nil
		})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	envelope := events.Envelope{EventID: "e1", EventType: "timeline.pattern.discovered"}
	if err := bus.Publish(ctx, "timeline.pattern.discovered", envelope); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case got := <-received:
		if got.EventID != "e1" {
			t.Fatalf("unexpected event id %q", got.EventID)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for delivery")
	}
}

func TestBusPublishWithoutSubscribersIsNoop(t *testing.T) {
	bus := NewBus(nil)

	err := bus.Publish(context.Background(), "timeline.pattern.discovered", events.Envelope{EventID: "e1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBusTopicsAreIsolated(t *testing.T) {
	bus := NewBus(nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan events.Envelope, 1)
	err := bus.Subscribe(ctx, "timeline.pattern.discovered", "test-cg",
		func(_ context.Context, event events.Envelope) error {
			received <- event
			return nil
		})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := bus.Publish(ctx, "some.other.topic", events.Envelope{EventID: "e1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case got := <-received:
		t.Fatalf("unexpected delivery across topics: %+v", got)
	case <-time.After(50 * time.Millisecond):
	}
}
