package messaging

import (
	"context"
	"log/slog"
	"sync"

	"senkron/internal/shared/events"
)

// subscriptionBuffer sizes each consumer channel. The only producer today
// is the periodic trigger scan, which publishes a handful of envelopes
// per tick, so a small buffer already absorbs a slow consumer.
const subscriptionBuffer = 16

// Bus fans analysis events out to in-process consumers. It keeps the
// broker vocabulary (topic, consumer group, envelope) so an external
// broker can replace it without touching module code.
type Bus struct {
	mu     sync.RWMutex
	topics map[string][]*subscription
	logger *slog.Logger
}

type subscription struct {
	group string
	ch    chan events.Envelope
}

func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		topics: make(map[string][]*subscription),
		logger: logger,
	}
}

// Publish delivers the envelope to every subscription on the topic. A
// consumer whose buffer is full loses the envelope; the scan reruns on
// the next tick, so dropping beats blocking the producer.
func (b *Bus) Publish(ctx context.Context, topic string, event events.Envelope) error {
	b.mu.RLock()
	subs := append([]*subscription(nil), b.topics[topic]...)
	b.mu.RUnlock()

	for _, sub := range subs {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case sub.ch <- event:
		default:
			b.logger.Warn("dropping event for lagging consumer",
				"event", "bus_publish_drop",
				"module", "internal/platform/messaging",
				"layer", "platform",
				"topic", topic,
				"consumer_group", sub.group,
				"event_id", event.EventID,
			)
		}
	}

	b.logger.Info("event published",
		"event", "bus_publish",
		"module", "internal/platform/messaging",
		"layer", "platform",
		"topic", topic,
		"event_id", event.EventID,
		"event_type", event.EventType,
		"consumers", len(subs),
	)
	return nil
}

// Subscribe registers a handler under a consumer group and drains it on
// its own goroutine until the context is cancelled. Handler errors are
// logged and the subscription stays alive.
func (b *Bus) Subscribe(
	ctx context.Context,
	topic string,
	consumerGroup string,
	handler func(context.Context, events.Envelope) error,
) error {
	sub := &subscription{
		group: consumerGroup,
		ch:    make(chan events.Envelope, subscriptionBuffer),
	}

	b.mu.Lock()
	b.topics[topic] = append(b.topics[topic], sub)
	b.mu.Unlock()

	go func() {
		defer b.unsubscribe(topic, sub)
		for {
			select {
			case <-ctx.Done():
				return
			case event := <-sub.ch:
				if err := handler(ctx, event); err != nil {
					b.logger.Error("consumer handler failed",
						"event", "bus_consume_failed",
						"module", "internal/platform/messaging",
						"layer", "platform",
						"topic", topic,
						"consumer_group", sub.group,
						"event_id", event.EventID,
						"error", err.Error(),
					)
				}
			}
		}
	}()
	return nil
}

func (b *Bus) unsubscribe(topic string, target *subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.topics[topic]
	kept := subs[:0]
	for _, sub := range subs {
		if sub != target {
			kept = append(kept, sub)
		}
	}
	b.topics[topic] = kept
}
