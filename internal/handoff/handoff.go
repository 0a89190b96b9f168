// Package handoff forwards finished orders and custom-order requests to the
// shop's messaging channel.
//
// The primary channel is a pre-filled WhatsApp deep link that the visitor's
// browser opens. Nothing confirms delivery: producing the link counts as
// success. A copy of every message can also be published to Kafka for the
// shop's own tooling. Publishing runs in the background and its failures
// never fail the hand-off.
package handoff

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/fjod/go_cart/storefront/internal/logger"
)

type Kind string

const (
	KindOrder       Kind = "order"
	KindCustomOrder Kind = "custom_order"
)

type Message struct {
	Kind      Kind      `json:"kind"`
	Reference string    `json:"reference"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Publisher receives a copy of each handed-off message.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Message) error { return nil }
func (NopPublisher) Close() error                           { return nil }

type Dispatcher struct {
	links     Links
	publisher Publisher

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

func NewDispatcher(links Links, publisher Publisher) *Dispatcher {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &Dispatcher{links: links, publisher: publisher}
}

// Handoff returns the deep link carrying msg. The copy is published in the
// background and never delays the link. After Close nothing is published.
func (d *Dispatcher) Handoff(ctx context.Context, msg Message) string {
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	link := d.links.WhatsApp(msg.Text)

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return link
	}
	d.wg.Add(1)
	go d.publish(context.WithoutCancel(ctx), msg)
	return link
}

func (d *Dispatcher) publish(ctx context.Context, msg Message) {
	defer d.wg.Done()
	if err := d.publisher.Publish(ctx, msg); err != nil {
		logger.FromContext(ctx).Warn("handoff publish failed",
			zap.String("kind", string(msg.Kind)),
			zap.String("reference", msg.Reference),
			zap.Error(err),
		)
	}
}

// Close waits for in-flight publishes and closes the publisher.
func (d *Dispatcher) Close() error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	d.wg.Wait()
	return d.publisher.Close()
}
