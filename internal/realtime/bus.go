package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

const (
	CollectionMatches  = "matches"
	CollectionMessages = "messages"

	EventInsert = "insert"
)

// Event is a change notification pushed to subscribers. Only insert events
// are delivered; subscribers merge them idempotently by payload id.
type Event struct {
	Collection string          `json:"collection"`
	Type       string          `json:"type"`
	Payload    json.RawMessage `json:"payload"`
}

// Handler receives events; it must be safe to call from the subscription's
// own goroutine.
type Handler func(Event)

// Filter decides which events reach the handler. A nil filter passes all.
type Filter func(Event) bool

// Bus fans change events out over redis pub/sub, one channel per collection.
type Bus struct {
	rdb *redis.Client
}

func NewBus(rdb *redis.Client) *Bus {
	return &Bus{rdb: rdb}
}

func channelFor(collection string) string {
	return "events:" + collection
}

// Publish emits an insert event for the given collection. A nil bus (redis
// not configured) drops events silently so core flows keep working.
func (b *Bus) Publish(ctx context.Context, collection string, payload interface{}) error {
	if b == nil || b.rdb == nil {
		return nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}
	event := Event{Collection: collection, Type: EventInsert, Payload: raw}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	return b.rdb.Publish(ctx, channelFor(collection), data).Err()
}

// Subscription is a cancellable handle to a collection's event stream.
type Subscription struct {
	pubsub *redis.PubSub
	done   chan struct{}
}

// Subscribe registers a handler for a collection's insert events and starts
// delivering them until Close is called or the context is cancelled.
func (b *Bus) Subscribe(ctx context.Context, collection string, filter Filter, handler Handler) (*Subscription, error) {
	if b == nil || b.rdb == nil {
		return nil, fmt.Errorf("realtime bus is not configured")
	}
	pubsub := b.rdb.Subscribe(ctx, channelFor(collection))
	// Force the subscription to be established before returning.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", collection, err)
	}

	sub := &Subscription{pubsub: pubsub, done: make(chan struct{})}
	go func() {
		defer close(sub.done)
		for msg := range pubsub.Channel() {
			var event Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Printf("realtime: dropping malformed event on %s: %v", msg.Channel, err)
				continue
			}
			if filter != nil && !filter(event) {
				continue
			}
			handler(event)
		}
	}()
	return sub, nil
}

// Close cancels the subscription and waits for the delivery goroutine to
// drain.
func (s *Subscription) Close() error {
	err := s.pubsub.Close()
	<-s.done
	return err
}
