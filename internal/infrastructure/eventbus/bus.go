// Package eventbus is an in-process publish/subscribe channel scoped to one
// UI session. It replaces cross-component notification through globals.
package eventbus

import (
	"sync"
	"time"
)

type Topic string

const (
	TopicClaimSelected      Topic = "claim.selected"
	TopicClaimLoaded        Topic = "claim.loaded"
	TopicSelectionDiscarded Topic = "selection.discarded"
	TopicEstimateSaved      Topic = "estimate.saved"
	TopicShipmentReceived   Topic = "shipment.received"
)

// Event is what subscribers receive.
type Event struct {
	Topic   Topic     `json:"topic"`
	ClaimID string    `json:"claim_id,omitempty"`
	Payload any       `json:"payload,omitempty"`
	At      time.Time `json:"at"`
}

const defaultBuffer = 32

type subscriber struct {
	ch     chan Event
	topics map[Topic]struct{}
}

// Bus fans events out to subscribers. Publish never blocks: a subscriber whose
// buffer is full misses the event.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]*subscriber
	closed bool
}

func New() *Bus {
	return &Bus{subs: map[int]*subscriber{}}
}

// Subscribe returns a channel of events for the given topics (all topics when
// none are given) and a function that unsubscribes and closes the channel.
func (b *Bus) Subscribe(topics ...Topic) (<-chan Event, func()) {
	s := &subscriber{ch: make(chan Event, defaultBuffer)}
	if len(topics) > 0 {
		s.topics = make(map[Topic]struct{}, len(topics))
		for _, t := range topics {
			s.topics[t] = struct{}{}
		}
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(s.ch)
		return s.ch, func() {}
	}
	id := b.nextID
	b.nextID++
	b.subs[id] = s
	b.mu.Unlock()

	var once sync.Once
	return s.ch, func() {
		once.Do(func() {
			b.mu.Lock()
			if _, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(s.ch)
			}
			b.mu.Unlock()
		})
	}
}

// Publish delivers e to every matching subscriber. It reports how many received it.
func (b *Bus) Publish(e Event) int {
	if e.At.IsZero() {
		e.At = time.Now().UTC()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return 0
	}

	delivered := 0
	for _, s := range b.subs {
		if s.topics != nil {
			if _, ok := s.topics[e.Topic]; !ok {
				continue
			}
		}
		select {
		case s.ch <- e:
			delivered++
		default:
		}
	}
	return delivered
}

func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Close drops all subscribers. Later publishes are no-ops.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for id, s := range b.subs {
		close(s.ch)
		delete(b.subs, id)
	}
}
