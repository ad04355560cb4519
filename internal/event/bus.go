// Package event fans lifecycle events out to in-process subscribers.
package event

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/heartmarshall/planboard-backend/internal/domain"
)

// Bus delivers every published event to each matching subscriber. Publish
// never blocks: a subscriber whose buffer is full misses the event.
type Bus struct {
	mu      sync.RWMutex
	subs    map[uint64]*Subscription
	nextID  uint64
	buffer  int
	dropped atomic.Uint64
	log     *slog.Logger
}

// NewBus creates a bus whose subscribers buffer up to buffer events.
func NewBus(log *slog.Logger, buffer int) *Bus {
	if buffer <= 0 {
		buffer = 1
	}
	return &Bus{
		subs:   make(map[uint64]*Subscription),
		buffer: buffer,
		log:    log.With("component", "event_bus"),
	}
}

// Subscription receives events on C until Close is called.
type Subscription struct {
	C <-chan domain.Event

	id    uint64
	kinds []domain.Kind
	ch    chan domain.Event
	bus   *Bus
	once  sync.Once
}

// Subscribe registers a subscriber for the given kinds, or for every kind
// when none are given.
func (b *Bus) Subscribe(kinds ...domain.Kind) *Subscription {
	ch := make(chan domain.Event, b.buffer)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	s := &Subscription{C: ch, id: b.nextID, kinds: kinds, ch: ch, bus: b}
	b.subs[s.id] = s
	return s
}

// Close unregisters the subscription and closes C. It is safe to call
// more than once.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.bus.mu.Lock()
		delete(s.bus.subs, s.id)
		s.bus.mu.Unlock()
		close(s.ch)
	})
}

func (s *Subscription) wants(kind domain.Kind) bool {
	return len(s.kinds) == 0 || slices.Contains(s.kinds, kind)
}

// Publish hands ev to every interested subscriber.
func (b *Bus) Publish(ctx context.Context, ev domain.Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, s := range b.subs {
		if !s.wants(ev.Kind) {
			continue
		}
		select {
		case s.ch <- ev:
		default:
			b.dropped.Add(1)
			b.log.WarnContext(ctx, "event dropped for slow subscriber",
				slog.Uint64("subscriber", s.id),
				slog.String("kind", ev.Kind.String()),
				slog.String("type", string(ev.Type)),
			)
		}
	}
}

// Subscribers returns the number of open subscriptions.
func (b *Bus) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Dropped returns the number of events lost to full buffers.
func (b *Bus) Dropped() uint64 { return b.dropped.Load() }
