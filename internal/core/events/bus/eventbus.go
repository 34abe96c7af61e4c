package bus

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// simpleEvent is a basic implementation of Event.
type simpleEvent struct {
	typeStr string
	source  string
	ts      time.Time
	data    any
}

func (e simpleEvent) Type() string         { return e.typeStr }
func (e simpleEvent) Source() string       { return e.source }
func (e simpleEvent) Timestamp() time.Time { return e.ts }
func (e simpleEvent) Data() any            { return e.data }

// NewEvent creates a simple Event implementation.
func NewEvent(typ, src string, data any) Event {
	return simpleEvent{typeStr: typ, source: src, ts: time.Now(), data: data}
}

type subscription struct {
	id        string
	eventType string
	handler   EventHandler
	active    bool
	cancel    func()
}

func (s *subscription) ID() string        { return s.id }
func (s *subscription) EventType() string { return s.eventType }
func (s *subscription) IsActive() bool    { return s.active }
func (s *subscription) Cancel() error {
	if s.cancel != nil {
		s.cancel()
	}
	s.active = false
	return nil
}

type inMemoryBus struct {
	mu sync.RWMutex
	// eventType -> subscriptions in registration order
	handlers map[string][]*subscription
}

// New creates a new EventBus instance.
func New() EventBus {
	return &inMemoryBus{
		handlers: make(map[string][]*subscription),
	}
}

func (b *inMemoryBus) Subscribe(eventType string, handler EventHandler) (Subscription, error) {
	if eventType == "" {
		return nil, errors.New("event type is required")
	}
	if handler == nil {
		return nil, errors.New("handler is required")
	}

	s := &subscription{id: uuid.NewString(), eventType: eventType, handler: handler, active: true}
	s.cancel = func() { b.remove(eventType, s.id) }

	b.mu.Lock()
	b.handlers[eventType] = append(b.handlers[eventType], s)
	b.mu.Unlock()
	return s, nil
}

func (b *inMemoryBus) Unsubscribe(s Subscription) error {
	if s == nil {
		return nil
	}
	return s.Cancel()
}

func (b *inMemoryBus) remove(eventType, id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	subs := b.handlers[eventType]
	for i, s := range subs {
		if s.id == id {
			b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(b.handlers[eventType]) == 0 {
		delete(b.handlers, eventType)
	}
}

func (b *inMemoryBus) Subscribers(eventType string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	n := len(b.handlers[Wildcard])
	if eventType != Wildcard {
		n += len(b.handlers[eventType])
	}
	return n
}

func (b *inMemoryBus) Publish(event Event) error {
	if event == nil {
		return errors.New("nil event")
	}

	// snapshot so handlers may subscribe or cancel while being delivered
	b.mu.RLock()
	subs := make([]*subscription, 0, len(b.handlers[event.Type()])+len(b.handlers[Wildcard]))
	subs = append(subs, b.handlers[event.Type()]...)
	if event.Type() != Wildcard {
		subs = append(subs, b.handlers[Wildcard]...)
	}
	b.mu.RUnlock()

	var errs []error
	for _, s := range subs {
		if err := s.handler(event); err != nil {
			errs = append(errs, fmt.Errorf("subscription %s: %w", s.id, err))
		}
	}
	return errors.Join(errs...)
}
