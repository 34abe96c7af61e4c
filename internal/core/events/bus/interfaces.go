package bus

import "time"

// Wildcard subscribes a handler to every event type.
const Wildcard = "*"

// EventBus is a synchronous in-process pub/sub bus.
//
// Publish calls handlers in the caller goroutine, in subscription order.
// Handler errors are joined and returned from Publish; delivery continues
// past a failing handler.
type EventBus interface {
	Publish(event Event) error
	// Subscribe registers a handler for eventType, or for every type when
	// eventType is Wildcard.
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
	// Unsubscribe cancels the given Subscription. It is safe to call with nil.
	Unsubscribe(Subscription) error
	// Subscribers returns the number of active subscriptions for eventType,
	// wildcard subscriptions included.
	Subscribers(eventType string) int
}

// Event is an immutable message transported by the EventBus.
type Event interface {
	Type() string
	Source() string
	Timestamp() time.Time
	Data() any
}

type EventHandler func(event Event) error

// Subscription represents a registered handler bound to an event type.
type Subscription interface {
	ID() string
	EventType() string
	IsActive() bool
	// Cancel de-registers the handler from the bus. Multiple calls are safe.
	Cancel() error
}
