package bus

import (
	"errors"
	"testing"
)

func TestBasicPublishSubscribe(t *testing.T) {
	b := New()
	var got Event
	_, err := b.Subscribe("test.event", func(e Event) error {
		got = e
		return nil
	})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if err = b.Publish(NewEvent("test.event", "tester", 123)); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if got == nil || got.Data() != 123 || got.Source() != "tester" {
		t.Fatalf("handler not called with event: %#v", got)
	}
}

func TestWildcardReceivesEveryType(t *testing.T) {
	b := New()
	var types []string
	_, _ = b.Subscribe(Wildcard, func(e Event) error {
		types = append(types, e.Type())
		return nil
	})
	_ = b.Publish(NewEvent("a", "src", nil))
	_ = b.Publish(NewEvent("b", "src", nil))
	if len(types) != 2 || types[0] != "a" || types[1] != "b" {
		t.Fatalf("wildcard delivery: %v", types)
	}
	if n := b.Subscribers("a"); n != 1 {
		t.Fatalf("subscribers: %d", n)
	}
}

func TestHandlerErrorsAreJoined(t *testing.T) {
	b := New()
	first := errors.New("first")
	second := errors.New("second")
	calls := 0
	_, _ = b.Subscribe("x", func(e Event) error { calls++; return first })
	_, _ = b.Subscribe("x", func(e Event) error { calls++; return second })

	err := b.Publish(NewEvent("x", "src", nil))
	if !errors.Is(err, first) || !errors.Is(err, second) {
		t.Fatalf("expected joined error, got %v", err)
	}
	if calls != 2 {
		t.Fatalf("delivery stopped early: %d", calls)
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	b := New()
	count := 0
	sub, _ := b.Subscribe("x", func(e Event) error { count++; return nil })
	_ = b.Publish(NewEvent("x", "src", nil))
	if err := b.Unsubscribe(sub); err != nil {
		t.Fatalf("unsubscribe: %v", err)
	}
	_ = sub.Cancel()
	_ = b.Publish(NewEvent("x", "src", nil))
	if count != 1 {
		t.Fatalf("handler called after cancel: %d", count)
	}
	if sub.IsActive() {
		t.Fatal("subscription still active")
	}
	if b.Subscribers("x") != 0 {
		t.Fatal("subscription not removed")
	}
}

func TestSubscribeValidation(t *testing.T) {
	b := New()
	if _, err := b.Subscribe("", func(Event) error { return nil }); err == nil {
		t.Fatal("expected error for empty type")
	}
	if _, err := b.Subscribe("x", nil); err == nil {
		t.Fatal("expected error for nil handler")
	}
	if err := b.Unsubscribe(nil); err != nil {
		t.Fatalf("nil unsubscribe: %v", err)
	}
}
