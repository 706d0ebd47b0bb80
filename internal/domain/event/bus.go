package event

import (
	"context"
	"fmt"
	"sync"
)

// Bus is an in-process, synchronous event bus.
// Handlers run in subscription order on the publishing goroutine; the first
// handler error stops delivery and is returned to the publisher.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

// NewBus creates an empty event bus
func NewBus() *Bus {
	return &Bus{handlers: make(map[string][]Handler)}
}

// Subscribe registers handler for events named name
func (b *Bus) Subscribe(name string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[name] = append(b.handlers[name], handler)
}

// Publish delivers evt to every handler subscribed to its name
func (b *Bus) Publish(ctx context.Context, evt Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[evt.EventName()]...)
	b.mu.RUnlock()

	for _, h := range handlers {
		if err := h(ctx, evt); err != nil {
			return fmt.Errorf("handling %s: %w", evt.EventName(), err)
		}
	}
	return nil
}
