package event

import (
	"context"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/event"
)

// Publisher delivers domain events to their subscribers.
// Delivery is synchronous: Publish returns once every handler has run,
// and handlers receive the caller's context (including any open transaction).
type Publisher interface {
	Publish(ctx context.Context, evt event.Event) error
}

// Subscriber registers handlers for a named event
type Subscriber interface {
	Subscribe(name string, handler event.Handler)
}
