package core

import (
	"context"
	"time"
)

// TimeProvider abstracts the clock so that goal deadlines, trend windows and
// timestamps can be evaluated against a fixed time in tests.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
