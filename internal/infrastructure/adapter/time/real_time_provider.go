package time

import (
	"context"
	"sync"
	"time"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
)

// RealTimeProvider implements the TimeProvider interface with the system clock, in UTC
type RealTimeProvider struct{}

// NewRealTimeProvider creates a new real time provider
func NewRealTimeProvider() *RealTimeProvider {
	return &RealTimeProvider{}
}

// Now returns the current time in UTC
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

// Since returns the time elapsed since t
func (p *RealTimeProvider) Since(t time.Time) time.Duration {
	return time.Since(t)
}

// WithTimeout returns a context that will be canceled after the specified timeout
func (p *RealTimeProvider) WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}

// FixedTimeProvider is a clock that only moves when told to. Deadlines and
// trend windows evaluated against it are reproducible.
type FixedTimeProvider struct {
	mu  sync.RWMutex
	now time.Time
}

// NewFixedTimeProvider creates a clock stopped at now
func NewFixedTimeProvider(now time.Time) *FixedTimeProvider {
	return &FixedTimeProvider{now: now.UTC()}
}

// Now returns the fixed time
func (p *FixedTimeProvider) Now() time.Time {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.now
}

// Since returns the fixed time minus t
func (p *FixedTimeProvider) Since(t time.Time) time.Duration {
	return p.Now().Sub(t)
}

// WithTimeout behaves like context.WithTimeout; contexts use the real clock
func (p *FixedTimeProvider) WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}

// Set moves the clock to now
func (p *FixedTimeProvider) Set(now time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.now = now.UTC()
}

// Advance moves the clock forward by d
func (p *FixedTimeProvider) Advance(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.now = p.now.Add(d)
}

var (
	_ core.TimeProvider = (*RealTimeProvider)(nil)
	_ core.TimeProvider = (*FixedTimeProvider)(nil)
)
