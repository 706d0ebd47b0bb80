package database

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
)

// poolPressureRatio is the share of max open connections in use above which
// the pool counts as under pressure
const poolPressureRatio = 0.8

// ConnectionPoolMetrics is a snapshot of sql.DB pool statistics
type ConnectionPoolMetrics struct {
	OpenConnections    int           `json:"openConnections"`
	IdleConnections    int           `json:"idleConnections"`
	MaxOpenConnections int           `json:"maxOpenConnections"`
	InUse              int           `json:"inUse"`
	WaitCount          int64         `json:"waitCount"`
	WaitDuration       time.Duration `json:"waitDuration"`
	SampledAt          time.Time     `json:"sampledAt"`
}

// Utilization is the share of the pool limit currently in use, or 0 when the
// pool is unbounded
func (p ConnectionPoolMetrics) Utilization() float64 {
	if p.MaxOpenConnections <= 0 {
		return 0
	}
	return float64(p.InUse) / float64(p.MaxOpenConnections)
}

// UnderPressure reports whether most of a multi-connection pool is busy.
// A single-connection pool (in-memory SQLite) is always fully used while
// serving a request and never counts.
func (p ConnectionPoolMetrics) UnderPressure() bool {
	return p.MaxOpenConnections > 1 && p.Utilization() > poolPressureRatio
}

func newPoolMetrics(stats sql.DBStats, at time.Time) ConnectionPoolMetrics {
	return ConnectionPoolMetrics{
		OpenConnections:    stats.OpenConnections,
		IdleConnections:    stats.Idle,
		MaxOpenConnections: stats.MaxOpenConnections,
		InUse:              stats.InUse,
		WaitCount:          stats.WaitCount,
		WaitDuration:       stats.WaitDuration,
		SampledAt:          at,
	}
}

// ConnectionPoolMonitor samples the pool in the background for the health
// endpoint and logs when the pool enters or leaves pressure
type ConnectionPoolMonitor struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider

	mu            sync.RWMutex
	latest        ConnectionPoolMetrics
	underPressure bool
	stopOnce      sync.Once
	stop          chan struct{}
}

// NewConnectionPoolMonitor creates a new connection pool monitor
func NewConnectionPoolMonitor(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *ConnectionPoolMonitor {
	return &ConnectionPoolMonitor{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		stop:         make(chan struct{}),
	}
}

// Start takes a first sample and then samples every interval until Stop
func (m *ConnectionPoolMonitor) Start(interval time.Duration) error {
	if err := m.sample(); err != nil {
		return err
	}

	go m.loop(interval)
	return nil
}

func (m *ConnectionPoolMonitor) loop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			if err := m.sample(); err != nil {
				m.logger.Error("Failed to sample connection pool", map[string]any{
					"error": err.Error(),
				})
			}
		}
	}
}

// Stop ends background sampling. It is safe to call more than once.
func (m *ConnectionPoolMonitor) Stop() {
	m.stopOnce.Do(func() {
		close(m.stop)
	})
}

// GetMetrics returns the most recent sample
func (m *ConnectionPoolMonitor) GetMetrics() ConnectionPoolMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.latest
}

func (m *ConnectionPoolMonitor) sample() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	metrics := newPoolMetrics(sqlDB.Stats(), m.timeProvider.Now())
	pressure := metrics.UnderPressure()

	m.mu.Lock()
	m.latest = metrics
	changed := pressure != m.underPressure
	m.underPressure = pressure
	m.mu.Unlock()

	if !changed {
		return nil
	}

	fields := map[string]any{
		"in_use":      metrics.InUse,
		"max_open":    metrics.MaxOpenConnections,
		"idle":        metrics.IdleConnections,
		"wait_count":  metrics.WaitCount,
		"wait_time":   metrics.WaitDuration.String(),
		"utilization": metrics.Utilization(),
	}
	if pressure {
		m.logger.Warn("Database connection pool nearly exhausted", fields)
	} else {
		m.logger.Info("Database connection pool recovered", fields)
	}
	return nil
}
