package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// PoolStats is the connection pool snapshot attached to a health probe.
type PoolStats struct {
	Open      int   `json:"open"`
	InUse     int   `json:"in_use"`
	Idle      int   `json:"idle"`
	WaitCount int64 `json:"wait_count"`
	MaxOpen   int   `json:"max_open"`
}

// HealthStatus is the result of one database health probe.
type HealthStatus struct {
	Reachable bool      `json:"reachable"`
	PingMs    int64     `json:"ping_ms"`
	Pool      PoolStats `json:"pool"`
}

// Health pings the database and snapshots the pool. The returned status
// is non-nil even on failure so callers can report the ping latency.
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	start := time.Now()
	if err := db.PingContext(ctx); err != nil {
		return &HealthStatus{PingMs: time.Since(start).Milliseconds()},
			fmt.Errorf("database ping: %w", err)
	}

	s := db.Stats()
	return &HealthStatus{
		Reachable: true,
		PingMs:    time.Since(start).Milliseconds(),
		Pool: PoolStats{
			Open:      s.OpenConnections,
			InUse:     s.InUse,
			Idle:      s.Idle,
			WaitCount: s.WaitCount,
			MaxOpen:   s.MaxOpenConnections,
		},
	}, nil
}
