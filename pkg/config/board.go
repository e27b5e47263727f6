package config

import (
	"os"
	"strings"
	"time"
)

// Board sync interval bounds.
const (
	MinSyncInterval     = 10 * time.Second
	MaxSyncInterval     = 600 * time.Second
	DefaultSyncInterval = 60 * time.Second
)

// BoardConfig configures the external board synchronizer.
type BoardConfig struct {
	// APIToken authenticates against the board API. Empty disables all
	// board traffic.
	APIToken string

	// DatabaseIDs are the board databases polled for inbound changes.
	// Empty disables inbound sync.
	DatabaseIDs []string

	// SyncInterval is the inbound poll period, clamped to
	// [MinSyncInterval, MaxSyncInterval].
	SyncInterval time.Duration

	// RequestsPerSecond is the hard board API rate limit shared by the
	// inbound and outbound loops.
	RequestsPerSecond float64

	// FlushInterval is how often the outbound pusher drains its debounce
	// buffer.
	FlushInterval time.Duration

	// MaxPushRetries bounds outbound delivery attempts per status change
	// before the pusher gives up and logs.
	MaxPushRetries int
}

// DefaultBoardConfig returns the built-in board defaults.
func DefaultBoardConfig() *BoardConfig {
	return &BoardConfig{
		SyncInterval:      DefaultSyncInterval,
		RequestsPerSecond: 3,
		FlushInterval:     time.Second,
		MaxPushRetries:    5,
	}
}

// ClampSyncInterval bounds d to the allowed poll range.
func ClampSyncInterval(d time.Duration) time.Duration {
	if d < MinSyncInterval {
		return MinSyncInterval
	}
	if d > MaxSyncInterval {
		return MaxSyncInterval
	}
	return d
}

func loadBoardConfig() *BoardConfig {
	cfg := DefaultBoardConfig()
	cfg.APIToken = os.Getenv("BOARD_API_TOKEN")
	if raw := os.Getenv("BOARD_DATABASE_IDS"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				cfg.DatabaseIDs = append(cfg.DatabaseIDs, id)
			}
		}
	}
	cfg.SyncInterval = ClampSyncInterval(getDuration("BOARD_SYNC_INTERVAL_SECONDS", DefaultSyncInterval))
	return cfg
}
