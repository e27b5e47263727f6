package config

import "time"

// QueueConfig controls how tasks are polled, claimed, and released.
type QueueConfig struct {
	// WorkerCount is the number of claim loops in this process. They share
	// one governor, so the process-wide stage caps still hold.
	WorkerCount int

	// PollInterval is the base interval for checking claimable tasks.
	PollInterval time.Duration

	// PollIntervalJitter randomizes the poll: PollInterval ± jitter.
	PollIntervalJitter time.Duration

	// HeartbeatInterval is how often a claim's liveness marker is updated.
	HeartbeatInterval time.Duration

	// OrphanDetectionInterval is how often to scan for dead workers' claims.
	OrphanDetectionInterval time.Duration

	// OrphanThreshold is how long a claim may go without a heartbeat
	// before it is released back to the queue.
	OrphanThreshold time.Duration

	// GracefulShutdownTimeout bounds the wait for in-flight sub-items on
	// SIGTERM.
	GracefulShutdownTimeout time.Duration

	// ClaimBatchSize is how many locked candidates the claim query
	// examines per poll when applying fairness and admission filters.
	ClaimBatchSize int
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             4,
		PollInterval:            2 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		HeartbeatInterval:       15 * time.Second,
		OrphanDetectionInterval: time.Minute,
		OrphanThreshold:         2 * time.Minute,
		GracefulShutdownTimeout: 15 * time.Minute,
		ClaimBatchSize:          16,
	}
}

func loadQueueConfig() *QueueConfig {
	d := DefaultQueueConfig()
	return &QueueConfig{
		WorkerCount:             getInt("WORKER_COUNT", d.WorkerCount),
		PollInterval:            getDuration("POLL_INTERVAL", d.PollInterval),
		PollIntervalJitter:      getDuration("POLL_INTERVAL_JITTER", d.PollIntervalJitter),
		HeartbeatInterval:       getDuration("HEARTBEAT_INTERVAL", d.HeartbeatInterval),
		OrphanDetectionInterval: getDuration("ORPHAN_DETECTION_INTERVAL", d.OrphanDetectionInterval),
		OrphanThreshold:         getDuration("ORPHAN_THRESHOLD", d.OrphanThreshold),
		GracefulShutdownTimeout: getDuration("GRACEFUL_SHUTDOWN_TIMEOUT", d.GracefulShutdownTimeout),
		ClaimBatchSize:          getInt("CLAIM_BATCH_SIZE", d.ClaimBatchSize),
	}
}
