package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Governor.MaxConcurrentAssetGen)
	assert.Equal(t, 3, cfg.Governor.MaxConcurrentVideoGen)
	assert.Equal(t, 6, cfg.Governor.MaxConcurrentAudioGen)
	assert.Equal(t, DefaultSyncInterval, cfg.Board.SyncInterval)
	assert.Equal(t, float64(3), cfg.Board.RequestsPerSecond)
	assert.Equal(t, 5, cfg.Stages.AttemptCap)
}

func TestGovernorCapsFromEnv(t *testing.T) {
	t.Setenv("MAX_CONCURRENT_ASSET_GEN", "20")
	t.Setenv("MAX_CONCURRENT_VIDEO_GEN", "2")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Governor.MaxConcurrentAssetGen)
	assert.Equal(t, 2, cfg.Governor.MaxConcurrentVideoGen)
	assert.Equal(t, 6, cfg.Governor.MaxConcurrentAudioGen)
}

func TestInvalidCapRejected(t *testing.T) {
	t.Setenv("MAX_CONCURRENT_VIDEO_GEN", "0")
	_, err := Load()
	assert.Error(t, err)
}

func TestBoardDatabaseIDs(t *testing.T) {
	t.Setenv("BOARD_DATABASE_IDS", "db-alpha, db-beta ,,db-gamma")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"db-alpha", "db-beta", "db-gamma"}, cfg.Board.DatabaseIDs)
}

func TestSyncIntervalClamp(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Duration
	}{
		{"5", MinSyncInterval},
		{"60", 60 * time.Second},
		{"4000", MaxSyncInterval},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Setenv("BOARD_SYNC_INTERVAL_SECONDS", tt.raw)
			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Board.SyncInterval)
		})
	}
}

func TestStageTimeoutDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 60*time.Second, cfg.Stages.Timeout("assets"))
	assert.Equal(t, 10*time.Second, cfg.Stages.Timeout("composites"))
	assert.Equal(t, 600*time.Second, cfg.Stages.Timeout("video"))
	assert.Equal(t, 120*time.Second, cfg.Stages.Timeout("audio"))
	assert.Equal(t, 120*time.Second, cfg.Stages.Timeout("sfx"))
	assert.Equal(t, 180*time.Second, cfg.Stages.Timeout("assembly"))
}

func TestWorkerIDResolution(t *testing.T) {
	t.Setenv("WORKER_ID", "worker-7")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "worker-7", cfg.WorkerID)
}
