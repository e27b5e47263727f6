package config

import (
	"time"

	"github.com/reelworks/reelpipe/pkg/models"
)

// StageConfig holds per-stage execution policy: sub-item timeouts, retry
// caps, backoff shape, and unit costs.
type StageConfig struct {
	// Timeouts are per sub-item (per asset, per clip) except assembly,
	// which is per task.
	Timeouts map[models.Stage]time.Duration

	// AttemptCap bounds transient retries per stage.
	AttemptCap int

	// BackoffBase is the first retry delay; doubled per attempt, with
	// jitter, capped at BackoffMax.
	BackoffBase time.Duration
	BackoffMax  time.Duration

	// UnitCostUSD is the cost recorded per produced sub-item.
	UnitCostUSD map[models.Stage]float64

	// MaxDuration is the end-to-end wall-clock target; exceeding it logs
	// a warning at terminal success.
	MaxDuration time.Duration
}

// DefaultStageConfig returns the built-in stage policy.
func DefaultStageConfig() *StageConfig {
	return &StageConfig{
		Timeouts: map[models.Stage]time.Duration{
			models.StageAssets:     60 * time.Second,
			models.StageComposites: 10 * time.Second,
			models.StageVideo:      600 * time.Second,
			models.StageAudio:      120 * time.Second,
			models.StageSFX:        120 * time.Second,
			models.StageAssembly:   180 * time.Second,
		},
		AttemptCap:  5,
		BackoffBase: 30 * time.Second,
		BackoffMax:  15 * time.Minute,
		UnitCostUSD: map[models.Stage]float64{
			models.StageAssets:     0.04,
			models.StageComposites: 0.00,
			models.StageVideo:      0.35,
			models.StageAudio:      0.08,
			models.StageSFX:        0.05,
			models.StageAssembly:   0.00,
		},
		MaxDuration: 2 * time.Hour,
	}
}

func loadStageConfig() *StageConfig {
	cfg := DefaultStageConfig()
	cfg.Timeouts[models.StageAssets] = getDuration("IMAGE_GEN_TIMEOUT", cfg.Timeouts[models.StageAssets])
	cfg.Timeouts[models.StageComposites] = getDuration("COMPOSITE_TIMEOUT", cfg.Timeouts[models.StageComposites])
	cfg.Timeouts[models.StageVideo] = getDuration("VIDEO_GEN_TIMEOUT", cfg.Timeouts[models.StageVideo])
	cfg.Timeouts[models.StageAudio] = getDuration("NARRATION_TIMEOUT", cfg.Timeouts[models.StageAudio])
	cfg.Timeouts[models.StageSFX] = getDuration("SFX_TIMEOUT", cfg.Timeouts[models.StageSFX])
	cfg.Timeouts[models.StageAssembly] = getDuration("ASSEMBLY_TIMEOUT", cfg.Timeouts[models.StageAssembly])
	cfg.AttemptCap = getInt("STAGE_ATTEMPT_CAP", cfg.AttemptCap)
	return cfg
}

// Timeout returns the per-sub-item timeout for a stage.
func (c *StageConfig) Timeout(s models.Stage) time.Duration {
	if d, ok := c.Timeouts[s]; ok {
		return d
	}
	return time.Minute
}
