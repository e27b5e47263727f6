// Package config loads worker configuration from the environment and
// exposes defaults. Everything here is plain values: services receive
// config structs at construction, never read the environment themselves.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the full worker configuration.
type Config struct {
	// WorkerID identifies this process in claims and heartbeats.
	// Resolution: WORKER_ID env > HOSTNAME env > "local".
	WorkerID string

	HTTPPort      string
	WorkspaceRoot string

	// DefaultVoiceID is the TTS fallback when a channel omits its voice.
	DefaultVoiceID string

	// FernetKey decrypts per-channel credential blobs. Handed to
	// pkg/secrets and never logged.
	FernetKey string

	// PublicAssetBaseURL maps workspace-relative asset paths to the public
	// URLs the video generator requires.
	PublicAssetBaseURL string

	Queue      *QueueConfig
	Governor   *GovernorConfig
	Board      *BoardConfig
	Stages     *StageConfig
	Generators *GeneratorConfig

	// Slack ops notifications; both empty disables them.
	SlackBotToken  string
	SlackChannelID string
}

// GovernorConfig holds the per-worker stage concurrency caps.
type GovernorConfig struct {
	MaxConcurrentAssetGen int
	MaxConcurrentVideoGen int
	MaxConcurrentAudioGen int
}

// DefaultGovernorConfig returns the built-in admission caps. The video cap
// is conservative: workers × cap must stay under the account-wide service
// limit with headroom.
func DefaultGovernorConfig() *GovernorConfig {
	return &GovernorConfig{
		MaxConcurrentAssetGen: 12,
		MaxConcurrentVideoGen: 3,
		MaxConcurrentAudioGen: 6,
	}
}

// GeneratorConfig holds the external generator command paths.
type GeneratorConfig struct {
	ImageCmd    string
	VideoCmd    string
	TTSCmd      string
	SFXCmd      string
	AssembleCmd string
}

// Load reads the full configuration from the environment. Callers re-run
// Load on SIGHUP; the governor caps and board poll settings are the parts
// that take effect without restart.
func Load() (*Config, error) {
	cfg := &Config{
		WorkerID:           resolveWorkerID(),
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		WorkspaceRoot:      getEnv("WORKSPACE_ROOT", "./workspace"),
		DefaultVoiceID:     os.Getenv("DEFAULT_VOICE_ID"),
		FernetKey:          os.Getenv("FERNET_KEY"),
		PublicAssetBaseURL: strings.TrimRight(os.Getenv("PUBLIC_ASSET_BASE_URL"), "/"),
		Queue:              loadQueueConfig(),
		Governor: &GovernorConfig{
			MaxConcurrentAssetGen: getInt("MAX_CONCURRENT_ASSET_GEN", 12),
			MaxConcurrentVideoGen: getInt("MAX_CONCURRENT_VIDEO_GEN", 3),
			MaxConcurrentAudioGen: getInt("MAX_CONCURRENT_AUDIO_GEN", 6),
		},
		Board:  loadBoardConfig(),
		Stages: loadStageConfig(),
		Generators: &GeneratorConfig{
			ImageCmd:    getEnv("IMAGE_GEN_CMD", "reelpipe-imagegen"),
			VideoCmd:    getEnv("VIDEO_GEN_CMD", "reelpipe-videogen"),
			TTSCmd:      getEnv("TTS_CMD", "reelpipe-tts"),
			SFXCmd:      getEnv("SFX_CMD", "reelpipe-sfx"),
			AssembleCmd: getEnv("ASSEMBLE_CMD", "reelpipe-assemble"),
		},
		SlackBotToken:  os.Getenv("SLACK_BOT_TOKEN"),
		SlackChannelID: os.Getenv("SLACK_CHANNEL_ID"),
	}

	if cfg.Governor.MaxConcurrentAssetGen < 1 ||
		cfg.Governor.MaxConcurrentVideoGen < 1 ||
		cfg.Governor.MaxConcurrentAudioGen < 1 {
		return nil, fmt.Errorf("concurrency caps must be >= 1")
	}

	return cfg, nil
}

func resolveWorkerID() string {
	if id := os.Getenv("WORKER_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return v
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return defaultValue
}
