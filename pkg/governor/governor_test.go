package governor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelworks/reelpipe/pkg/config"
	"github.com/reelworks/reelpipe/pkg/models"
)

func newTestGovernor() *Governor {
	return New(config.GovernorConfig{
		MaxConcurrentAssetGen: 2,
		MaxConcurrentVideoGen: 1,
		MaxConcurrentAudioGen: 2,
	})
}

func TestGovernor_Admit(t *testing.T) {
	t.Run("admits up to cap then refuses", func(t *testing.T) {
		g := newTestGovernor()

		require.True(t, g.Admit(models.StageVideo))
		assert.False(t, g.Admit(models.StageVideo))

		g.Release(models.StageVideo)
		assert.True(t, g.Admit(models.StageVideo))
	})

	t.Run("classes are independent", func(t *testing.T) {
		g := newTestGovernor()

		require.True(t, g.Admit(models.StageVideo))
		assert.True(t, g.Admit(models.StageAssets))
		assert.True(t, g.Admit(models.StageAudio))
	})

	t.Run("assets and composites share the asset class", func(t *testing.T) {
		g := newTestGovernor()

		require.True(t, g.Admit(models.StageAssets))
		require.True(t, g.Admit(models.StageComposites))
		assert.False(t, g.Admit(models.StageAssets))
		assert.Equal(t, 2, g.InFlight(models.ClassAsset))
	})

	t.Run("narration and sfx share the audio class", func(t *testing.T) {
		g := newTestGovernor()

		require.True(t, g.Admit(models.StageAudio))
		require.True(t, g.Admit(models.StageSFX))
		assert.False(t, g.Admit(models.StageAudio))
	})

	t.Run("assembly is never gated", func(t *testing.T) {
		g := newTestGovernor()

		for i := 0; i < 10; i++ {
			assert.True(t, g.Admit(models.StageAssembly))
		}
	})
}

func TestGovernor_SetCaps(t *testing.T) {
	g := newTestGovernor()

	require.True(t, g.Admit(models.StageVideo))
	require.False(t, g.Admit(models.StageVideo))

	g.SetCaps(config.GovernorConfig{
		MaxConcurrentAssetGen: 2,
		MaxConcurrentVideoGen: 3,
		MaxConcurrentAudioGen: 2,
	})
	assert.True(t, g.Admit(models.StageVideo))

	// Lowering below in-flight never interrupts admitted work.
	g.SetCaps(config.GovernorConfig{
		MaxConcurrentAssetGen: 2,
		MaxConcurrentVideoGen: 1,
		MaxConcurrentAudioGen: 2,
	})
	assert.Equal(t, 2, g.InFlight(models.ClassVideo))
	assert.False(t, g.Admit(models.StageVideo))

	g.Release(models.StageVideo)
	g.Release(models.StageVideo)
	assert.Equal(t, 0, g.InFlight(models.ClassVideo))
}

func TestGovernor_Release(t *testing.T) {
	g := newTestGovernor()

	// Unmatched release must not drive the counter negative.
	g.Release(models.StageVideo)
	assert.Equal(t, 0, g.InFlight(models.ClassVideo))
	assert.True(t, g.Admit(models.StageVideo))
}

func TestGovernor_ServicePause(t *testing.T) {
	g := newTestGovernor()

	assert.False(t, g.ServicePaused("image-api"))

	g.PauseService("image-api", time.Now().Add(time.Minute))
	assert.True(t, g.ServicePaused("image-api"))
	assert.False(t, g.ServicePaused("tts-api"))

	// An earlier deadline never shortens an existing pause.
	g.PauseService("image-api", time.Now().Add(time.Second))
	assert.True(t, g.ServicePaused("image-api"))

	g.PauseService("tts-api", time.Now().Add(-time.Second))
	assert.False(t, g.ServicePaused("tts-api"))
}
