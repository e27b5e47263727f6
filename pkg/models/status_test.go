package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	t.Run("normal progression", func(t *testing.T) {
		assert.True(t, CanTransition(StatusQueued, StatusClaimed))
		assert.True(t, CanTransition(StatusClaimed, StatusGeneratingAssets))
		assert.True(t, CanTransition(StatusGeneratingAssets, StatusAssetsReady))
		assert.True(t, CanTransition(StatusAssetsReady, StatusAssetsApproved))
		assert.True(t, CanTransition(StatusAssetsApproved, StatusGeneratingComposites))
		assert.True(t, CanTransition(StatusGeneratingComposites, StatusGeneratingVideo))
		assert.True(t, CanTransition(StatusGeneratingAssembly, StatusFinalReview))
		assert.True(t, CanTransition(StatusFinalReview, StatusApproved))
		assert.True(t, CanTransition(StatusApproved, StatusUploading))
		assert.True(t, CanTransition(StatusUploading, StatusPublished))
	})

	t.Run("error and retry paths", func(t *testing.T) {
		assert.True(t, CanTransition(StatusGeneratingVideo, StatusVideoError))
		assert.True(t, CanTransition(StatusVideoError, StatusQueued))
		assert.True(t, CanTransition(StatusVideoError, StatusGeneratingVideo))
		assert.True(t, CanTransition(StatusGeneratingVideo, StatusRetry))
		assert.True(t, CanTransition(StatusRetry, StatusClaimed))
		// Composite failures land in asset_error.
		assert.True(t, CanTransition(StatusGeneratingComposites, StatusAssetError))
	})

	t.Run("rejection with feedback", func(t *testing.T) {
		assert.True(t, CanTransition(StatusAudioReady, StatusAudioError))
		assert.True(t, CanTransition(StatusAudioError, StatusQueued))
	})

	t.Run("graceful release", func(t *testing.T) {
		assert.True(t, CanTransition(StatusGeneratingAudio, StatusQueued))
		assert.True(t, CanTransition(StatusClaimed, StatusQueued))
	})

	t.Run("rejected edges", func(t *testing.T) {
		assert.False(t, CanTransition(StatusQueued, StatusGeneratingAssets))
		assert.False(t, CanTransition(StatusDraft, StatusClaimed))
		assert.False(t, CanTransition(StatusAssetsReady, StatusVideoReady))
		assert.False(t, CanTransition(StatusPublished, StatusQueued))
		assert.False(t, CanTransition(StatusGeneratingAssets, StatusGeneratingVideo))
		assert.False(t, CanTransition(StatusUploading, StatusQueued))
	})
}

func TestEveryTransitionTargetIsAKnownStatus(t *testing.T) {
	known := make(map[Status]bool, len(AllStatuses))
	for _, s := range AllStatuses {
		known[s] = true
	}
	for from, tos := range transitions {
		require.True(t, known[from], "unknown source status %q", from)
		for _, to := range tos {
			require.True(t, known[to], "unknown target status %q (from %q)", to, from)
		}
	}
}

func TestReviewGates(t *testing.T) {
	gates := []Status{StatusAssetsReady, StatusVideoReady, StatusAudioReady, StatusSFXReady, StatusFinalReview}
	for _, g := range gates {
		assert.True(t, g.IsReviewGate(), "%s should be a review gate", g)
	}
	assert.False(t, StatusGeneratingComposites.IsReviewGate())
	assert.False(t, StatusApproved.IsReviewGate())
}

func TestStageStatusMapping(t *testing.T) {
	for _, s := range PipelineOrder {
		gen := GeneratingStatus(s)
		require.NotEmpty(t, gen, "stage %s has no generating status", s)

		stage, ok := gen.StageFor()
		require.True(t, ok)
		assert.Equal(t, s, stage)

		// Every stage has an error status; composites borrow asset_error.
		assert.NotEmpty(t, ErrorStatus(s))
	}
	assert.Empty(t, ReadyStatus(StageComposites), "composites have no review gate")
	assert.Equal(t, StatusFinalReview, ReadyStatus(StageAssembly))
	assert.Equal(t, StatusAssetError, ErrorStatus(StageComposites))
}

func TestStageOrderAndClasses(t *testing.T) {
	assert.Equal(t, StageComposites, StageAssets.Next())
	assert.Equal(t, Stage(""), StageAssembly.Next())

	assert.Equal(t, ClassAsset, StageAssets.Class())
	assert.Equal(t, ClassAsset, StageComposites.Class())
	assert.Equal(t, ClassVideo, StageVideo.Class())
	assert.Equal(t, ClassAudio, StageAudio.Class())
	assert.Equal(t, ClassAudio, StageSFX.Class())
	assert.Equal(t, ClassNone, StageAssembly.Class())
}

func TestClaimable(t *testing.T) {
	for _, s := range ClaimableStatuses() {
		assert.True(t, s.Claimable())
	}
	assert.False(t, StatusDraft.Claimable())
	assert.False(t, StatusGeneratingAssets.Claimable())
	assert.False(t, StatusAssetsReady.Claimable())
}
