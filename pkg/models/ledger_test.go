package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepProgressMarkDone(t *testing.T) {
	p := &StepProgress{FailedIndices: []int{3, 7}}

	p.MarkDone(7)
	p.MarkDone(2)
	p.MarkDone(7) // idempotent

	assert.Equal(t, []int{2, 7}, p.DoneIndices)
	assert.Equal(t, []int{3}, p.FailedIndices)
	assert.True(t, p.Done(2))
	assert.False(t, p.Done(3))
}

func TestLedgerNextPendingStage(t *testing.T) {
	l := Ledger{}
	assert.Equal(t, StageAssets, l.NextPendingStage())

	l.Step(StageAssets).Completed = true
	l.Step(StageComposites).Completed = true
	assert.Equal(t, StageVideo, l.NextPendingStage())

	for _, s := range PipelineOrder {
		l.Step(s).Completed = true
	}
	assert.Equal(t, Stage(""), l.NextPendingStage())
}

func TestLedgerJSONRoundTrip(t *testing.T) {
	l := Ledger{}
	step := l.Step(StageAudio)
	step.MarkDone(1)
	step.NarrationDurations = map[int]float64{1: 12.5}
	step.FailedAudioClipNumbers = &AudioRepair{Narration: []int{5, 12}, SFX: []int{7, 9, 15}}

	raw, err := json.Marshal(l)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "failed_audio_clip_numbers")

	var back Ledger
	require.NoError(t, json.Unmarshal(raw, &back))
	got := back.Step(StageAudio)
	assert.Equal(t, []int{1}, got.DoneIndices)
	assert.Equal(t, 12.5, got.NarrationDurations[1])
	assert.Equal(t, []int{5, 12}, got.FailedAudioClipNumbers.Narration)
	assert.Equal(t, []int{7, 9, 15}, got.FailedAudioClipNumbers.SFX)
}

func TestAudioRepairEmpty(t *testing.T) {
	var nilRepair *AudioRepair
	assert.True(t, nilRepair.Empty())
	assert.True(t, (&AudioRepair{}).Empty())
	assert.False(t, (&AudioRepair{SFX: []int{1}}).Empty())
}
