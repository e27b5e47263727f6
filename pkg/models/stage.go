// Package models defines the pipeline domain types shared across the
// store, scheduler, orchestrator, and board synchronizer: stages, task
// statuses, the status state machine, and the resume ledger.
package models

// Stage is one of the six pipeline phases a task moves through, in order.
type Stage string

// Pipeline stages.
const (
	StageAssets     Stage = "assets"
	StageComposites Stage = "composites"
	StageVideo      Stage = "video"
	StageAudio      Stage = "audio" // narration
	StageSFX        Stage = "sfx"
	StageAssembly   Stage = "assembly"
)

// PipelineOrder lists the stages in execution order.
var PipelineOrder = []Stage{
	StageAssets,
	StageComposites,
	StageVideo,
	StageAudio,
	StageSFX,
	StageAssembly,
}

// StageClass groups stages by the external resource they contend on.
// The governor keeps one admission counter per class.
type StageClass string

// Stage classes. ClassNone is never counted (assembly is local CPU work).
const (
	ClassAsset StageClass = "asset"
	ClassVideo StageClass = "video"
	ClassAudio StageClass = "audio"
	ClassNone  StageClass = "none"
)

// Class returns the governor class for the stage. Composites share the
// asset class (same image service); narration and SFX share the audio class.
func (s Stage) Class() StageClass {
	switch s {
	case StageAssets, StageComposites:
		return ClassAsset
	case StageVideo:
		return ClassVideo
	case StageAudio, StageSFX:
		return ClassAudio
	default:
		return ClassNone
	}
}

// Next returns the stage after s in pipeline order, or "" for the last one.
func (s Stage) Next() Stage {
	for i, st := range PipelineOrder {
		if st == s && i+1 < len(PipelineOrder) {
			return PipelineOrder[i+1]
		}
	}
	return ""
}

// Valid reports whether s is a known pipeline stage.
func (s Stage) Valid() bool {
	switch s {
	case StageAssets, StageComposites, StageVideo, StageAudio, StageSFX, StageAssembly:
		return true
	}
	return false
}
