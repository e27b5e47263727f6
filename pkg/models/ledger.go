package models

import "sort"

// AudioRepair lists narration and SFX clip numbers flagged bad by a human
// rejection. A retry regenerates exactly these indices and nothing else.
type AudioRepair struct {
	Narration []int `json:"narration,omitempty"`
	SFX       []int `json:"sfx,omitempty"`
}

// Empty reports whether the repair set has no indices.
func (r *AudioRepair) Empty() bool {
	return r == nil || (len(r.Narration) == 0 && len(r.SFX) == 0)
}

// StepProgress is the per-stage entry of the resume ledger. Completed is
// only set once every sub-item output has been verified on storage.
type StepProgress struct {
	Completed bool    `json:"completed"`
	DurationS float64 `json:"duration_s,omitempty"`

	// DoneIndices are 1-based sub-item indices whose outputs are verified.
	DoneIndices []int `json:"done_indices,omitempty"`

	// FailedIndices are sub-items flagged by a rejection (assets, clips,
	// composites). Cleared once regenerated.
	FailedIndices []int `json:"failed_indices,omitempty"`

	// FailedAudioClipNumbers carries rejection-driven regeneration targets
	// for the narration/SFX repair pass.
	FailedAudioClipNumbers *AudioRepair `json:"failed_audio_clip_numbers,omitempty"`

	// NarrationDurations records the measured audio length per clip number,
	// consumed by the assembly manifest.
	NarrationDurations map[int]float64 `json:"narration_durations,omitempty"`
}

// Done reports whether the 1-based index is recorded complete.
func (p *StepProgress) Done(idx int) bool {
	if p == nil {
		return false
	}
	for _, i := range p.DoneIndices {
		if i == idx {
			return true
		}
	}
	return false
}

// MarkDone records an index as complete, keeping DoneIndices sorted and
// deduplicated, and drops it from FailedIndices.
func (p *StepProgress) MarkDone(idx int) {
	if !p.Done(idx) {
		p.DoneIndices = append(p.DoneIndices, idx)
		sort.Ints(p.DoneIndices)
	}
	p.FailedIndices = removeInt(p.FailedIndices, idx)
}

// Ledger is the per-task resume ledger, keyed by stage. It is stored as a
// JSON column on the task row and always rewritten atomically with status.
type Ledger map[Stage]*StepProgress

// Step returns the entry for a stage, creating it if absent.
func (l Ledger) Step(s Stage) *StepProgress {
	if p, ok := l[s]; ok && p != nil {
		return p
	}
	p := &StepProgress{}
	l[s] = p
	return p
}

// StageCompleted reports whether a stage is recorded fully complete.
func (l Ledger) StageCompleted(s Stage) bool {
	p, ok := l[s]
	return ok && p != nil && p.Completed
}

// NextPendingStage returns the first stage in pipeline order that is not
// recorded complete, or "" when all stages are done.
func (l Ledger) NextPendingStage() Stage {
	for _, s := range PipelineOrder {
		if !l.StageCompleted(s) {
			return s
		}
	}
	return ""
}

func removeInt(s []int, v int) []int {
	out := s[:0]
	for _, i := range s {
		if i != v {
			out = append(out, i)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
