package models

// Status is a task's position in the pipeline state machine. The string
// values are stored verbatim in the tasks.status column (ent enum) and
// mapped to board status names by pkg/board.
type Status string

// Task statuses.
const (
	StatusDraft   Status = "draft"
	StatusQueued  Status = "queued"
	StatusRetry   Status = "retry"
	StatusClaimed Status = "claimed"

	StatusGeneratingAssets Status = "generating_assets"
	StatusAssetsReady      Status = "assets_ready"
	StatusAssetsApproved   Status = "assets_approved"
	StatusAssetError       Status = "asset_error"

	StatusGeneratingComposites Status = "generating_composites"

	StatusGeneratingVideo Status = "generating_video"
	StatusVideoReady      Status = "video_ready"
	StatusVideoApproved   Status = "video_approved"
	StatusVideoError      Status = "video_error"

	StatusGeneratingAudio Status = "generating_audio"
	StatusAudioReady      Status = "audio_ready"
	StatusAudioApproved   Status = "audio_approved"
	StatusAudioError      Status = "audio_error"

	StatusGeneratingSFX Status = "generating_sfx"
	StatusSFXReady      Status = "sfx_ready"
	StatusSFXApproved   Status = "sfx_approved"
	StatusSFXError      Status = "sfx_error"

	StatusGeneratingAssembly Status = "generating_assembly"
	StatusFinalReview        Status = "final_review"
	StatusAssemblyError      Status = "assembly_error"

	StatusApproved    Status = "approved"
	StatusUploading   Status = "uploading"
	StatusPublished   Status = "published"
	StatusUploadError Status = "upload_error"
)

// AllStatuses lists every status, in pipeline order.
var AllStatuses = []Status{
	StatusDraft, StatusQueued, StatusRetry, StatusClaimed,
	StatusGeneratingAssets, StatusAssetsReady, StatusAssetsApproved, StatusAssetError,
	StatusGeneratingComposites,
	StatusGeneratingVideo, StatusVideoReady, StatusVideoApproved, StatusVideoError,
	StatusGeneratingAudio, StatusAudioReady, StatusAudioApproved, StatusAudioError,
	StatusGeneratingSFX, StatusSFXReady, StatusSFXApproved, StatusSFXError,
	StatusGeneratingAssembly, StatusFinalReview, StatusAssemblyError,
	StatusApproved, StatusUploading, StatusPublished, StatusUploadError,
}

// ReviewGates is the hard-coded set of statuses at which the orchestrator
// halts, releases the task, and waits for a human decision on the board.
var ReviewGates = map[Status]bool{
	StatusAssetsReady: true,
	StatusVideoReady:  true,
	StatusAudioReady:  true,
	StatusSFXReady:    true,
	StatusFinalReview: true,
}

// IsReviewGate reports whether s is a human-review gate.
func (s Status) IsReviewGate() bool { return ReviewGates[s] }

// IsError reports whether s is a stage error status.
func (s Status) IsError() bool {
	switch s {
	case StatusAssetError, StatusVideoError, StatusAudioError, StatusSFXError,
		StatusAssemblyError, StatusUploadError:
		return true
	}
	return false
}

// IsTerminal reports whether the core is done with the task.
func (s Status) IsTerminal() bool { return s == StatusPublished }

// Claimable reports whether the scheduler may claim a task in this status.
var claimable = map[Status]bool{
	StatusQueued:         true,
	StatusRetry:          true,
	StatusAssetsApproved: true,
	StatusVideoApproved:  true,
	StatusAudioApproved:  true,
	StatusSFXApproved:    true,
}

// Claimable reports whether s is eligible for worker claim.
func (s Status) Claimable() bool { return claimable[s] }

// ClaimableStatuses returns the claim candidate set in a stable order.
func ClaimableStatuses() []Status {
	return []Status{
		StatusQueued, StatusRetry,
		StatusAssetsApproved, StatusVideoApproved,
		StatusAudioApproved, StatusSFXApproved,
	}
}

// GeneratingStatus returns the in-flight status for a stage.
func GeneratingStatus(s Stage) Status {
	switch s {
	case StageAssets:
		return StatusGeneratingAssets
	case StageComposites:
		return StatusGeneratingComposites
	case StageVideo:
		return StatusGeneratingVideo
	case StageAudio:
		return StatusGeneratingAudio
	case StageSFX:
		return StatusGeneratingSFX
	case StageAssembly:
		return StatusGeneratingAssembly
	}
	return ""
}

// ReadyStatus returns the review-gate status that follows a stage, or ""
// for composites, which have no gate.
func ReadyStatus(s Stage) Status {
	switch s {
	case StageAssets:
		return StatusAssetsReady
	case StageVideo:
		return StatusVideoReady
	case StageAudio:
		return StatusAudioReady
	case StageSFX:
		return StatusSFXReady
	case StageAssembly:
		return StatusFinalReview
	}
	return ""
}

// ErrorStatus returns the error status for a stage. Composites route to
// asset_error: composites are derived assets and share their retry path.
func ErrorStatus(s Stage) Status {
	switch s {
	case StageAssets, StageComposites:
		return StatusAssetError
	case StageVideo:
		return StatusVideoError
	case StageAudio:
		return StatusAudioError
	case StageSFX:
		return StatusSFXError
	case StageAssembly:
		return StatusAssemblyError
	}
	return ""
}

// ApprovedStatus returns the post-approval status for a gated stage.
func ApprovedStatus(s Stage) Status {
	switch s {
	case StageAssets:
		return StatusAssetsApproved
	case StageVideo:
		return StatusVideoApproved
	case StageAudio:
		return StatusAudioApproved
	case StageSFX:
		return StatusSFXApproved
	case StageAssembly:
		return StatusApproved
	}
	return ""
}

// ApprovedStatusForGate maps a review gate to the status an approval
// moves the task into, or "" for non-gate statuses.
func ApprovedStatusForGate(gate Status) Status {
	switch gate {
	case StatusAssetsReady:
		return StatusAssetsApproved
	case StatusVideoReady:
		return StatusVideoApproved
	case StatusAudioReady:
		return StatusAudioApproved
	case StatusSFXReady:
		return StatusSFXApproved
	case StatusFinalReview:
		return StatusApproved
	}
	return ""
}

// StageFor maps a stage-specific status back to its stage. The second
// return is false for pipeline-neutral statuses (queued, approved, …).
func (s Status) StageFor() (Stage, bool) {
	switch s {
	case StatusGeneratingAssets, StatusAssetsReady, StatusAssetsApproved, StatusAssetError:
		return StageAssets, true
	case StatusGeneratingComposites:
		return StageComposites, true
	case StatusGeneratingVideo, StatusVideoReady, StatusVideoApproved, StatusVideoError:
		return StageVideo, true
	case StatusGeneratingAudio, StatusAudioReady, StatusAudioApproved, StatusAudioError:
		return StageAudio, true
	case StatusGeneratingSFX, StatusSFXReady, StatusSFXApproved, StatusSFXError:
		return StageSFX, true
	case StatusGeneratingAssembly, StatusFinalReview, StatusAssemblyError:
		return StageAssembly, true
	}
	return "", false
}

// transitions is the full state machine. A (from, to) pair outside this
// table is rejected by the task store with ErrInvalidTransition.
var transitions = map[Status][]Status{
	StatusDraft:  {StatusQueued},
	StatusQueued: {StatusClaimed},
	StatusRetry:  {StatusClaimed},
	StatusClaimed: {
		StatusGeneratingAssets, StatusGeneratingComposites, StatusGeneratingVideo,
		StatusGeneratingAudio, StatusGeneratingSFX, StatusGeneratingAssembly,
		StatusQueued, StatusRetry,
	},

	StatusGeneratingAssets: {StatusAssetsReady, StatusAssetError, StatusRetry, StatusQueued},
	StatusAssetsReady:      {StatusAssetsApproved, StatusAssetError},
	StatusAssetsApproved:   {StatusClaimed, StatusGeneratingComposites},
	StatusAssetError:       {StatusQueued, StatusGeneratingAssets},

	// No review gate after composites: success flows straight into video.
	StatusGeneratingComposites: {StatusGeneratingVideo, StatusAssetError, StatusRetry, StatusQueued},

	StatusGeneratingVideo: {StatusVideoReady, StatusVideoError, StatusRetry, StatusQueued},
	StatusVideoReady:      {StatusVideoApproved, StatusVideoError},
	StatusVideoApproved:   {StatusClaimed, StatusGeneratingAudio},
	StatusVideoError:      {StatusQueued, StatusGeneratingVideo},

	StatusGeneratingAudio: {StatusAudioReady, StatusAudioError, StatusRetry, StatusQueued},
	StatusAudioReady:      {StatusAudioApproved, StatusAudioError},
	StatusAudioApproved:   {StatusClaimed, StatusGeneratingSFX},
	StatusAudioError:      {StatusQueued, StatusGeneratingAudio},

	StatusGeneratingSFX: {StatusSFXReady, StatusSFXError, StatusRetry, StatusQueued},
	StatusSFXReady:      {StatusSFXApproved, StatusSFXError},
	StatusSFXApproved:   {StatusClaimed, StatusGeneratingAssembly},
	StatusSFXError:      {StatusQueued, StatusGeneratingSFX},

	StatusGeneratingAssembly: {StatusFinalReview, StatusAssemblyError, StatusRetry, StatusQueued},
	StatusFinalReview:        {StatusApproved, StatusAssemblyError},
	StatusAssemblyError:      {StatusQueued, StatusGeneratingAssembly},

	StatusApproved:    {StatusUploading},
	StatusUploading:   {StatusPublished, StatusUploadError},
	StatusUploadError: {StatusUploading},
	StatusPublished:   {},
}

// EntryStage resolves which stage a freshly claimed task should run,
// from the status it was claimed out of and its resume ledger. Approved
// statuses continue past their gate; queued and retry resume at the
// first incomplete stage, with a pending audio repair taking precedence.
func EntryStage(prev Status, l Ledger) Stage {
	switch prev {
	case StatusAssetsApproved:
		return StageComposites
	case StatusVideoApproved:
		return StageAudio
	case StatusAudioApproved:
		return StageSFX
	case StatusSFXApproved:
		return StageAssembly
	}
	if p := l[StageAudio]; p != nil && !p.FailedAudioClipNumbers.Empty() {
		return StageAudio
	}
	if s := l.NextPendingStage(); s != "" {
		return s
	}
	return StageAssembly
}

// CanTransition reports whether (from, to) is a valid state machine edge.
func CanTransition(from, to Status) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}
