package board

import "github.com/reelworks/reelpipe/pkg/models"

// boardNames maps core statuses to the board's fixed select option names.
// The table is immutable at runtime: every worker release carries the same
// mapping, and board-side option renames require a new release.
//
// claimed and retry are worker-internal and have no board name: claimed is
// never pushed, retry is presented as "Queued".
var boardNames = map[models.Status]string{
	models.StatusDraft:  "Draft",
	models.StatusQueued: "Queued",

	models.StatusGeneratingAssets: "Generating Assets",
	models.StatusAssetsReady:      "Assets Ready",
	models.StatusAssetsApproved:   "Assets Approved",
	models.StatusAssetError:       "Asset Error",

	models.StatusGeneratingComposites: "Generating Composites",

	models.StatusGeneratingVideo: "Generating Video",
	models.StatusVideoReady:      "Video Ready",
	models.StatusVideoApproved:   "Video Approved",
	models.StatusVideoError:      "Video Error",

	models.StatusGeneratingAudio: "Generating Audio",
	models.StatusAudioReady:      "Audio Ready",
	models.StatusAudioApproved:   "Audio Approved",
	models.StatusAudioError:      "Audio Error",

	models.StatusGeneratingSFX: "Generating SFX",
	models.StatusSFXReady:      "SFX Ready",
	models.StatusSFXApproved:   "SFX Approved",
	models.StatusSFXError:      "SFX Error",

	models.StatusGeneratingAssembly: "Generating Assembly",
	models.StatusFinalReview:        "Final Review",
	models.StatusAssemblyError:      "Assembly Error",

	models.StatusApproved:    "Approved",
	models.StatusUploading:   "Uploading",
	models.StatusPublished:   "Published",
	models.StatusUploadError: "Upload Error",
}

// coreStatuses is the inverse of boardNames.
var coreStatuses = func() map[string]models.Status {
	m := make(map[string]models.Status, len(boardNames))
	for core, name := range boardNames {
		m[name] = core
	}
	return m
}()

// BoardName returns the board select name for a core status. The second
// return is false for worker-internal statuses that must not be pushed
// as-is: retry maps to "Queued", claimed maps to nothing.
func BoardName(s models.Status) (string, bool) {
	if s == models.StatusRetry {
		return "Queued", true
	}
	if name, ok := boardNames[s]; ok {
		return name, true
	}
	return "", false
}

// CoreStatus translates a board select name to its core status. The
// second return is false for unknown names, which inbound sync ignores.
func CoreStatus(name string) (models.Status, bool) {
	s, ok := coreStatuses[name]
	return s, ok
}
