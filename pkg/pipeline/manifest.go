package pipeline

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/reelworks/reelpipe/pkg/driver"
	"github.com/reelworks/reelpipe/pkg/models"
	"github.com/reelworks/reelpipe/pkg/workspace"
)

// ManifestClip is one scene of the assembly manifest.
type ManifestClip struct {
	ClipNumber        int     `json:"clip_number"`
	VideoPath         string  `json:"video_path"`
	NarrationPath     string  `json:"narration_path"`
	SFXPath           string  `json:"sfx_path"`
	NarrationDuration float64 `json:"narration_duration"`
}

// Manifest is the assembler's input: every clip with its three media
// files and the narration length that paces the cut.
type Manifest struct {
	Clips []ManifestClip `json:"clips"`
}

// buildManifest collects the per-clip inputs, verifying each file on
// storage. A missing input is a hard failure: assembly can only run
// against a fully approved set.
func buildManifest(project *workspace.Project, clipCount int, steps models.Ledger) (*Manifest, error) {
	if clipCount < 1 {
		return nil, permanentf("clip count %d, nothing to assemble", clipCount)
	}
	durations := steps.Step(models.StageAudio).NarrationDurations

	m := &Manifest{Clips: make([]ManifestClip, 0, clipCount)}
	for i := 1; i <= clipCount; i++ {
		clip := ManifestClip{
			ClipNumber:    i,
			VideoPath:     project.ClipPath(i),
			NarrationPath: project.NarrationPath(i),
			SFXPath:       project.SFXPath(i),
		}
		for _, p := range []string{clip.VideoPath, clip.NarrationPath, clip.SFXPath} {
			if !workspace.FileReady(p) {
				return nil, permanentf("assembly input missing: %s", p)
			}
		}
		clip.NarrationDuration = durations[i]
		if clip.NarrationDuration == 0 {
			d, err := driver.NarrationDuration(clip.NarrationPath)
			if err != nil {
				return nil, permanentf("measuring narration %d: %v", i, err)
			}
			clip.NarrationDuration = d
		}
		m.Clips = append(m.Clips, clip)
	}
	return m, nil
}

func writeManifest(path string, m *Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}
