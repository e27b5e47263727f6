// Package ledger computes the outstanding work for a stage by
// reconciling the task's resume ledger with the files actually present
// in the project workspace. Disk is authoritative: a unit whose output
// file is missing or empty is outstanding even if the ledger marked it
// done, and a unit whose file is present is skipped on resume.
package ledger

import (
	"fmt"

	"github.com/reelworks/reelpipe/pkg/models"
	"github.com/reelworks/reelpipe/pkg/workspace"
)

// Counts carries the per-task unit counts a stage fans out over.
type Counts struct {
	Assets int
	Clips  int
}

// UnitCount returns how many units a stage produces for this task.
func (c Counts) UnitCount(stage models.Stage) int {
	switch stage {
	case models.StageAssets:
		return c.Assets
	case models.StageComposites, models.StageVideo, models.StageAudio, models.StageSFX:
		return c.Clips
	case models.StageAssembly:
		return 1
	default:
		return 0
	}
}

// UnitPath returns the output path for unit i (1-based) of a stage.
func UnitPath(project *workspace.Project, stage models.Stage, i int) (string, error) {
	switch stage {
	case models.StageAssets:
		return project.AssetPath(i), nil
	case models.StageComposites:
		return project.CompositePath(i), nil
	case models.StageVideo:
		return project.ClipPath(i), nil
	case models.StageAudio:
		return project.NarrationPath(i), nil
	case models.StageSFX:
		return project.SFXPath(i), nil
	case models.StageAssembly:
		return project.FinalPath(), nil
	default:
		return "", fmt.Errorf("unknown stage %q", stage)
	}
}

// Outstanding lists the unit indices (1-based, ascending) a stage still
// has to produce. A unit is settled only when its output file is ready;
// ledger done marks without a file behind them are treated as stale.
func Outstanding(project *workspace.Project, stage models.Stage, counts Counts, steps models.Ledger) ([]int, error) {
	total := counts.UnitCount(stage)
	if total <= 0 {
		return nil, fmt.Errorf("stage %q has no unit count", stage)
	}

	step := steps.Step(stage)
	var pending []int
	for i := 1; i <= total; i++ {
		path, err := UnitPath(project, stage, i)
		if err != nil {
			return nil, err
		}
		if step.Done(i) && workspace.FileReady(path) {
			continue
		}
		pending = append(pending, i)
	}
	return pending, nil
}

// Settle reconciles a stage's ledger entry with disk after a run: units
// whose files are ready are marked done, stale done marks are dropped.
// Returns true when every unit is settled.
func Settle(project *workspace.Project, stage models.Stage, counts Counts, steps models.Ledger) (bool, error) {
	total := counts.UnitCount(stage)
	if total <= 0 {
		return false, fmt.Errorf("stage %q has no unit count", stage)
	}

	step := steps.Step(stage)
	done := make([]int, 0, total)
	complete := true
	for i := 1; i <= total; i++ {
		path, err := UnitPath(project, stage, i)
		if err != nil {
			return false, err
		}
		if workspace.FileReady(path) {
			done = append(done, i)
		} else {
			complete = false
		}
	}
	step.DoneIndices = done
	step.Completed = complete
	return complete, nil
}
