package ledger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelworks/reelpipe/pkg/models"
	"github.com/reelworks/reelpipe/pkg/workspace"
)

func testProject(t *testing.T) *workspace.Project {
	t.Helper()
	layout, err := workspace.New(t.TempDir())
	require.NoError(t, err)
	project, err := layout.Project("history", "task-1")
	require.NoError(t, err)
	require.NoError(t, project.EnsureDirs())
	return project
}

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestOutstanding(t *testing.T) {
	counts := Counts{Assets: 4, Clips: 3}

	t.Run("fresh stage wants every unit", func(t *testing.T) {
		project := testProject(t)

		pending, err := Outstanding(project, models.StageAssets, counts, models.Ledger{})
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 4}, pending)
	})

	t.Run("ledger done with file present is skipped", func(t *testing.T) {
		project := testProject(t)
		touch(t, project.AssetPath(2))

		steps := models.Ledger{}
		steps.Step(models.StageAssets).MarkDone(2)

		pending, err := Outstanding(project, models.StageAssets, counts, steps)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 3, 4}, pending)
	})

	t.Run("ledger done without file is stale and redone", func(t *testing.T) {
		project := testProject(t)

		steps := models.Ledger{}
		steps.Step(models.StageAssets).MarkDone(2)

		pending, err := Outstanding(project, models.StageAssets, counts, steps)
		require.NoError(t, err)
		assert.Contains(t, pending, 2)
	})

	t.Run("file present without ledger mark is still outstanding", func(t *testing.T) {
		// A file alone is not proof of a settled unit until Settle has
		// reconciled it into the ledger.
		project := testProject(t)
		touch(t, project.AssetPath(1))

		pending, err := Outstanding(project, models.StageAssets, counts, models.Ledger{})
		require.NoError(t, err)
		assert.Contains(t, pending, 1)
	})

	t.Run("empty file does not count", func(t *testing.T) {
		project := testProject(t)
		require.NoError(t, os.WriteFile(project.AssetPath(3), nil, 0o644))

		steps := models.Ledger{}
		steps.Step(models.StageAssets).MarkDone(3)

		pending, err := Outstanding(project, models.StageAssets, counts, steps)
		require.NoError(t, err)
		assert.Contains(t, pending, 3)
	})

	t.Run("assembly is a single unit", func(t *testing.T) {
		project := testProject(t)

		pending, err := Outstanding(project, models.StageAssembly, counts, models.Ledger{})
		require.NoError(t, err)
		assert.Equal(t, []int{1}, pending)
	})
}

func TestSettle(t *testing.T) {
	counts := Counts{Assets: 2, Clips: 3}

	t.Run("partial output", func(t *testing.T) {
		project := testProject(t)
		touch(t, project.ClipPath(1))
		touch(t, project.ClipPath(3))

		steps := models.Ledger{}
		complete, err := Settle(project, models.StageVideo, counts, steps)
		require.NoError(t, err)
		assert.False(t, complete)

		step := steps.Step(models.StageVideo)
		assert.Equal(t, []int{1, 3}, step.DoneIndices)
		assert.False(t, step.Completed)
	})

	t.Run("all output present completes the stage", func(t *testing.T) {
		project := testProject(t)
		for i := 1; i <= 3; i++ {
			touch(t, project.ClipPath(i))
		}

		steps := models.Ledger{}
		complete, err := Settle(project, models.StageVideo, counts, steps)
		require.NoError(t, err)
		assert.True(t, complete)
		assert.True(t, steps.StageCompleted(models.StageVideo))
	})

	t.Run("stale done marks are dropped", func(t *testing.T) {
		project := testProject(t)
		touch(t, project.ClipPath(2))

		steps := models.Ledger{}
		steps.Step(models.StageVideo).MarkDone(1)
		steps.Step(models.StageVideo).MarkDone(2)

		_, err := Settle(project, models.StageVideo, counts, steps)
		require.NoError(t, err)
		assert.Equal(t, []int{2}, steps.Step(models.StageVideo).DoneIndices)
	})
}
