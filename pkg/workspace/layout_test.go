package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidIdent(t *testing.T) {
	valid := []string{"history-docs", "ch_01", "A1-b2_C3"}
	for _, s := range valid {
		assert.True(t, ValidIdent(s), s)
	}
	invalid := []string{"", "..", "a/b", "a b", "ch.01", "../etc", "a\x00b"}
	for _, s := range invalid {
		assert.False(t, ValidIdent(s), s)
	}
}

func TestProjectLayout(t *testing.T) {
	l, err := New(t.TempDir())
	require.NoError(t, err)

	p, err := l.Project("history-docs", "task-001")
	require.NoError(t, err)
	require.NoError(t, p.EnsureDirs())

	assert.Equal(t, filepath.Join(l.Root(), "channels", "history-docs", "projects", "task-001"), p.Dir())
	assert.DirExists(t, filepath.Join(p.Dir(), "assets", "composites"))
	assert.DirExists(t, filepath.Join(p.Dir(), "videos"))
	assert.DirExists(t, filepath.Join(p.Dir(), "audio"))
	assert.DirExists(t, filepath.Join(p.Dir(), "sfx"))

	assert.Equal(t, filepath.Join(p.Dir(), "assets", "asset_007.png"), p.AssetPath(7))
	assert.Equal(t, filepath.Join(p.Dir(), "videos", "clip_012.mp4"), p.ClipPath(12))
	assert.Equal(t, filepath.Join(p.Dir(), "audio", "narration_001.mp3"), p.NarrationPath(1))
	assert.Equal(t, filepath.Join(p.Dir(), "final.mp4"), p.FinalPath())
}

func TestProjectRejectsBadIdentifiers(t *testing.T) {
	l, err := New(t.TempDir())
	require.NoError(t, err)

	_, err = l.Project("../escape", "task-001")
	assert.Error(t, err)
	_, err = l.Project("ok", "a/b")
	assert.Error(t, err)
	_, err = l.Project("", "task-001")
	assert.Error(t, err)
}

func TestFileReady(t *testing.T) {
	dir := t.TempDir()

	missing := filepath.Join(dir, "missing.png")
	assert.False(t, FileReady(missing))

	empty := filepath.Join(dir, "empty.png")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	assert.False(t, FileReady(empty))

	ok := filepath.Join(dir, "ok.png")
	require.NoError(t, os.WriteFile(ok, []byte("png"), 0o644))
	assert.True(t, FileReady(ok))
}
