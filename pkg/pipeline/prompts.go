package pipeline

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/reelworks/reelpipe/ent"
)

// Prompt construction. The generators own the creative interpretation;
// these strings only carry the task's subject, the scene position, and
// the reviewer-supplied story direction.

func subject(t *ent.Task) string {
	if t.Topic != "" {
		return t.Topic
	}
	return t.Title
}

func assetPrompt(t *ent.Task, i int) string {
	p := fmt.Sprintf("%s. Cinematic documentary still %d of %d, 9:16 vertical, photorealistic.",
		subject(t), i, t.AssetCount)
	if t.StoryDirection != "" {
		p += " Direction: " + t.StoryDirection
	}
	return p
}

func videoPrompt(t *ent.Task, i int) string {
	p := fmt.Sprintf("Subtle cinematic camera motion for scene %d of a short documentary about %s.",
		i, subject(t))
	if t.StoryDirection != "" {
		p += " Direction: " + t.StoryDirection
	}
	return p
}

func narrationText(t *ent.Task, i int) string {
	p := fmt.Sprintf("Narration for scene %d of %d in a short documentary about %s.",
		i, t.ClipCount, subject(t))
	if t.StoryDirection != "" {
		p += " Direction: " + t.StoryDirection
	}
	return p
}

func sfxText(t *ent.Task, i int) string {
	return fmt.Sprintf("Ambient background sound bed for scene %d of a documentary about %s.",
		i, subject(t))
}

// relToRoot returns path relative to root in URL slash form, rejecting
// anything that escapes the root.
func relToRoot(root, path string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes root", path)
	}
	return filepath.ToSlash(rel), nil
}
