// Package workspace owns the on-disk layout for pipeline outputs:
// <root>/channels/<channel_id>/projects/<project_id>/ with per-stage
// subdirectories. Identifiers are validated and resolved paths are
// guaranteed to stay under the workspace root.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var identRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ValidIdent reports whether s is a legal channel or project identifier.
func ValidIdent(s string) bool {
	return s != "" && identRe.MatchString(s)
}

// Layout is the workspace root all task files live under.
type Layout struct {
	root string
}

// New creates a Layout rooted at dir, creating it if needed.
func New(dir string) (*Layout, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving workspace root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("creating workspace root: %w", err)
	}
	return &Layout{root: abs}, nil
}

// Root returns the absolute workspace root.
func (l *Layout) Root() string { return l.root }

// Project resolves the directory handle for one task. Both identifiers
// must match ^[a-zA-Z0-9_-]+$ and the resolved path must remain under the
// workspace root; violators are rejected.
func (l *Layout) Project(channelID, projectID string) (*Project, error) {
	if !ValidIdent(channelID) {
		return nil, fmt.Errorf("invalid channel id %q", channelID)
	}
	if !ValidIdent(projectID) {
		return nil, fmt.Errorf("invalid project id %q", projectID)
	}
	dir := filepath.Clean(filepath.Join(l.root, "channels", channelID, "projects", projectID))
	if !strings.HasPrefix(dir, l.root+string(filepath.Separator)) {
		return nil, fmt.Errorf("path %q escapes workspace root", dir)
	}
	return &Project{dir: dir}, nil
}

// Project is the per-task directory tree.
type Project struct {
	dir string
}

// Dir returns the project root directory.
func (p *Project) Dir() string { return p.dir }

// EnsureDirs creates the full per-stage directory tree.
func (p *Project) EnsureDirs() error {
	for _, sub := range []string{
		"assets",
		filepath.Join("assets", "composites"),
		"videos",
		"audio",
		"sfx",
	} {
		if err := os.MkdirAll(filepath.Join(p.dir, sub), 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", sub, err)
		}
	}
	return nil
}

// AssetPath returns the output path for asset i (1-based).
func (p *Project) AssetPath(i int) string {
	return filepath.Join(p.dir, "assets", fmt.Sprintf("asset_%03d.png", i))
}

// CompositePath returns the output path for composite i (1-based).
func (p *Project) CompositePath(i int) string {
	return filepath.Join(p.dir, "assets", "composites", fmt.Sprintf("composite_%03d.png", i))
}

// ClipPath returns the output path for video clip i (1-based).
func (p *Project) ClipPath(i int) string {
	return filepath.Join(p.dir, "videos", fmt.Sprintf("clip_%03d.mp4", i))
}

// NarrationPath returns the output path for narration clip i (1-based).
func (p *Project) NarrationPath(i int) string {
	return filepath.Join(p.dir, "audio", fmt.Sprintf("narration_%03d.mp3", i))
}

// SFXPath returns the output path for SFX clip i (1-based).
func (p *Project) SFXPath(i int) string {
	return filepath.Join(p.dir, "sfx", fmt.Sprintf("sfx_%03d.mp3", i))
}

// FinalPath returns the assembled MP4 path at the project root.
func (p *Project) FinalPath() string {
	return filepath.Join(p.dir, "final.mp4")
}

// ManifestPath returns the assembly manifest path.
func (p *Project) ManifestPath() string {
	return filepath.Join(p.dir, "assembly_manifest.json")
}

// FileReady reports whether path exists and is non-empty. This is the
// single definition of "output verified on storage" used by the driver
// and the resume ledger.
func FileReady(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular() && info.Size() > 0
}
