package pipeline

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	_ "image/jpeg" // branding overlays may be JPEG

	"github.com/reelworks/reelpipe/ent"
	"github.com/reelworks/reelpipe/pkg/workspace"
)

const overlayMargin = 24

// compositeUnit renders composite i by stamping the channel's branding
// overlay onto asset i. Composites run in-process: they are pure pixel
// work with no external service behind them. Without a branding overlay
// the asset passes through re-encoded but otherwise unchanged.
func (o *Orchestrator) compositeUnit(project *workspace.Project, ch *ent.Channel, i int) error {
	src := project.AssetPath(i)
	if !workspace.FileReady(src) {
		return permanentf("asset %d missing, cannot composite", i)
	}
	return renderComposite(src, o.brandingOverlay(ch), project.CompositePath(i))
}

// brandingOverlay resolves the channel's overlay image under the
// workspace root, or "" when the channel has none.
func (o *Orchestrator) brandingOverlay(ch *ent.Channel) string {
	if ch.BrandingDir == nil || *ch.BrandingDir == "" {
		return ""
	}
	path := filepath.Join(o.layout.Root(), filepath.Clean(*ch.BrandingDir), "overlay.png")
	if !workspace.FileReady(path) {
		return ""
	}
	return path
}

// renderComposite draws the overlay bottom-right onto the asset and
// writes the result as PNG.
func renderComposite(assetPath, overlayPath, outPath string) error {
	base, err := decodeImage(assetPath)
	if err != nil {
		return permanentf("decoding asset %s: %v", filepath.Base(assetPath), err)
	}

	canvas := image.NewRGBA(base.Bounds())
	draw.Draw(canvas, canvas.Bounds(), base, base.Bounds().Min, draw.Src)

	if overlayPath != "" {
		overlay, err := decodeImage(overlayPath)
		if err != nil {
			return permanentf("decoding branding overlay: %v", err)
		}
		b := canvas.Bounds()
		ob := overlay.Bounds()
		anchor := image.Pt(b.Max.X-ob.Dx()-overlayMargin, b.Max.Y-ob.Dy()-overlayMargin)
		draw.Draw(canvas, image.Rectangle{Min: anchor, Max: anchor.Add(ob.Size())}, overlay, ob.Min, draw.Over)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating composite: %w", err)
	}
	if err := png.Encode(out, canvas); err != nil {
		out.Close()
		return fmt.Errorf("encoding composite: %w", err)
	}
	return out.Close()
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}
