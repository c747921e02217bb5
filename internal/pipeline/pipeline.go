// Package pipeline orchestrates the full cover conversion: split, rescale,
// recomposite, bleed synthesis, and per-panel PDF output.
package pipeline

import (
	"fmt"
	"image"
	"log"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/frrad/book-cover/internal/bleed"
	"github.com/frrad/book-cover/internal/cover"
)

// Layout describes the press geometry for one cover format.
type Layout struct {
	// BackWidthPx and FrontWidthPx locate the panel boundaries in the
	// scanned source image.
	BackWidthPx  int
	FrontWidthPx int

	// Physical target dimensions in inches.
	CoverWidthIn float64
	HeightIn     float64
	SpineWidthIn float64
	BleedIn      float64

	// DPI is the print resolution used for rescaling and PDF rendering.
	DPI int

	// StretchSamplePx is the width of the edge strip sampled when
	// synthesizing the bleed margin.
	StretchSamplePx int
}

// HalfLetter is the layout for a 5.5in x 8.5in trade paperback with a 0.65in
// spine, scanned at the standard panel boundaries.
var HalfLetter = Layout{
	BackWidthPx:     1630,
	FrontWidthPx:    1625,
	CoverWidthIn:    11 / 2.0,
	HeightIn:        8.5,
	SpineWidthIn:    0.65,
	BleedIn:         0.125,
	DPI:             300,
	StretchSamplePx: 10,
}

// Options controls where the three press PDFs are written.
type Options struct {
	// OutDir is the output directory; empty means the current directory.
	OutDir string

	// File names for the three panels.
	BackFile  string
	SpineFile string
	FrontFile string
}

// DefaultOptions writes back.pdf, spine.pdf and front.pdf to the current
// directory.
func DefaultOptions() Options {
	return Options{
		BackFile:  "back.pdf",
		SpineFile: "spine.pdf",
		FrontFile: "front.pdf",
	}
}

// preflightWarnDistance is the edge-uniformity spread above which a warning
// is logged before the bleed margin is stretched.
const preflightWarnDistance = 0.15

// Run loads the source image and converts it into three press PDFs.
func Run(inPath string, layout Layout, opts Options) error {
	img, err := cover.Load(inPath)
	if err != nil {
		return err
	}
	return Convert(img, layout, opts)
}

// Convert runs the conversion on an already decoded source image.
//
// The image is split at the layout's panel boundaries, each panel is rescaled
// independently to its physical target size at the layout DPI, the panels are
// recomposited, a stretched bleed border is added, and the result is re-split
// at bleed-adjusted widths. Each final panel is written as a single-page PDF
// with a BleedBox that insets only the outward-facing edges; the
// spine-adjacent edges stay flush with the page.
func Convert(img image.Image, layout Layout, opts Options) error {
	panels, err := cover.Split(img, layout.BackWidthPx, layout.FrontWidthPx)
	if err != nil {
		return fmt.Errorf("splitting source image: %w", err)
	}

	coverWidthPx := int(layout.CoverWidthIn * float64(layout.DPI))
	heightPx := int(layout.HeightIn * float64(layout.DPI))
	spineWidthPx := int(layout.SpineWidthIn * float64(layout.DPI))

	back := imaging.Resize(panels.Back, coverWidthPx, heightPx, imaging.Lanczos)
	spine := imaging.Resize(panels.Spine, spineWidthPx, heightPx, imaging.Lanczos)
	front := imaging.Resize(panels.Front, coverWidthPx, heightPx, imaging.Lanczos)

	strip, err := cover.ConcatHorizontal([]image.Image{back, spine, front})
	if err != nil {
		return fmt.Errorf("recompositing panels: %w", err)
	}

	for _, rep := range cover.Preflight(strip, layout.StretchSamplePx) {
		if rep.MaxDistance > preflightWarnDistance {
			log.Printf("preflight: %s edge is not uniform (mean %s, spread %.2f); stretched bleed may smear",
				rep.Edge, rep.MeanHex, rep.MaxDistance)
		}
	}

	bleedPx := int(layout.BleedIn * float64(layout.DPI))
	stretched := cover.StretchBorder(strip, bleedPx, layout.StretchSamplePx)

	withBleed, err := cover.Split(stretched, coverWidthPx+bleedPx, coverWidthPx+bleedPx)
	if err != nil {
		return fmt.Errorf("splitting bordered image: %w", err)
	}

	fullHeightPx := heightPx + 2*bleedPx

	jobs := []struct {
		img         image.Image
		name        string
		fullWidthPx int
		off         bleed.Offsets
	}{
		{withBleed.Back, opts.BackFile, coverWidthPx + bleedPx,
			bleed.Offsets{Left: bleedPx, Bottom: bleedPx, Right: 0, Top: bleedPx}},
		{withBleed.Spine, opts.SpineFile, spineWidthPx,
			bleed.Offsets{Left: 0, Bottom: bleedPx, Right: 0, Top: bleedPx}},
		{withBleed.Front, opts.FrontFile, coverWidthPx + bleedPx,
			bleed.Offsets{Left: 0, Bottom: bleedPx, Right: bleedPx, Top: bleedPx}},
	}

	for _, job := range jobs {
		outPath := job.name
		if opts.OutDir != "" {
			outPath = filepath.Join(opts.OutDir, job.name)
		}
		if err := bleed.Write(job.img, layout.DPI, outPath, job.fullWidthPx, fullHeightPx, job.off); err != nil {
			return fmt.Errorf("%s: %w", job.name, err)
		}
	}

	return nil
}
