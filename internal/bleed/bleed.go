package bleed

import (
	"fmt"
	"image"
	"log"
	"math"
	"os"

	"github.com/disintegration/imaging"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Offsets are pixel distances from the MediaBox edges to the corresponding
// BleedBox edges.
type Offsets struct {
	Left   int
	Bottom int
	Right  int
	Top    int
}

// scaleTolerance bounds the allowed difference between the horizontal and
// vertical pixel-to-unit factors. Both factors come from the same rendering
// step and must agree; a larger difference means the page geometry does not
// match the raster that produced it.
const scaleTolerance = 1e-9

// Write renders img as a single-page PDF at the given resolution, attaches a
// BleedBox derived from the pixel offsets, and writes the result to outPath.
//
// fullWidthPx and fullHeightPx are the pixel dimensions the caller believes
// the image has; they anchor the pixel-to-unit conversion. A rendered page
// count other than one, or unit factors that disagree beyond scaleTolerance,
// abort with an error before outPath is written. Temporary render artifacts
// are removed on all exit paths.
func Write(img image.Image, dpi int, outPath string, fullWidthPx, fullHeightPx int, off Offsets) error {
	tmpPNG, err := os.CreateTemp("", "cover-*.png")
	if err != nil {
		return fmt.Errorf("failed to create temp image file: %w", err)
	}
	tmpPNG.Close()
	defer os.Remove(tmpPNG.Name())

	if err := imaging.Save(img, tmpPNG.Name()); err != nil {
		return fmt.Errorf("failed to encode temp image: %w", err)
	}

	tmpPDF, err := os.CreateTemp("", "cover-*.pdf")
	if err != nil {
		return fmt.Errorf("failed to create temp PDF file: %w", err)
	}
	tmpPDF.Close()
	// Reserve the name only: an existing output file switches the import
	// into append mode, which cannot parse an empty PDF.
	os.Remove(tmpPDF.Name())
	defer os.Remove(tmpPDF.Name())

	// Page dimensions in points follow from the pixel size at the given
	// resolution; the image fills the page exactly.
	b := img.Bounds()
	pageW := float64(b.Dx()) * 72 / float64(dpi)
	pageH := float64(b.Dy()) * 72 / float64(dpi)
	imp, err := api.Import(fmt.Sprintf("dim:%f %f, pos:c, scalefactor:1.0 abs", pageW, pageH), types.POINTS)
	if err != nil {
		return fmt.Errorf("failed to parse import config: %w", err)
	}
	if err := api.ImportImagesFile([]string{tmpPNG.Name()}, tmpPDF.Name(), imp, nil); err != nil {
		return fmt.Errorf("failed to render image to PDF: %w", err)
	}

	ctx, err := api.ReadContextFile(tmpPDF.Name())
	if err != nil {
		return fmt.Errorf("failed to read rendered PDF: %w", err)
	}
	if ctx.PageCount != 1 {
		return fmt.Errorf("rendered PDF has %d pages, want exactly 1", ctx.PageCount)
	}

	pbs, err := ctx.PageBoundaries(nil)
	if err != nil {
		return fmt.Errorf("failed to read page boundaries: %w", err)
	}
	mediaBox := pbs[0].MediaBox()

	unitPerPx := mediaBox.Width() / float64(fullWidthPx)
	vertical := mediaBox.Height() / float64(fullHeightPx)
	if math.Abs(unitPerPx-vertical) > scaleTolerance {
		return fmt.Errorf("non-uniform pixel-to-unit scale: horizontal %v, vertical %v", unitPerPx, vertical)
	}
	log.Printf("unit per pixel: %v", unitPerPx)

	bleedBox := Rect(mediaBox, unitPerPx, off)
	log.Printf("bleed box: %v", bleedBox)

	pb := &model.PageBoundaries{Bleed: &model.Box{Rect: bleedBox}}
	if err := api.AddBoxesFile(tmpPDF.Name(), outPath, nil, pb, nil); err != nil {
		return fmt.Errorf("failed to write bleed box: %w", err)
	}

	log.Printf("bleed box added and saved to %s", outPath)
	return nil
}

// Rect places a BleedBox inside mediaBox using the pixel offsets and the
// pixel-to-unit factor k.
//
// Top is applied against the lower media edge and Bottom against the upper
// one. The per-panel offsets in the pipeline are defined against this
// orientation, so the two must change together.
func Rect(mediaBox *types.Rectangle, k float64, off Offsets) *types.Rectangle {
	return types.NewRectangle(
		mediaBox.LL.X+float64(off.Left)*k,
		mediaBox.LL.Y+float64(off.Top)*k,
		mediaBox.UR.X-float64(off.Right)*k,
		mediaBox.UR.Y-float64(off.Bottom)*k,
	)
}
