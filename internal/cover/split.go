package cover

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Panels holds the three vertical sections of a flattened book cover, in
// left-to-right order.
type Panels struct {
	Back  *image.NRGBA
	Spine *image.NRGBA
	Front *image.NRGBA
}

// Split cuts a composite cover image into back, spine and front panels.
//
// backWidth and frontWidth are pixel widths measured inward from the left
// and right edges of the image; the spine is whatever remains between them.
// The three panels tile the source exactly: concatenating them left to right
// reproduces the input pixel for pixel.
func Split(img image.Image, backWidth, frontWidth int) (*Panels, error) {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	spineWidth := w - backWidth - frontWidth
	frontOffset := w - frontWidth

	back, err := crop(img, 0, 0, backWidth, h)
	if err != nil {
		return nil, fmt.Errorf("back panel: %w", err)
	}

	spine, err := crop(img, backWidth, 0, backWidth+spineWidth, h)
	if err != nil {
		return nil, fmt.Errorf("spine panel: %w", err)
	}

	front, err := crop(img, frontOffset, 0, w, h)
	if err != nil {
		return nil, fmt.Errorf("front panel: %w", err)
	}

	return &Panels{Back: back, Spine: spine, Front: front}, nil
}

// crop extracts a rectangular region from an image, validating that the
// region lies inside the source bounds.
func crop(img image.Image, x1, y1, x2, y2 int) (*image.NRGBA, error) {
	bounds := img.Bounds()
	if x1 < bounds.Min.X || y1 < bounds.Min.Y || x2 > bounds.Max.X || y2 > bounds.Max.Y {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			x1, y1, x2, y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	if x1 >= x2 || y1 >= y2 {
		return nil, fmt.Errorf("invalid crop region: x1 must be < x2, y1 must be < y2")
	}

	return imaging.Crop(img, image.Rect(x1, y1, x2, y2)), nil
}
