package cover

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// ConcatHorizontal joins images left to right into a single image.
//
// All inputs must share the same height; the output width is the sum of the
// input widths. Panels are placed in input order with no gaps or overlaps.
func ConcatHorizontal(imgs []image.Image) (*image.NRGBA, error) {
	if len(imgs) == 0 {
		return nil, fmt.Errorf("no images to concatenate")
	}

	height := imgs[0].Bounds().Dy()
	totalWidth := 0
	for i, img := range imgs {
		if img.Bounds().Dy() != height {
			return nil, fmt.Errorf("image %d has height %d, want %d: all images must have the same height to concatenate horizontally",
				i, img.Bounds().Dy(), height)
		}
		totalWidth += img.Bounds().Dx()
	}

	out := imaging.New(totalWidth, height, color.NRGBA{0, 0, 0, 255})
	x := 0
	for _, img := range imgs {
		out = imaging.Paste(out, img, image.Pt(x, 0))
		x += img.Bounds().Dx()
	}

	return out, nil
}
