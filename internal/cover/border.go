package cover

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// StretchBorder grows an image by borderPx on every side and fills the new
// margin from the image itself: each edge contributes a samplePx-wide strip
// that is resampled along the growth axis only, and the four corner squares
// are flat fills of the nearest original corner pixel.
//
// Stretching is one-dimensional. The left strip keeps its row content and is
// widened to borderPx; the top strip keeps its column content and is made
// borderPx tall. samplePx is clamped to the image dimensions.
//
// With borderPx == 0 the result is a plain copy of the input.
func StretchBorder(img image.Image, borderPx, samplePx int) *image.NRGBA {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	if samplePx > w {
		samplePx = w
	}
	if samplePx > h {
		samplePx = h
	}

	out := imaging.New(w+2*borderPx, h+2*borderPx, color.NRGBA{0, 0, 0, 255})
	out = imaging.Paste(out, img, image.Pt(borderPx, borderPx))

	if borderPx == 0 {
		return out
	}

	left := imaging.Resize(imaging.Crop(img, image.Rect(0, 0, samplePx, h)), borderPx, h, imaging.Lanczos)
	right := imaging.Resize(imaging.Crop(img, image.Rect(w-samplePx, 0, w, h)), borderPx, h, imaging.Lanczos)
	top := imaging.Resize(imaging.Crop(img, image.Rect(0, 0, w, samplePx)), w, borderPx, imaging.Lanczos)
	bottom := imaging.Resize(imaging.Crop(img, image.Rect(0, h-samplePx, w, h)), w, borderPx, imaging.Lanczos)

	out = imaging.Paste(out, left, image.Pt(0, borderPx))
	out = imaging.Paste(out, right, image.Pt(w+borderPx, borderPx))
	out = imaging.Paste(out, top, image.Pt(borderPx, 0))
	out = imaging.Paste(out, bottom, image.Pt(borderPx, h+borderPx))

	// Corner squares get a solid fill of the nearest corner pixel, not a
	// two-axis stretch.
	topLeft := img.At(bounds.Min.X, bounds.Min.Y)
	topRight := img.At(bounds.Max.X-1, bounds.Min.Y)
	bottomLeft := img.At(bounds.Min.X, bounds.Max.Y-1)
	bottomRight := img.At(bounds.Max.X-1, bounds.Max.Y-1)

	out = imaging.Paste(out, imaging.New(borderPx, borderPx, topLeft), image.Pt(0, 0))
	out = imaging.Paste(out, imaging.New(borderPx, borderPx, topRight), image.Pt(w+borderPx, 0))
	out = imaging.Paste(out, imaging.New(borderPx, borderPx, bottomLeft), image.Pt(0, h+borderPx))
	out = imaging.Paste(out, imaging.New(borderPx, borderPx, bottomRight), image.Pt(w+borderPx, h+borderPx))

	return out
}
