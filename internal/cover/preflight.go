package cover

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"
)

// EdgeReport describes the color uniformity of one outer edge strip.
type EdgeReport struct {
	// Edge is "left", "right", "top" or "bottom".
	Edge string `json:"edge"`

	// MeanHex is the strip's mean color in "#RRGGBB" form.
	MeanHex string `json:"mean_hex"`

	// MaxDistance is the largest CIE Lab distance of any strip pixel from
	// the mean color. 0 means the strip is a single solid color.
	MaxDistance float64 `json:"max_distance"`
}

// Preflight measures how uniform the four outer edge strips of an image are.
//
// Bleed margin is synthesized by stretching these strips, so a strip with a
// large perceptual spread produces a visible smear in the margin. Callers
// typically warn when MaxDistance crosses a threshold; preflight itself never
// fails.
func Preflight(img image.Image, samplePx int) []EdgeReport {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	if samplePx > w {
		samplePx = w
	}
	if samplePx > h {
		samplePx = h
	}

	strips := []struct {
		edge string
		rect image.Rectangle
	}{
		{"left", image.Rect(0, 0, samplePx, h)},
		{"right", image.Rect(w-samplePx, 0, w, h)},
		{"top", image.Rect(0, 0, w, samplePx)},
		{"bottom", image.Rect(0, h-samplePx, w, h)},
	}

	reports := make([]EdgeReport, 0, len(strips))
	for _, s := range strips {
		reports = append(reports, measureStrip(img, s.edge, s.rect))
	}
	return reports
}

func measureStrip(img image.Image, edge string, rect image.Rectangle) EdgeReport {
	var sumR, sumG, sumB float64
	n := 0
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				// fully transparent pixel, nothing to measure
				continue
			}
			sumR += c.R
			sumG += c.G
			sumB += c.B
			n++
		}
	}
	if n == 0 {
		return EdgeReport{Edge: edge}
	}

	mean := colorful.Color{R: sumR / float64(n), G: sumG / float64(n), B: sumB / float64(n)}

	var maxDist float64
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				continue
			}
			if d := mean.DistanceLab(c); d > maxDist {
				maxDist = d
			}
		}
	}

	return EdgeReport{Edge: edge, MeanHex: mean.Hex(), MaxDistance: maxDist}
}
