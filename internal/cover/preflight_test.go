package cover

import (
	"image"
	"image/color"
	"testing"
)

func TestPreflight_SolidImage(t *testing.T) {
	img := createSolidImage(60, 40, color.RGBA{200, 30, 30, 255})

	reports := Preflight(img, 5)

	if len(reports) != 4 {
		t.Fatalf("report count: got %d, want 4", len(reports))
	}

	seen := map[string]bool{}
	for _, rep := range reports {
		seen[rep.Edge] = true
		if rep.MaxDistance != 0 {
			t.Errorf("%s edge: spread %v on a solid image, want 0", rep.Edge, rep.MaxDistance)
		}
		if rep.MeanHex == "" {
			t.Errorf("%s edge: empty mean color", rep.Edge)
		}
	}

	for _, edge := range []string{"left", "right", "top", "bottom"} {
		if !seen[edge] {
			t.Errorf("missing report for %s edge", edge)
		}
	}
}

func TestPreflight_NonUniformEdge(t *testing.T) {
	// Left half black, right half white: left and right strips are solid
	// but top and bottom strips span both colors.
	img := image.NewRGBA(image.Rect(0, 0, 60, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 60; x++ {
			c := color.RGBA{0, 0, 0, 255}
			if x >= 30 {
				c = color.RGBA{255, 255, 255, 255}
			}
			img.Set(x, y, c)
		}
	}

	byEdge := map[string]EdgeReport{}
	for _, rep := range Preflight(img, 5) {
		byEdge[rep.Edge] = rep
	}

	if byEdge["left"].MaxDistance != 0 {
		t.Errorf("left edge: spread %v, want 0", byEdge["left"].MaxDistance)
	}
	if byEdge["right"].MaxDistance != 0 {
		t.Errorf("right edge: spread %v, want 0", byEdge["right"].MaxDistance)
	}
	if byEdge["top"].MaxDistance <= 0.5 {
		t.Errorf("top edge: spread %v, want a large black-to-white distance", byEdge["top"].MaxDistance)
	}
	if byEdge["bottom"].MaxDistance <= 0.5 {
		t.Errorf("bottom edge: spread %v, want a large black-to-white distance", byEdge["bottom"].MaxDistance)
	}
}

func TestPreflight_TransparentImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))

	for _, rep := range Preflight(img, 5) {
		if rep.MaxDistance != 0 {
			t.Errorf("%s edge: spread %v on a fully transparent image, want 0", rep.Edge, rep.MaxDistance)
		}
	}
}
