package edge

import (
	"image"
	"image/color"
	"testing"

	"footmetric/internal/pixel"
)

// stepGrid builds a grid split into a left and a right intensity.
func stepGrid(width, height int, left, right float64) *pixel.Grid {
	g, _ := pixel.NewGrid(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x < width/2 {
				g.Set(x, y, left)
			} else {
				g.Set(x, y, right)
			}
		}
	}
	return g
}

func TestDetect_BlankGrid(t *testing.T) {
	g, _ := pixel.NewGrid(40, 40)
	for i := range g.Pix {
		g.Pix[i] = 128
	}

	m := Detect(g, 50, 150)

	if m.Width != 40 || m.Height != 40 {
		t.Errorf("dimensions: got %dx%d, want 40x40", m.Width, m.Height)
	}
	if m.Count() != 0 {
		t.Errorf("blank grid produced %d edge pixels, want 0", m.Count())
	}
}

func TestDetect_VerticalStep(t *testing.T) {
	g := stepGrid(40, 40, 0, 255)

	m := Detect(g, 50, 150)

	if m.Count() == 0 {
		t.Fatal("strong vertical step produced no edges")
	}

	// Edges must sit near the step at x=20 and nowhere else.
	for y := 1; y < 39; y++ {
		for x := 1; x < 39; x++ {
			if m.At(x, y) && (x < 18 || x > 22) {
				t.Fatalf("unexpected edge at (%d,%d)", x, y)
			}
		}
	}

	// And the line should span the interior rows.
	for y := 5; y < 35; y++ {
		found := false
		for x := 18; x <= 22; x++ {
			if m.At(x, y) {
				found = true
			}
		}
		if !found {
			t.Fatalf("no edge near the step at row %d", y)
		}
	}
}

func TestDetect_WeakWithoutStrongDropped(t *testing.T) {
	// Step amplitude 10 gives Sobel magnitude 40: above low, below
	// high. Without a strong seed, hysteresis must drop everything.
	g := stepGrid(40, 40, 100, 110)

	m := Detect(g, 30, 150)

	if m.Count() != 0 {
		t.Errorf("weak-only step produced %d edge pixels, want 0", m.Count())
	}
}

func TestDetect_WeakConnectedToStrongKept(t *testing.T) {
	// Rows 0-19 carry a strong step (amplitude 255); rows 20-39 carry
	// a weak one (amplitude 20, magnitude 80). The weak segment is
	// 8-connected to the strong one, so hysteresis must keep it.
	g, _ := pixel.NewGrid(40, 40)
	for y := 0; y < 40; y++ {
		left, right := 0.0, 255.0
		if y >= 20 {
			left, right = 100.0, 120.0
		}
		for x := 0; x < 40; x++ {
			if x < 20 {
				g.Set(x, y, left)
			} else {
				g.Set(x, y, right)
			}
		}
	}

	m := Detect(g, 50, 150)

	// Deep inside the weak region, away from the junction.
	for _, y := range []int{28, 32, 36} {
		if !m.At(19, y) && !m.At(20, y) {
			t.Errorf("weak edge at row %d not kept despite strong connection", y)
		}
	}

	// With low above the weak magnitude the weak segment disappears.
	m = Detect(g, 90, 150)
	for _, y := range []int{28, 32, 36} {
		if m.At(19, y) || m.At(20, y) {
			t.Errorf("weak edge at row %d kept with low threshold above its magnitude", y)
		}
	}
}

func TestDetect_BordersNeverEdges(t *testing.T) {
	g := stepGrid(20, 20, 0, 255)

	m := Detect(g, 50, 150)

	for x := 0; x < 20; x++ {
		if m.At(x, 0) || m.At(x, 19) {
			t.Fatalf("border row edge at x=%d", x)
		}
	}
	for y := 0; y < 20; y++ {
		if m.At(0, y) || m.At(19, y) {
			t.Fatalf("border column edge at y=%d", y)
		}
	}
}

func TestMap_OutOfBounds(t *testing.T) {
	m := NewMap(5, 5)
	m.Set(2, 2, true)

	if m.At(-1, 0) || m.At(0, -1) || m.At(5, 0) || m.At(0, 5) {
		t.Error("out-of-bounds coordinates must never be edges")
	}
	if !m.At(2, 2) {
		t.Error("set pixel not reported")
	}
	if m.Count() != 1 {
		t.Errorf("Count: got %d, want 1", m.Count())
	}
}

func TestAutoThresholds_MixedImage(t *testing.T) {
	// Half black, half mid-gray: median 128 gives a usable pair.
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			c := color.RGBA{A: 255}
			if x >= 10 {
				c = color.RGBA{128, 128, 128, 255}
			}
			img.Set(x, y, c)
		}
	}

	low, high := AutoThresholds(img)

	if low <= 0 || high <= low {
		t.Errorf("got low=%g high=%g, want 0 < low < high", low, high)
	}
	if high > 255 {
		t.Errorf("high=%g exceeds intensity scale", high)
	}
}

func TestAutoThresholds_BlackFallsBack(t *testing.T) {
	// All-black image has median 0; the rule degenerates and the
	// defaults must be used instead.
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.Set(x, y, color.RGBA{A: 255})
		}
	}

	low, high := AutoThresholds(img)

	if low != DefaultLow || high != DefaultHigh {
		t.Errorf("got low=%g high=%g, want defaults %d/%d", low, high, DefaultLow, DefaultHigh)
	}
}

func TestAutoThresholds_WhiteCapped(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.Set(x, y, color.White)
		}
	}

	low, high := AutoThresholds(img)

	if high != 255 {
		t.Errorf("high: got %g, want cap at 255", high)
	}
	if low >= high {
		t.Errorf("got low=%g high=%g, want low < high", low, high)
	}
}
