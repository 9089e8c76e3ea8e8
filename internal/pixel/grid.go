package pixel

import "errors"

// ErrEmptyImage is returned when an input has zero width or height.
var ErrEmptyImage = errors.New("image has no pixels")

// Grid is a single-channel intensity raster. Values are float64 in the
// 0-255 range, stored row-major.
type Grid struct {
	Width  int
	Height int
	Pix    []float64
}

// NewGrid allocates a zeroed grid of the given dimensions.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyImage
	}
	return &Grid{
		Width:  width,
		Height: height,
		Pix:    make([]float64, width*height),
	}, nil
}

// At returns the intensity at (x, y). Coordinates must be in bounds.
func (g *Grid) At(x, y int) float64 {
	return g.Pix[y*g.Width+x]
}

// Set stores an intensity at (x, y). Coordinates must be in bounds.
func (g *Grid) Set(x, y int, v float64) {
	g.Pix[y*g.Width+x] = v
}

// atClamped reads (x, y) with replicated borders.
func (g *Grid) atClamped(x, y int) float64 {
	return g.Pix[clamp(y, 0, g.Height-1)*g.Width+clamp(x, 0, g.Width-1)]
}

// clamp constrains an integer value to the range [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
