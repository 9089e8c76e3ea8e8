// Package edge locates high-gradient boundaries in an intensity grid,
// producing a binary edge map via Canny-style detection: Sobel
// gradients, non-maximum suppression across the gradient direction,
// and two-threshold hysteresis.
package edge

import (
	"math"

	"footmetric/internal/pixel"
)

// Default Canny thresholds, in the 0-255 intensity scale.
const (
	DefaultLow  = 50
	DefaultHigh = 150
)

// Map is a binary edge map. A set pixel marks a detected edge.
type Map struct {
	Width  int
	Height int
	edges  []bool
}

// NewMap allocates an empty edge map of the given dimensions.
func NewMap(width, height int) *Map {
	return &Map{
		Width:  width,
		Height: height,
		edges:  make([]bool, width*height),
	}
}

// At reports whether (x, y) is an edge pixel. Out-of-bounds
// coordinates are never edges.
func (m *Map) At(x, y int) bool {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return false
	}
	return m.edges[y*m.Width+x]
}

// Set marks or clears the edge bit at (x, y). Coordinates must be in
// bounds.
func (m *Map) Set(x, y int, v bool) {
	m.edges[y*m.Width+x] = v
}

// Count returns the number of edge pixels in the map.
func (m *Map) Count() int {
	n := 0
	for _, e := range m.edges {
		if e {
			n++
		}
	}
	return n
}

// Detect runs Canny edge detection over a smoothed intensity grid.
//
// Gradients are computed with 3x3 Sobel operators; non-maximum
// suppression thins edges to single-pixel width by keeping only local
// maxima along the gradient direction; hysteresis then classifies
// pixels: magnitude >= high is always an edge, and magnitude >= low
// becomes an edge when 8-connected (directly or through other weak
// pixels) to a strong edge. The transitive walk is what keeps a single
// physical boundary from fragmenting where its contrast dips.
//
// Thresholds are in the 0-255 intensity scale and must satisfy
// 0 < low < high. The output map has the grid's dimensions; border
// pixels are never edges.
func Detect(g *pixel.Grid, low, high float64) *Map {
	width := g.Width
	height := g.Height

	magnitude, direction := sobel(g)
	suppressed := suppress(magnitude, direction, width, height)

	m := NewMap(width, height)

	// Seed with strong edges, then grow through connected weak pixels.
	queue := make([][2]int, 0, width)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if suppressed.At(x, y) >= high {
				m.Set(x, y, true)
				queue = append(queue, [2]int{x, y})
			}
		}
	}

	for len(queue) > 0 {
		p := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := p[0]+dx, p[1]+dy
				if nx < 0 || nx >= width || ny < 0 || ny >= height {
					continue
				}
				if !m.At(nx, ny) && suppressed.At(nx, ny) >= low {
					m.Set(nx, ny, true)
					queue = append(queue, [2]int{nx, ny})
				}
			}
		}
	}

	return m
}

// sobel computes gradient magnitude and direction with 3x3 Sobel
// operators, using clamped borders.
func sobel(g *pixel.Grid) (magnitude, direction *pixel.Grid) {
	sobelX := [3][3]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY := [3][3]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}

	magnitude, _ = pixel.NewGrid(g.Width, g.Height)
	direction, _ = pixel.NewGrid(g.Width, g.Height)

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			var gx, gy float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					px := clamp(x+kx, 0, g.Width-1)
					py := clamp(y+ky, 0, g.Height-1)
					gx += g.At(px, py) * sobelX[ky+1][kx+1]
					gy += g.At(px, py) * sobelY[ky+1][kx+1]
				}
			}
			magnitude.Set(x, y, math.Sqrt(gx*gx+gy*gy))
			direction.Set(x, y, math.Atan2(gy, gx))
		}
	}

	return magnitude, direction
}

// suppress performs non-maximum suppression: a pixel survives only if
// its gradient magnitude is a local maximum along the gradient
// direction, quantized to one of four sectors. Border pixels are
// always suppressed.
func suppress(magnitude, direction *pixel.Grid, width, height int) *pixel.Grid {
	out, _ := pixel.NewGrid(width, height)

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			angle := direction.At(x, y)
			mag := magnitude.At(x, y)

			var n1, n2 float64
			switch {
			case (angle >= -math.Pi/8 && angle < math.Pi/8) || angle >= 7*math.Pi/8 || angle < -7*math.Pi/8:
				n1 = magnitude.At(x-1, y)
				n2 = magnitude.At(x+1, y)
			case (angle >= math.Pi/8 && angle < 3*math.Pi/8) || (angle >= -7*math.Pi/8 && angle < -5*math.Pi/8):
				n1 = magnitude.At(x+1, y-1)
				n2 = magnitude.At(x-1, y+1)
			case (angle >= 3*math.Pi/8 && angle < 5*math.Pi/8) || (angle >= -5*math.Pi/8 && angle < -3*math.Pi/8):
				n1 = magnitude.At(x, y-1)
				n2 = magnitude.At(x, y+1)
			default:
				n1 = magnitude.At(x-1, y-1)
				n2 = magnitude.At(x+1, y+1)
			}

			if mag >= n1 && mag >= n2 {
				out.Set(x, y, mag)
			}
		}
	}

	return out
}

func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
