package pixel

import (
	"fmt"
	"math"
)

// Smooth applies a Gaussian blur with a square kernel of the given size
// and standard deviation, suppressing high-frequency noise before edge
// detection. The kernel is separable, so the blur runs as a horizontal
// pass followed by a vertical pass over the same 1D kernel.
//
// kernelSize must be odd and at least 3; sigma must be positive. The
// output is a new grid with the same dimensions as the input.
func Smooth(g *Grid, kernelSize int, sigma float64) (*Grid, error) {
	if g == nil || g.Width <= 0 || g.Height <= 0 {
		return nil, ErrEmptyImage
	}
	if kernelSize < 3 || kernelSize%2 == 0 {
		return nil, fmt.Errorf("kernel size must be odd and >= 3, got %d", kernelSize)
	}
	if sigma <= 0 {
		return nil, fmt.Errorf("sigma must be positive, got %g", sigma)
	}

	kernel := gaussianKernel(kernelSize, sigma)
	radius := kernelSize / 2

	horizontal, _ := NewGrid(g.Width, g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			var sum float64
			for k := -radius; k <= radius; k++ {
				sum += g.atClamped(x+k, y) * kernel[k+radius]
			}
			horizontal.Set(x, y, sum)
		}
	}

	out, _ := NewGrid(g.Width, g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			var sum float64
			for k := -radius; k <= radius; k++ {
				sum += horizontal.atClamped(x, y+k) * kernel[k+radius]
			}
			out.Set(x, y, sum)
		}
	}

	return out, nil
}

// gaussianKernel builds a normalized 1D Gaussian kernel. The weights
// sum to 1, so blurring a uniform grid leaves it unchanged.
func gaussianKernel(size int, sigma float64) []float64 {
	kernel := make([]float64, size)
	radius := size / 2
	var sum float64
	for i := -radius; i <= radius; i++ {
		v := math.Exp(-float64(i*i) / (2 * sigma * sigma))
		kernel[i+radius] = v
		sum += v
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}
