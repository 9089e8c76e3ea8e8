package pixel

import "image"

// Grayscale converts a decoded image to a single-channel intensity grid
// using ITU-R BT.601 luminance weights:
//
//	Y = 0.299*R + 0.587*G + 0.114*B
//
// The output grid has exactly the dimensions of the input. Returns
// ErrEmptyImage when the image has zero width or height.
func Grayscale(img image.Image) (*Grid, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	g, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, gr, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// Convert to 8-bit and compute luminance
			g.Set(x, y, 0.299*float64(r>>8)+0.587*float64(gr>>8)+0.114*float64(b>>8))
		}
	}

	return g, nil
}
