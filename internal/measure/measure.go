// Package measure converts a selected contour into a physical length
// via a fixed pixel-to-length conversion factor.
package measure

import (
	"math"

	"footmetric/internal/contour"
)

// BoundingBox is the minimal axis-aligned rectangle enclosing a
// contour's points.
type BoundingBox struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Measurement is the physical size derived from a contour. Length is
// in the unit implied by the conversion factor (centimeters in this
// service) and is always derived from the bounding-box width; the
// height is carried for diagnostics only. Reporting only the width
// axis assumes a canonical camera orientation with the subject's long
// axis horizontal - a known limitation, not a bug.
type Measurement struct {
	Length   float64     `json:"length"`
	WidthPx  int         `json:"width_px"`
	HeightPx int         `json:"height_px"`
	Box      BoundingBox `json:"box"`
}

// Bound computes the axis-aligned bounding box of a contour via
// min/max of its coordinates. The contour must be non-empty.
func Bound(c contour.Contour) BoundingBox {
	minX, maxX := c[0].X, c[0].X
	minY, maxY := c[0].Y, c[0].Y
	for _, p := range c {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return BoundingBox{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Measure converts a contour's pixel extent to a physical length:
// bounding-box width times the conversion factor, rounded to two
// decimals. A present contour always yields a measurement; the
// no-contour case is handled by the caller.
func Measure(c contour.Contour, factor float64) Measurement {
	box := Bound(c)
	return Measurement{
		Length:   math.Round(float64(box.Width)*factor*100) / 100,
		WidthPx:  box.Width,
		HeightPx: box.Height,
		Box:      box,
	}
}
