package edge

import (
	"image"

	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/histogram"
)

// AutoThresholds derives Canny thresholds from the median luminance of
// an image, using the common 0.66/1.33 rule:
//
//	low  = 0.66 * median
//	high = 1.33 * median (capped at 255)
//
// This adapts detection to overall exposure: bright scenes get higher
// thresholds, dim scenes lower ones. Falls back to DefaultLow and
// DefaultHigh when the image is degenerate or so uniform that the rule
// produces an unusable pair.
func AutoThresholds(img image.Image) (low, high float64) {
	gray := effect.Grayscale(img)
	hist := histogram.NewRGBAHistogram(gray)

	// After Grayscale the channels are equal; the R cumulative
	// histogram is the luminance distribution.
	cum := hist.R.Cumulative()
	total := cum.Bins[len(cum.Bins)-1]
	if total == 0 {
		return DefaultLow, DefaultHigh
	}

	half := (total + 1) / 2
	median := 0
	for i, v := range cum.Bins {
		if v >= half {
			median = i
			break
		}
	}

	low = 0.66 * float64(median)
	high = 1.33 * float64(median)
	if high > 255 {
		high = 255
	}
	if low < 1 || high <= low {
		return DefaultLow, DefaultHigh
	}
	return low, high
}
