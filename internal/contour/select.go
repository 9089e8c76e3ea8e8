package contour

import "math"

// Area returns the area enclosed by a contour's ordered points, via
// the shoelace formula. Open curves that enclose nothing (straight
// segments, single points) have near-zero area.
func Area(c Contour) float64 {
	if len(c) < 3 {
		return 0
	}
	var sum float64
	for i, p := range c {
		q := c[(i+1)%len(c)]
		sum += float64(p.X)*float64(q.Y) - float64(q.X)*float64(p.Y)
	}
	return math.Abs(sum) / 2
}

// SelectLargest returns the contour with the maximal enclosed area,
// the policy for picking the measured subject among candidates. Ties
// go to the first contour encountered; the ordering is deterministic
// (edge-map scan order) but carries no meaning. Returns false when no
// contours were found, which is the sole "no measurable object"
// trigger.
func SelectLargest(contours []Contour) (Contour, bool) {
	if len(contours) == 0 {
		return nil, false
	}
	best := 0
	bestArea := Area(contours[0])
	for i := 1; i < len(contours); i++ {
		if a := Area(contours[i]); a > bestArea {
			best = i
			bestArea = a
		}
	}
	return contours[best], true
}
