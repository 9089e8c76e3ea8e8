package contour

import "footmetric/internal/edge"

// Point is a 2D pixel coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Contour is an ordered sequence of points tracing a connected
// boundary. Collinear intermediate points are omitted; the remaining
// points still describe the same path because every omitted step lies
// on the straight segment between its neighbors.
type Contour []Point

// minComponentSize filters out speckle noise: connected components
// with fewer edge pixels than this are not turned into contours.
const minComponentSize = 10

// Moore neighborhood in clockwise order starting west, for a
// coordinate system with Y growing downward.
var moore = [8]Point{
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
}

// Find groups the edge pixels of a map into 8-connected components and
// traces each component's outer boundary into an ordered contour.
// Contours nested inside another contour's bounding box are discarded,
// keeping only outermost boundaries. An edge map with no edges yields
// an empty slice, not an error.
func Find(m *edge.Map) []Contour {
	visited := make([]bool, m.Width*m.Height)
	contours := make([]Contour, 0)

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if !m.At(x, y) || visited[y*m.Width+x] {
				continue
			}
			component := collect(m, visited, x, y)
			if len(component) < minComponentSize {
				continue
			}
			// Scan order guarantees (x, y) is the component's
			// topmost-leftmost pixel, the canonical trace start.
			contours = append(contours, simplify(trace(component, Point{x, y})))
		}
	}

	return dropNested(contours)
}

// collect flood-fills an 8-connected component starting at (x, y),
// marking its pixels visited. Iterative to keep large components off
// the call stack.
func collect(m *edge.Map, visited []bool, x, y int) map[Point]bool {
	component := make(map[Point]bool)
	stack := []Point{{x, y}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !m.At(p.X, p.Y) || visited[p.Y*m.Width+p.X] {
			continue
		}
		visited[p.Y*m.Width+p.X] = true
		component[p] = true

		for _, d := range moore {
			n := Point{p.X + d.X, p.Y + d.Y}
			if m.At(n.X, n.Y) && !visited[n.Y*m.Width+n.X] {
				stack = append(stack, n)
			}
		}
	}

	return component
}

// trace walks the outer boundary of a component with Moore neighbor
// tracing, starting at its topmost-leftmost pixel and proceeding
// clockwise. The walk stops when it returns to the start.
func trace(component map[Point]bool, start Point) Contour {
	path := Contour{start}
	if len(component) == 1 {
		return path
	}

	cur := start
	// The start pixel was found in row-major scan order, so its west
	// neighbor is outside the component; begin the clockwise search
	// there.
	dir := 0
	for limit := 4 * len(component); limit > 0; limit-- {
		found := -1
		for j := 0; j < 8; j++ {
			d := (dir + j) % 8
			n := Point{cur.X + moore[d].X, cur.Y + moore[d].Y}
			if component[n] {
				found = d
				cur = n
				break
			}
		}
		if found < 0 || cur == start {
			break
		}
		path = append(path, cur)
		// Resume the search from the neighbor just before the one we
		// arrived from.
		dir = (found + 6) % 8
	}

	return path
}

// simplify removes intermediate points of straight runs. Steps along a
// traced boundary are unit moves, so a point is redundant exactly when
// the step into it equals the step out of it.
func simplify(c Contour) Contour {
	if len(c) < 3 {
		return c
	}
	out := Contour{c[0]}
	for i := 1; i < len(c)-1; i++ {
		in := Point{c[i].X - c[i-1].X, c[i].Y - c[i-1].Y}
		outStep := Point{c[i+1].X - c[i].X, c[i+1].Y - c[i].Y}
		if in != outStep {
			out = append(out, c[i])
		}
	}
	return append(out, c[len(c)-1])
}

// dropNested discards contours whose extent lies strictly inside
// another contour's extent. With edge-map input this matches the
// outer-boundaries-only behavior expected for a solid subject: the
// inner rim of a ring-shaped boundary adds nothing.
func dropNested(contours []Contour) []Contour {
	if len(contours) < 2 {
		return contours
	}

	type extent struct{ minX, minY, maxX, maxY int }
	extents := make([]extent, len(contours))
	for i, c := range contours {
		e := extent{c[0].X, c[0].Y, c[0].X, c[0].Y}
		for _, p := range c {
			if p.X < e.minX {
				e.minX = p.X
			}
			if p.X > e.maxX {
				e.maxX = p.X
			}
			if p.Y < e.minY {
				e.minY = p.Y
			}
			if p.Y > e.maxY {
				e.maxY = p.Y
			}
		}
		extents[i] = e
	}

	outer := make([]Contour, 0, len(contours))
	for i := range contours {
		nested := false
		for j := range contours {
			if i == j {
				continue
			}
			if extents[i].minX > extents[j].minX && extents[i].maxX < extents[j].maxX &&
				extents[i].minY > extents[j].minY && extents[i].maxY < extents[j].maxY {
				nested = true
				break
			}
		}
		if !nested {
			outer = append(outer, contours[i])
		}
	}
	return outer
}
