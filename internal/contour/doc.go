// Package contour groups connected edge pixels into ordered boundary
// paths and selects the candidate most likely to be the measured
// subject.
//
// A Contour is an ordered sequence of points tracing a connected
// boundary; point order is significant (it follows the boundary path),
// while the order of contours relative to each other is not. Only
// outermost boundaries are retained: the subject is assumed to be a
// single solid foreground region, so boundaries nested inside another
// contour carry no additional information and are discarded.
//
// Selection is by enclosed area (shoelace formula). "Largest contour
// wins" is a policy choice, not a property of the domain; scenes with
// several legitimate subjects are not specially handled.
package contour
