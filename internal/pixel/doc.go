// Package pixel provides the intensity-grid representation and the
// preprocessing steps that run before edge detection.
//
// A Grid is a single-channel grayscale raster with float64 intensities
// in the 0-255 range. Grids are produced fresh by every operation;
// nothing in this package mutates its input, so values can be shared
// freely across goroutines.
//
// # Coordinate System
//
// All coordinates are 0-based with the origin at the top-left corner:
// X increases rightward, Y increases downward. Every operation
// preserves the dimensions of its input.
//
// # Border Handling
//
// Convolutions use clamped (replicated) border values, so output grids
// always have exactly the same width and height as their source.
package pixel
