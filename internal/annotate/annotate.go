// Package annotate renders diagnostic overlays for measured images:
// every candidate contour in a distinct color plus the winning
// bounding box.
package annotate

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	colorful "github.com/lucasb-eyer/go-colorful"

	"footmetric/internal/contour"
	"footmetric/internal/measure"
)

// boxColor outlines the winning bounding box.
var boxColor = color.RGBA{R: 255, A: 255}

// OverlayResult contains the annotated image encoded as base64 PNG.
type OverlayResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Overlay draws the candidate contours and the winning bounding box
// onto a copy of the source image. Each contour gets a distinct
// palette color so overlapping candidates stay distinguishable. The
// winner box may be nil when nothing was selected.
func Overlay(img image.Image, contours []contour.Contour, winner *measure.BoundingBox) (*OverlayResult, error) {
	bounds := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(out, out.Bounds(), img, bounds.Min, draw.Src)

	palette := colorful.FastHappyPalette(len(contours))
	for i, c := range contours {
		r, g, b := palette[i].RGB255()
		col := color.RGBA{R: r, G: g, B: b, A: 255}
		for _, p := range c {
			if p.X >= 0 && p.X < out.Rect.Dx() && p.Y >= 0 && p.Y < out.Rect.Dy() {
				out.Set(p.X, p.Y, col)
			}
		}
	}

	if winner != nil {
		drawBox(out, *winner)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode overlay: %w", err)
	}

	return &OverlayResult{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// drawBox outlines a bounding box, clipped to the image.
func drawBox(img *image.RGBA, box measure.BoundingBox) {
	x2 := box.X + box.Width
	y2 := box.Y + box.Height
	for x := box.X; x <= x2; x++ {
		setClipped(img, x, box.Y)
		setClipped(img, x, y2)
	}
	for y := box.Y; y <= y2; y++ {
		setClipped(img, box.X, y)
		setClipped(img, x2, y)
	}
}

func setClipped(img *image.RGBA, x, y int) {
	if x >= 0 && x < img.Rect.Dx() && y >= 0 && y < img.Rect.Dy() {
		img.Set(x, y, boxColor)
	}
}
