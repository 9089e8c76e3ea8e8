// Package pipeline sequences the measurement stages: decode,
// grayscale, smoothing, edge detection, contour finding, candidate
// selection, and measurement. A Pipeline is built once at startup and
// is safe for concurrent use; every request runs the stages exactly
// once, and a failure at any stage short-circuits the rest.
package pipeline

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"footmetric/internal/annotate"
	"footmetric/internal/contour"
	"footmetric/internal/edge"
	"footmetric/internal/measure"
	"footmetric/internal/pixel"
)

// Terminal pipeline outcomes, distinguishable with errors.Is.
var (
	// ErrDecode reports that the byte buffer is not a decodable
	// PNG/JPEG image.
	ErrDecode = errors.New("image decode failed")

	// ErrInvalidImage reports an image that decoded but has degenerate
	// dimensions.
	ErrInvalidImage = errors.New("invalid image")

	// ErrNoObject reports that the pipeline ran to completion without
	// finding any contour to measure.
	ErrNoObject = errors.New("no measurable object detected")
)

// Config holds the fixed parameters of the pipeline, loaded once at
// process start and never mutated during a request.
type Config struct {
	// LowThreshold and HighThreshold are the Canny hysteresis
	// thresholds, in the 0-255 intensity scale. Ignored when
	// AutoThreshold is set.
	LowThreshold  float64
	HighThreshold float64

	// AutoThreshold derives thresholds per image from its median
	// luminance instead of using the fixed pair.
	AutoThreshold bool

	// KernelSize and Sigma parameterize the Gaussian smoothing pass.
	KernelSize int
	Sigma      float64

	// ConversionFactor maps one pixel of linear extent to the physical
	// unit (centimeters per pixel in this service). Must be positive.
	ConversionFactor float64

	// MaxDimension caps the longest image side; larger inputs are
	// downscaled before processing and the conversion factor rescaled
	// to compensate. Zero disables downscaling.
	MaxDimension int
}

// DefaultConfig returns the pipeline parameters of the original
// service: 5x5 Gaussian blur, Canny 50/150, 0.2 cm per pixel.
func DefaultConfig() Config {
	return Config{
		LowThreshold:     edge.DefaultLow,
		HighThreshold:    edge.DefaultHigh,
		KernelSize:       5,
		Sigma:            1.4,
		ConversionFactor: 0.2,
		MaxDimension:     2000,
	}
}

// Pipeline runs the measurement stages with a fixed configuration.
type Pipeline struct {
	cfg Config
}

// New validates the configuration and builds a pipeline.
func New(cfg Config) (*Pipeline, error) {
	if cfg.ConversionFactor <= 0 {
		return nil, fmt.Errorf("conversion factor must be positive, got %g", cfg.ConversionFactor)
	}
	if cfg.KernelSize < 3 || cfg.KernelSize%2 == 0 {
		return nil, fmt.Errorf("kernel size must be odd and >= 3, got %d", cfg.KernelSize)
	}
	if cfg.Sigma <= 0 {
		return nil, fmt.Errorf("sigma must be positive, got %g", cfg.Sigma)
	}
	if !cfg.AutoThreshold && (cfg.LowThreshold <= 0 || cfg.LowThreshold >= cfg.HighThreshold) {
		return nil, fmt.Errorf("thresholds must satisfy 0 < low < high, got %g/%g",
			cfg.LowThreshold, cfg.HighThreshold)
	}
	if cfg.MaxDimension < 0 {
		return nil, fmt.Errorf("max dimension must be >= 0, got %d", cfg.MaxDimension)
	}
	return &Pipeline{cfg: cfg}, nil
}

// Measure estimates the subject's physical length from an encoded
// PNG/JPEG byte buffer. Terminal outcomes: a Measurement on success,
// ErrDecode or ErrInvalidImage for rejected input, ErrNoObject when no
// contour is found.
func (p *Pipeline) Measure(data []byte) (*measure.Measurement, error) {
	m, _, _, err := p.run(data)
	return m, err
}

// MeasureAnnotated measures like Measure and additionally renders a
// diagnostic overlay showing every candidate contour and the winning
// bounding box. The overlay is nil when measurement fails.
func (p *Pipeline) MeasureAnnotated(data []byte) (*measure.Measurement, *annotate.OverlayResult, error) {
	m, img, contours, err := p.run(data)
	if err != nil {
		return nil, nil, err
	}
	overlay, err := annotate.Overlay(img, contours, &m.Box)
	if err != nil {
		return m, nil, fmt.Errorf("render overlay: %w", err)
	}
	return m, overlay, nil
}

// run executes the stage sequence and returns the measurement along
// with the processed image and candidate set for annotation.
func (p *Pipeline) run(data []byte) (*measure.Measurement, image.Image, []contour.Contour, error) {
	img, err := decodeImage(data)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	img, factor := p.normalize(img)

	low, high := p.cfg.LowThreshold, p.cfg.HighThreshold
	if p.cfg.AutoThreshold {
		low, high = edge.AutoThresholds(img)
	}

	gray, err := pixel.Grayscale(img)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	smoothed, err := pixel.Smooth(gray, p.cfg.KernelSize, p.cfg.Sigma)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	edges := edge.Detect(smoothed, low, high)
	contours := contour.Find(edges)

	largest, ok := contour.SelectLargest(contours)
	if !ok {
		return nil, nil, nil, ErrNoObject
	}

	m := measure.Measure(largest, factor)
	return &m, img, contours, nil
}

// normalize downscales oversized inputs so the longest side fits
// MaxDimension, and rescales the conversion factor by the same ratio
// so the reported physical length is unchanged.
func (p *Pipeline) normalize(img image.Image) (image.Image, float64) {
	factor := p.cfg.ConversionFactor
	if p.cfg.MaxDimension == 0 {
		return img, factor
	}

	bounds := img.Bounds()
	longest := bounds.Dx()
	if bounds.Dy() > longest {
		longest = bounds.Dy()
	}
	if longest <= p.cfg.MaxDimension {
		return img, factor
	}

	resized := imaging.Fit(img, p.cfg.MaxDimension, p.cfg.MaxDimension, imaging.Lanczos)
	newLongest := resized.Bounds().Dx()
	if resized.Bounds().Dy() > newLongest {
		newLongest = resized.Bounds().Dy()
	}
	if newLongest > 0 {
		factor *= float64(longest) / float64(newLongest)
	}
	return resized, factor
}
