// Package config loads service configuration from the environment,
// with an optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"footmetric/internal/pipeline"
)

// Config holds everything the service needs at startup.
type Config struct {
	// Port the HTTP server listens on.
	Port string

	// UploadDir is where raw uploads are persisted. Empty disables
	// persistence.
	UploadDir string

	// Pipeline carries the measurement parameters. Setting both Canny
	// thresholds to 0 selects automatic per-image thresholds.
	Pipeline pipeline.Config
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present; real environment
// variables win over it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	pc := pipeline.DefaultConfig()

	factor, err := getFloat("FOOTMETRIC_CONVERSION_FACTOR", pc.ConversionFactor)
	if err != nil {
		return nil, err
	}
	low, err := getFloat("FOOTMETRIC_CANNY_LOW", pc.LowThreshold)
	if err != nil {
		return nil, err
	}
	high, err := getFloat("FOOTMETRIC_CANNY_HIGH", pc.HighThreshold)
	if err != nil {
		return nil, err
	}
	maxDim, err := getInt("FOOTMETRIC_MAX_DIMENSION", pc.MaxDimension)
	if err != nil {
		return nil, err
	}

	pc.ConversionFactor = factor
	pc.LowThreshold = low
	pc.HighThreshold = high
	pc.MaxDimension = maxDim
	if low == 0 && high == 0 {
		pc.AutoThreshold = true
	}

	if pc.ConversionFactor <= 0 {
		return nil, fmt.Errorf("FOOTMETRIC_CONVERSION_FACTOR must be positive, got %g", pc.ConversionFactor)
	}
	if !pc.AutoThreshold && pc.LowThreshold >= pc.HighThreshold {
		return nil, fmt.Errorf("FOOTMETRIC_CANNY_LOW (%g) must be below FOOTMETRIC_CANNY_HIGH (%g)",
			pc.LowThreshold, pc.HighThreshold)
	}

	return &Config{
		Port:      getEnv("FOOTMETRIC_PORT", "8080"),
		UploadDir: getEnv("FOOTMETRIC_UPLOAD_DIR", ""),
		Pipeline:  pc,
	}, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getFloat(key string, defaultVal float64) (float64, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid number %q", key, val)
	}
	return f, nil
}

func getInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", key, val)
	}
	return n, nil
}
