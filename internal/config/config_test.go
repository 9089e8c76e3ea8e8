package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable the loader reads so the ambient
// environment cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"FOOTMETRIC_PORT",
		"FOOTMETRIC_UPLOAD_DIR",
		"FOOTMETRIC_CONVERSION_FACTOR",
		"FOOTMETRIC_CANNY_LOW",
		"FOOTMETRIC_CANNY_HIGH",
		"FOOTMETRIC_MAX_DIMENSION",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, cfg.UploadDir)
	assert.Equal(t, 0.2, cfg.Pipeline.ConversionFactor)
	assert.Equal(t, 50.0, cfg.Pipeline.LowThreshold)
	assert.Equal(t, 150.0, cfg.Pipeline.HighThreshold)
	assert.Equal(t, 2000, cfg.Pipeline.MaxDimension)
	assert.False(t, cfg.Pipeline.AutoThreshold)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("FOOTMETRIC_PORT", "9000")
	t.Setenv("FOOTMETRIC_UPLOAD_DIR", "/tmp/uploads")
	t.Setenv("FOOTMETRIC_CONVERSION_FACTOR", "0.15")
	t.Setenv("FOOTMETRIC_CANNY_LOW", "40")
	t.Setenv("FOOTMETRIC_CANNY_HIGH", "120")
	t.Setenv("FOOTMETRIC_MAX_DIMENSION", "1024")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "/tmp/uploads", cfg.UploadDir)
	assert.Equal(t, 0.15, cfg.Pipeline.ConversionFactor)
	assert.Equal(t, 40.0, cfg.Pipeline.LowThreshold)
	assert.Equal(t, 120.0, cfg.Pipeline.HighThreshold)
	assert.Equal(t, 1024, cfg.Pipeline.MaxDimension)
}

func TestLoad_AutoThresholdMode(t *testing.T) {
	clearEnv(t)
	t.Setenv("FOOTMETRIC_CANNY_LOW", "0")
	t.Setenv("FOOTMETRIC_CANNY_HIGH", "0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Pipeline.AutoThreshold)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"negative factor", "FOOTMETRIC_CONVERSION_FACTOR", "-1"},
		{"zero factor", "FOOTMETRIC_CONVERSION_FACTOR", "0"},
		{"non-numeric factor", "FOOTMETRIC_CONVERSION_FACTOR", "abc"},
		{"non-numeric threshold", "FOOTMETRIC_CANNY_LOW", "low"},
		{"non-numeric dimension", "FOOTMETRIC_MAX_DIMENSION", "big"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_ThresholdOrder(t *testing.T) {
	clearEnv(t)
	t.Setenv("FOOTMETRIC_CANNY_LOW", "200")
	t.Setenv("FOOTMETRIC_CANNY_HIGH", "100")

	_, err := Load()
	assert.Error(t, err)
}
