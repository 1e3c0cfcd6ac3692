package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cheezcuits/EigenCalculator/diagram"
	"github.com/Cheezcuits/EigenCalculator/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, diagram.DefaultCanvasSize, cfg.CanvasSize)
	assert.Equal(t, diagram.DefaultPadding, cfg.Padding)
	assert.Equal(t, diagram.DefaultBasisColor, cfg.BasisColor)
	assert.Equal(t, diagram.DefaultEigenvalueColor, cfg.EigenvalueColor)
	assert.Empty(t, cfg.SVGOut)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("EIGENCALC_CANVAS_SIZE", "600")
	t.Setenv("EIGENCALC_LOG_LEVEL", "debug")
	t.Setenv("EIGENCALC_BASIS_COLOR", "#00FF00")

	cfg, err := config.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 600, cfg.CanvasSize)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "#00FF00", cfg.BasisColor)
	// Untouched fields keep their defaults.
	assert.Equal(t, diagram.DefaultPadding, cfg.Padding)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eigencalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("canvas_size: 800\npadding: 50\n"), 0o600))
	t.Setenv("EIGENCALC_CONFIG", path)

	cfg, err := config.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.CanvasSize)
	assert.Equal(t, 50, cfg.Padding)
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eigencalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("canvas_size: 800\n"), 0o600))
	t.Setenv("EIGENCALC_CONFIG", path)
	t.Setenv("EIGENCALC_CANVAS_SIZE", "640")

	cfg, err := config.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.CanvasSize)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("EIGENCALC_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := config.Load(context.Background())
	require.ErrorIs(t, err, config.ErrLoadConfig)
}

func TestLoad_Validation(t *testing.T) {
	t.Run("padding eats the canvas", func(t *testing.T) {
		t.Setenv("EIGENCALC_PADDING", "1000")
		_, err := config.Load(context.Background())
		require.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("non-positive canvas", func(t *testing.T) {
		t.Setenv("EIGENCALC_CANVAS_SIZE", "0")
		_, err := config.Load(context.Background())
		require.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("empty color", func(t *testing.T) {
		t.Setenv("EIGENCALC_BASIS_COLOR", "")
		_, err := config.Load(context.Background())
		require.ErrorIs(t, err, config.ErrInvalidConfig)
	})
}
