package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/flywave/go-borehole/internal/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("BOREHOLEDEPTH_GEOMETRY", "well.yaml")

	cfg, err := config.Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "well.yaml", cfg.Geometry)
	assert.Equal(t, 3, cfg.Precision)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("BOREHOLEDEPTH_GEOMETRY", "other.yaml")
	t.Setenv("BOREHOLEDEPTH_PRECISION", "6")
	t.Setenv("BOREHOLEDEPTH_LOG_LEVEL", "debug")
	t.Setenv("BOREHOLEDEPTH_LOG_FORMAT", "json")

	cfg, err := config.Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "other.yaml", cfg.Geometry)
	assert.Equal(t, 6, cfg.Precision)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "boreholedepth.yaml"),
		[]byte("geometry: from-file.yaml\nprecision: 1\nlog:\n  level: warn\n"), 0o600))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := config.Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "from-file.yaml", cfg.Geometry)
	assert.Equal(t, 1, cfg.Precision)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_ValidationError(t *testing.T) {
	t.Setenv("BOREHOLEDEPTH_PRECISION", "40")
	t.Setenv("BOREHOLEDEPTH_LOG_LEVEL", "verbose")

	cfg, err := config.Load(viper.New())
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "geometry is required")
	assert.ErrorContains(t, err, "precision must be 0-17, got 40")
	assert.ErrorContains(t, err, `log.level must be debug, info, warn or error, got "verbose"`)
}

func TestValidate(t *testing.T) {
	cfg := config.Config{
		Geometry:  "well.yaml",
		Precision: 2,
		Log:       config.LogConfig{Level: "ERROR", Format: "JSON"},
	}
	require.NoError(t, cfg.Validate())

	cfg.Log.Format = "xml"
	assert.ErrorContains(t, cfg.Validate(), "log.format must be json or text")
}
