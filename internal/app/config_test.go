package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigFromEnv(t *testing.T) {
	t.Setenv(EnvOutDir, "")
	t.Setenv(EnvPreview, "")
	t.Setenv(EnvFBDevice, "")

	cfg, err := DefaultConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultOutDir, cfg.OutDir)
	assert.False(t, cfg.Preview)
	assert.Equal(t, "/dev/fb0", cfg.FBDevice)
	assert.Equal(t, DefaultShowFor, cfg.ShowFor)
}

func TestDefaultConfigFromEnvOverrides(t *testing.T) {
	t.Setenv(EnvOutDir, "/srv/app/assets")
	t.Setenv(EnvPreview, "true")
	t.Setenv(EnvFBDevice, "/dev/fb1")

	cfg, err := DefaultConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "/srv/app/assets", cfg.OutDir)
	assert.True(t, cfg.Preview)
	assert.Equal(t, "/dev/fb1", cfg.FBDevice)
}

func TestDefaultConfigFromEnvBadBool(t *testing.T) {
	t.Setenv(EnvPreview, "sometimes")
	_, err := DefaultConfigFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvPreview)
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, Config{OutDir: "assets"}.Validate())
	assert.Error(t, Config{}.Validate())
	assert.Error(t, Config{OutDir: "assets", Show: true}.Validate())
	assert.NoError(t, Config{OutDir: "assets", Show: true, ShowFor: time.Second}.Validate())
}
