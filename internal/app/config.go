package app

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sujood-diary/iconmaker/internal/render"
)

const (
	EnvOutDir   = "ICONMAKER_OUT_DIR"
	EnvPreview  = "ICONMAKER_PREVIEW"
	EnvFBDevice = "ICONMAKER_FB"

	DefaultOutDir  = "assets"
	DefaultShowFor = 10 * time.Second
)

// Config contains settings for one generator run. The artwork itself is
// fixed; only where it goes and how it is previewed can change.
type Config struct {
	OutDir   string
	Preview  bool
	Show     bool
	FBDevice string
	ShowFor  time.Duration
}

// DefaultConfigFromEnv returns the defaults with environment overrides
// applied. Flags are layered on top by the caller.
func DefaultConfigFromEnv() (Config, error) {
	cfg := Config{
		OutDir:   DefaultOutDir,
		FBDevice: render.DefaultFBDevice,
		ShowFor:  DefaultShowFor,
	}
	if dir := os.Getenv(EnvOutDir); dir != "" {
		cfg.OutDir = dir
	}
	if dev := os.Getenv(EnvFBDevice); dev != "" {
		cfg.FBDevice = dev
	}
	if raw := os.Getenv(EnvPreview); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvPreview, raw, err)
		}
		cfg.Preview = parsed
	}
	return cfg, nil
}

// Validate rejects settings that cannot produce a run.
func (cfg Config) Validate() error {
	if cfg.OutDir == "" {
		return fmt.Errorf("output directory must not be empty")
	}
	if cfg.Show && cfg.ShowFor <= 0 {
		return fmt.Errorf("show duration must be positive (got %s)", cfg.ShowFor)
	}
	return nil
}
