// Package config loads the runtime tunables. Values come from an
// optional YAML file, then RIEMANN_* environment variables override
// whatever the file set. The 10×10 window and its 50 px/unit scale
// are contracts, not configuration, and live in the grid package.
package config

import (
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config carries the runtime tunables.
type Config struct {
	// FPS is the render tick rate.
	FPS int `yaml:"fps" envconfig:"FPS"`

	// SampleStep is the domain-x increment used to trace curves.
	SampleStep float64 `yaml:"sample_step" envconfig:"SAMPLE_STEP"`

	// Audio toggles the input feedback cues.
	Audio bool `yaml:"audio" envconfig:"AUDIO"`
}

// Default is the configuration used when no file and no environment
// overrides are present.
func Default() Config {
	return Config{
		FPS:        60,
		SampleStep: 0.05,
		Audio:      true,
	}
}

// FrameInterval is the render tick period derived from FPS.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// Load reads path if it exists and applies environment overrides.
// A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Default(), err
		}
	case os.IsNotExist(err):
		// Defaults stand.
	default:
		return Default(), err
	}

	if err := envconfig.Process("riemann", &cfg); err != nil {
		return Default(), err
	}

	return cfg.sanitize(), nil
}

// sanitize pulls out-of-range values back to defaults rather than
// letting a bad file stall or spin the render loop.
func (c Config) sanitize() Config {
	def := Default()
	if c.FPS < 1 || c.FPS > 240 {
		c.FPS = def.FPS
	}
	if c.SampleStep <= 0 || c.SampleStep > 1 {
		c.SampleStep = def.SampleStep
	}
	return c
}
