package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNoInput is returned when the argument list names no input file.
var ErrNoInput = errors.New("no input file given")

// Load resolves a run's configuration from the argument list (everything
// after the program name): args[0] is the input path, the rest are
// flags. Priority: defaults < profile file < flags.
func Load(args []string) (*Config, error) {
	if len(args) == 0 {
		return nil, ErrNoInput
	}

	// The first parse only discovers whether a profile was named.
	cfg := Default()
	if err := newFlagSet(cfg).Parse(args[1:]); err != nil {
		return nil, err
	}

	if cfg.Profile != "" {
		// Parse again on top of the profile so flags keep the last word.
		withProfile := Default()
		if err := loadFromFile(withProfile, cfg.Profile); err != nil {
			return nil, fmt.Errorf("loading profile %s: %w", cfg.Profile, err)
		}
		if err := newFlagSet(withProfile).Parse(args[1:]); err != nil {
			return nil, err
		}
		cfg = withProfile
	}

	cfg.Input = args[0]
	if cfg.Verbose {
		cfg.Logging.Level = "debug"
	}

	// A bad selector fails the run here, before any file is touched.
	if _, err := cfg.VertexLayout(); err != nil {
		return nil, err
	}
	if _, err := cfg.FaceLayout(); err != nil {
		return nil, err
	}
	if err := cfg.ValidateFormat(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFromFile merges a YAML profile over cfg's current values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
