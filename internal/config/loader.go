package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads the YAML configuration file at path and returns a validated [Config].
// It is a convenience wrapper around [LoadFromReader] and [Validate].
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML config from r and validates the result.
// Useful in tests where configs are constructed from string literals.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that cfg contains a coherent set of values.
// It returns a joined error listing all validation failures found.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.Log.Level != "" && !cfg.Log.Level.IsValid() {
		errs = append(errs, fmt.Errorf("log.level %q is invalid; valid values: debug, info, warn, error", cfg.Log.Level))
	}

	if p := cfg.Dictionary.Path; p != "" {
		if _, err := os.Stat(p); err != nil {
			// Not an error: the load is lazy and the file may appear before
			// first use.
			slog.Warn("dictionary.path is not readable yet", "path", p, "err", err)
		}
	}

	if t := cfg.Suggest.PhoneticThreshold; t < 0 || t > 1 {
		errs = append(errs, fmt.Errorf("suggest.phonetic_threshold %.2f is out of range [0, 1]", t))
	}
	if t := cfg.Suggest.FuzzyThreshold; t < 0 || t > 1 {
		errs = append(errs, fmt.Errorf("suggest.fuzzy_threshold %.2f is out of range [0, 1]", t))
	}
	if cfg.Suggest.Limit < 0 {
		errs = append(errs, fmt.Errorf("suggest.limit %d must not be negative", cfg.Suggest.Limit))
	}

	return errors.Join(errs...)
}
