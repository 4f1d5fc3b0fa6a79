// Package config provides the configuration schema and loader for the Ghost
// Note phonetic analysis tools.
package config

// LogLevel controls log verbosity.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Config is the root configuration structure.
// It is typically loaded from a YAML file using [Load] or [LoadFromReader].
type Config struct {
	Log        LogConfig        `yaml:"log"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Suggest    SuggestConfig    `yaml:"suggest"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level controls verbosity. Defaults to "info".
	Level LogLevel `yaml:"level"`
}

// DictionaryConfig selects the pronunciation data source.
type DictionaryConfig struct {
	// Path is a CMU-format dictionary file. When empty, the base lexicon
	// embedded in the binary is used.
	Path string `yaml:"path"`

	// Preload triggers a background dictionary load at startup instead of
	// loading lazily on the first query that needs it.
	Preload bool `yaml:"preload"`
}

// SuggestConfig tunes rhyme suggestions for out-of-vocabulary words.
type SuggestConfig struct {
	// PhoneticThreshold is the minimum Jaro-Winkler score required for a
	// phonetically-matched respelling to be accepted. Defaults to 0.70.
	PhoneticThreshold float64 `yaml:"phonetic_threshold"`

	// FuzzyThreshold is the minimum Jaro-Winkler score required when no
	// phonetic match is found. Defaults to 0.85.
	FuzzyThreshold float64 `yaml:"fuzzy_threshold"`

	// Limit caps the number of suggestions returned. Defaults to 10.
	Limit int `yaml:"limit"`
}

// Default returns the configuration used when no config file is supplied:
// embedded base lexicon, info logging, default suggestion thresholds.
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: LogInfo},
	}
}
