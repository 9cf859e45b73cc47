// Package config loads dvbsenc's YAML configuration file. Command-line
// flags set on top of it always win: Load never overrides a flag the
// caller already set explicitly.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full set of knobs the dvbsenc CLI understands.
type Config struct {
	// CodeRate is one of "1/2", "2/3", "3/4", "5/6", "7/8".
	CodeRate string `yaml:"codeRate"`
	// Input is the path to a raw, 188-byte-aligned MPEG-TS file.
	Input string `yaml:"input"`
	// Output is the path the packed IQ-bit stream is written to.
	Output string `yaml:"output"`
	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `yaml:"logLevel"`
}

// Default returns the configuration used when no file or flags override
// it: rate 1/2, stdin/stdout, info-level logging.
func Default() Config {
	return Config{
		CodeRate: "1/2",
		Input:    "-",
		Output:   "-",
		LogLevel: "info",
	}
}

// Load reads and parses a YAML config file, overlaying it onto base.
// A missing path is not an error; it just returns base unchanged, so
// callers can treat "no config file given" and "config file doesn't
// exist" the same way.
func Load(path string, base Config) (Config, error) {
	if path == "" {
		return base, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return base, nil
		}
		return base, fmt.Errorf("reading config file %q: %w", path, err)
	}

	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("parsing config file %q: %w", path, err)
	}
	return cfg, nil
}
