package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the optional defaults file looked up in the working directory.
const File = "certissue.yaml"

// Config holds run defaults that are not part of the per-run CLI surface.
type Config struct {
	FontsDir  string  `yaml:"fonts_dir"`
	OutputDir string  `yaml:"output_dir"`
	DPI       float64 `yaml:"dpi"`
	LogLevel  string  `yaml:"log_level"`
}

// Load resolves configuration in three layers: built-in defaults, then the
// optional certissue.yaml, then CERTISSUE_* environment overrides.
func Load() (Config, error) {
	return LoadFile(File)
}

// LoadFile is Load with an explicit file path. A missing file is fine; a
// malformed one is a config error.
func LoadFile(path string) (Config, error) {
	cfg := Config{
		FontsDir:  "fonts",
		OutputDir: ".",
		DPI:       100,
		LogLevel:  "info",
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// defaults stand
	case err != nil:
		return Config{}, err
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	if v, ok := os.LookupEnv("CERTISSUE_FONTS_DIR"); ok {
		cfg.FontsDir = v
	}
	if v, ok := os.LookupEnv("CERTISSUE_OUTPUT_DIR"); ok {
		cfg.OutputDir = v
	}
	if v, ok := os.LookupEnv("CERTISSUE_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}

	if cfg.DPI <= 0 {
		cfg.DPI = 100
	}
	return cfg, nil
}
