package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings are the user-tunable knobs read from matx.yaml.
type Settings struct {
	MaxEvalDepth   int    `yaml:"max_eval_depth"`
	MaxMatrixSize  int    `yaml:"max_matrix_size"`
	PrintSeparator string `yaml:"print_separator"`
	Color          string `yaml:"color"` // auto, always or never
	Trace          bool   `yaml:"trace"`
}

// DefaultSettings returns the settings used when no config file is found.
func DefaultSettings() Settings {
	return Settings{
		MaxEvalDepth:   MaxEvalDepth,
		MaxMatrixSize:  MaxMatrixSize,
		PrintSeparator: " ",
		Color:          "auto",
	}
}

// Parse decodes YAML on top of the defaults.
func Parse(data []byte) (Settings, error) {
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse %s: %w", ConfigFileName, err)
	}
	if err := s.validate(); err != nil {
		return s, err
	}
	return s, nil
}

func (s Settings) validate() error {
	if s.MaxEvalDepth <= 0 {
		return fmt.Errorf("max_eval_depth must be positive, got %d", s.MaxEvalDepth)
	}
	if s.MaxMatrixSize <= 0 {
		return fmt.Errorf("max_matrix_size must be positive, got %d", s.MaxMatrixSize)
	}
	switch s.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("color must be auto, always or never, got %q", s.Color)
	}
	return nil
}

// Load reads the config file at path. An empty path searches for matx.yaml
// in dirs in order; finding none yields the defaults.
func Load(path string, dirs ...string) (Settings, error) {
	if path == "" {
		for _, dir := range dirs {
			candidate := filepath.Join(dir, ConfigFileName)
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
	}
	if path == "" {
		return DefaultSettings(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultSettings(), fmt.Errorf("config file %s: %w", path, err)
		}
		return DefaultSettings(), fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}
