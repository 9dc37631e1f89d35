// Package config loads optional settings files for the matchexport tools.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mrjoshuak/matchexport/internal/exporters"
	"github.com/mrjoshuak/matchexport/types"
	"github.com/rs/zerolog"
	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the settings file schema. Every field is optional; unset
// fields keep their defaults.
type FileConfig struct {
	Output    string          `yaml:"output" json:"output"`
	Delimiter string          `yaml:"delimiter" json:"delimiter"`
	Timeout   string          `yaml:"timeout" json:"timeout"`
	LogLevel  string          `yaml:"logLevel" json:"logLevel"`
	Selectors types.Selectors `yaml:"selectors" json:"selectors"`
}

// LoadFile reads YAML or JSON into FileConfig, choosing by extension.
func LoadFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// Apply copies the settings in fc onto opts.
func (fc FileConfig) Apply(opts *types.ExtractionOptions) error {
	opts.Selectors = fc.Selectors.Merge(opts.Selectors)

	if fc.Delimiter != "" {
		d, err := exporters.ParseDelimiter(fc.Delimiter)
		if err != nil {
			return fmt.Errorf("delimiter: %w", err)
		}
		opts.Delimiter = d
	}
	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return fmt.Errorf("timeout: %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("timeout: must be positive, got %s", fc.Timeout)
		}
		opts.Timeout = d
	}
	return nil
}

// Level returns the configured log level, or fallback when none is set.
func (fc FileConfig) Level(fallback zerolog.Level) (zerolog.Level, error) {
	if fc.LogLevel == "" {
		return fallback, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(fc.LogLevel))
	if err != nil {
		return fallback, fmt.Errorf("logLevel: %w", err)
	}
	return lvl, nil
}
