package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// FileName is the config file looked up in the working directory and in the
// user config directory.
const FileName = ".spectrum.yaml"

// Log formats.
const (
	LogFormatLogfmt = "logfmt"
	LogFormatJSON   = "json"
)

// Constants for default values.
const (
	DefaultLogFormat = LogFormatLogfmt
)

// CliFlags holds the values of command-line flags.
type CliFlags struct {
	Debug     bool
	LogFormat string
	NoColor   bool

	// Flags to track if they were explicitly set by the user
	DebugSet     bool
	LogFormatSet bool
	NoColorSet   bool
}

// FileConfig represents .spectrum.yaml. Unset keys stay nil so that they
// fall through to defaults.
type FileConfig struct {
	Debug     *bool   `yaml:"debug"`
	LogFormat *string `yaml:"log_format"`
	NoColor   *bool   `yaml:"no_color"`
}

// LoadFile reads and parses the config file at path. A missing file yields an
// empty FileConfig.
func LoadFile(path string) (*FileConfig, error) {
	cfg := &FileConfig{}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, errors.Join(ErrInvalid, err))
	}
	return cfg, nil
}

// FindConfigPath returns the config file to load, or "" when there is none.
// The working directory wins over the user config directory.
func FindConfigPath() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}

	configHome, err := os.UserConfigDir()
	// An empty or root config dir is not usable for the per-user path.
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}

	xdgPath := filepath.Join(configHome, "spectrum", FileName)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}
