package config

import (
	"fmt"
	"os"
	"strconv"
)

// Sources recorded on a Resolved config.
const (
	SourceCLI     = "cli"
	SourceEnv     = "env"
	SourceFile    = "file"
	SourceDefault = "default"
)

// Resolved holds the final configuration after applying all priority rules.
type Resolved struct {
	Debug     bool
	LogFormat string
	NoColor   bool

	// Resolution metadata (for debugging)
	Path            string // config file consulted, "" if none
	DebugSource     string
	LogFormatSource string
	NoColorSource   string
}

// Resolve finds and loads the config file, then resolves every setting with
// priority CLI > env > file > default.
func Resolve(flags CliFlags) (*Resolved, error) {
	path := FindConfigPath()
	file, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	resolved, err := resolve(flags, file, os.LookupEnv)
	if err != nil {
		return nil, err
	}
	resolved.Path = path
	return resolved, nil
}

func resolve(flags CliFlags, file *FileConfig, lookup func(string) (string, bool)) (*Resolved, error) {
	r := &Resolved{
		LogFormat:       DefaultLogFormat,
		DebugSource:     SourceDefault,
		LogFormatSource: SourceDefault,
		NoColorSource:   SourceDefault,
	}

	switch {
	case flags.DebugSet:
		r.Debug, r.DebugSource = flags.Debug, SourceCLI
	case envBool(lookup, "SPECTRUM_DEBUG") != nil:
		r.Debug, r.DebugSource = *envBool(lookup, "SPECTRUM_DEBUG"), SourceEnv
	case file.Debug != nil:
		r.Debug, r.DebugSource = *file.Debug, SourceFile
	}

	switch {
	case flags.LogFormatSet:
		r.LogFormat, r.LogFormatSource = flags.LogFormat, SourceCLI
	case envString(lookup, "SPECTRUM_LOG_FORMAT") != "":
		r.LogFormat, r.LogFormatSource = envString(lookup, "SPECTRUM_LOG_FORMAT"), SourceEnv
	case file.LogFormat != nil:
		r.LogFormat, r.LogFormatSource = *file.LogFormat, SourceFile
	}

	switch {
	case flags.NoColorSet:
		r.NoColor, r.NoColorSource = flags.NoColor, SourceCLI
	case envBool(lookup, "SPECTRUM_NO_COLOR", "NO_COLOR") != nil:
		r.NoColor, r.NoColorSource = *envBool(lookup, "SPECTRUM_NO_COLOR", "NO_COLOR"), SourceEnv
	case file.NoColor != nil:
		r.NoColor, r.NoColorSource = *file.NoColor, SourceFile
	}

	if err := validate(r); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return r, nil
}

// envBool reads a boolean from environment variables, trying multiple keys.
// Returns nil if none are set to a parseable value.
func envBool(lookup func(string) (string, bool), keys ...string) *bool {
	for _, key := range keys {
		if val, ok := lookup(key); ok && val != "" {
			if b, err := strconv.ParseBool(val); err == nil {
				return &b
			}
		}
	}
	return nil
}

func envString(lookup func(string) (string, bool), key string) string {
	val, _ := lookup(key)
	return val
}

func validate(r *Resolved) error {
	switch r.LogFormat {
	case LogFormatLogfmt, LogFormatJSON:
		return nil
	default:
		return fmt.Errorf("log format %q (from %s) must be %s or %s: %w",
			r.LogFormat, r.LogFormatSource, LogFormatLogfmt, LogFormatJSON, ErrInvalid)
	}
}
