package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func ptr[T any](v T) *T { return &v }

func TestResolve_PriorityOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		flags         CliFlags
		env           map[string]string
		file          FileConfig
		wantDebug     bool
		wantDebugSrc  string
		wantFormat    string
		wantFormatSrc string
		wantNoColor   bool
		wantColorSrc  string
	}{
		{
			name:          "defaults",
			wantFormat:    LogFormatLogfmt,
			wantDebugSrc:  SourceDefault,
			wantFormatSrc: SourceDefault,
			wantColorSrc:  SourceDefault,
		},
		{
			name:          "file over defaults",
			file:          FileConfig{Debug: ptr(true), LogFormat: ptr("json"), NoColor: ptr(true)},
			wantDebug:     true,
			wantDebugSrc:  SourceFile,
			wantFormat:    LogFormatJSON,
			wantFormatSrc: SourceFile,
			wantNoColor:   true,
			wantColorSrc:  SourceFile,
		},
		{
			name:          "env over file",
			env:           map[string]string{"SPECTRUM_DEBUG": "false", "SPECTRUM_LOG_FORMAT": "logfmt", "NO_COLOR": "1"},
			file:          FileConfig{Debug: ptr(true), LogFormat: ptr("json"), NoColor: ptr(false)},
			wantDebugSrc:  SourceEnv,
			wantFormat:    LogFormatLogfmt,
			wantFormatSrc: SourceEnv,
			wantNoColor:   true,
			wantColorSrc:  SourceEnv,
		},
		{
			name:          "cli over env",
			flags:         CliFlags{Debug: true, DebugSet: true, LogFormat: "json", LogFormatSet: true, NoColor: false, NoColorSet: true},
			env:           map[string]string{"SPECTRUM_DEBUG": "false", "SPECTRUM_LOG_FORMAT": "logfmt", "SPECTRUM_NO_COLOR": "true"},
			wantDebug:     true,
			wantDebugSrc:  SourceCLI,
			wantFormat:    LogFormatJSON,
			wantFormatSrc: SourceCLI,
			wantColorSrc:  SourceCLI,
		},
		{
			name:          "unparseable env bool is ignored",
			env:           map[string]string{"SPECTRUM_DEBUG": "yes please"},
			file:          FileConfig{Debug: ptr(true)},
			wantDebug:     true,
			wantDebugSrc:  SourceFile,
			wantFormat:    LogFormatLogfmt,
			wantFormatSrc: SourceDefault,
			wantColorSrc:  SourceDefault,
		},
		{
			name:          "SPECTRUM_NO_COLOR checked before NO_COLOR",
			env:           map[string]string{"SPECTRUM_NO_COLOR": "false", "NO_COLOR": "true"},
			wantFormat:    LogFormatLogfmt,
			wantDebugSrc:  SourceDefault,
			wantFormatSrc: SourceDefault,
			wantColorSrc:  SourceEnv,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			file := tt.file
			r, err := resolve(tt.flags, &file, envMap(tt.env))
			require.NoError(t, err)

			assert.Equal(t, tt.wantDebug, r.Debug)
			assert.Equal(t, tt.wantDebugSrc, r.DebugSource)
			assert.Equal(t, tt.wantFormat, r.LogFormat)
			assert.Equal(t, tt.wantFormatSrc, r.LogFormatSource)
			assert.Equal(t, tt.wantNoColor, r.NoColor)
			assert.Equal(t, tt.wantColorSrc, r.NoColorSource)
		})
	}
}

func TestResolve_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		flags   CliFlags
		file    FileConfig
		wantErr bool
	}{
		{name: "logfmt", flags: CliFlags{LogFormat: "logfmt", LogFormatSet: true}},
		{name: "json", file: FileConfig{LogFormat: ptr("json")}},
		{name: "unknown flag value", flags: CliFlags{LogFormat: "xml", LogFormatSet: true}, wantErr: true},
		{name: "unknown file value", file: FileConfig{LogFormat: ptr("")}, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			file := tt.file
			_, err := resolve(tt.flags, &file, envMap(nil))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResolve_ReadsConfigFile(t *testing.T) {
	tempDir := t.TempDir()
	chdir(t, tempDir)
	t.Setenv("SPECTRUM_DEBUG", "")
	t.Setenv("SPECTRUM_LOG_FORMAT", "")
	t.Setenv("SPECTRUM_NO_COLOR", "")
	t.Setenv("NO_COLOR", "")

	require.NoError(t, os.WriteFile(filepath.Join(tempDir, FileName), []byte("log_format: json\n"), 0o600))

	r, err := Resolve(CliFlags{})
	require.NoError(t, err)
	assert.Equal(t, FileName, r.Path)
	assert.Equal(t, LogFormatJSON, r.LogFormat)
	assert.Equal(t, SourceFile, r.LogFormatSource)
}

func TestResolve_When_ConfigFileMalformed(t *testing.T) {
	tempDir := t.TempDir()
	chdir(t, tempDir)

	require.NoError(t, os.WriteFile(filepath.Join(tempDir, FileName), []byte("log_format: [\n"), 0o600))

	_, err := Resolve(CliFlags{})
	assert.ErrorIs(t, err, ErrInvalid)
}
