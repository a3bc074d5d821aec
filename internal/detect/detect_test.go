package detect

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminal_When_Buffer(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Info{}, Terminal(&bytes.Buffer{}))
}

func TestTerminal_When_RegularFile(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, Info{}, Terminal(f))
}

func TestInfo_Wraps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		info Info
		want bool
	}{
		{"not a tty", Info{Width: 80}, false},
		{"unknown width", Info{IsTTY: true}, false},
		{"narrow", Info{IsTTY: true, Width: 80, Height: 24}, true},
		{"exact", Info{IsTTY: true, Width: 256}, false},
		{"wide", Info{IsTTY: true, Width: 300}, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.info.Wraps(256), tt.name)
	}
}
