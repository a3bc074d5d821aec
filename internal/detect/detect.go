// Package detect describes the terminal behind an output stream.
//
// The description feeds diagnostics only. Rendering never adapts to it.
package detect

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Info describes an output stream.
type Info struct {
	IsTTY  bool
	Width  int
	Height int
}

// Terminal reports whether w is a terminal and, if so, its size. Writers that
// are not *os.File, or whose size cannot be read, report zero dimensions.
func Terminal(w io.Writer) Info {
	f, ok := w.(*os.File)
	if !ok {
		return Info{}
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return Info{}
	}

	info := Info{IsTTY: true}
	if width, height, err := term.GetSize(fd); err == nil {
		info.Width, info.Height = width, height
	}
	return info
}

// Wraps reports whether a line of cols cells would wrap on this terminal.
// Unknown widths never wrap.
func (i Info) Wraps(cols int) bool {
	return i.IsTTY && i.Width > 0 && i.Width < cols
}
