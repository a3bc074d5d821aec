// Package render writes the spectrum grid to a terminal stream.
package render

import "io"

// Renderer writes a complete picture to w.
type Renderer interface {
	Render(w io.Writer) error
}
