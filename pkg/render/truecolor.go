package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dkoosis/spectrum/pkg/ramp"
)

// RowObserver is called once per row, before the row is written, with the
// row index and its brightness.
type RowObserver func(y int, brightness float64)

// Option configures a TrueColor renderer.
type Option func(*TrueColor)

// WithRowObserver registers fn to receive each row's brightness. The value is
// reported only; it does not change the colors written.
func WithRowObserver(fn RowObserver) Option {
	return func(t *TrueColor) {
		t.observe = fn
	}
}

// TrueColor renders the grid as 24-bit background-color cells, one space per
// cell and one line per row.
type TrueColor struct {
	observe RowObserver
}

// NewTrueColor creates a true-color renderer.
func NewTrueColor(opts ...Option) *TrueColor {
	t := &TrueColor{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Render writes all ramp.Height rows to w. It stops at the first write error.
func (t *TrueColor) Render(w io.Writer) error {
	line := Line()

	for y := 0; y < ramp.Height; y++ {
		brightness := ramp.Brightness(y)
		if t.observe != nil {
			t.observe(y, brightness)
		}
		if _, err := w.Write(line); err != nil {
			return fmt.Errorf("writing row %d: %w", y, err)
		}
	}
	return nil
}

// Line returns one full row of cells, terminated by a newline.
func Line() []byte {
	// "\x1b[48;2;255;255;255m " is at most 20 bytes.
	buf := make([]byte, 0, ramp.Width*20+1)
	for _, c := range ramp.Row() {
		buf = AppendCell(buf, c)
	}
	return append(buf, '\n')
}

// AppendCell appends the escape sequence selecting c as background color,
// followed by a single space.
func AppendCell(dst []byte, c ramp.RGB) []byte {
	dst = append(dst, "\x1b[48;2;"...)
	dst = strconv.AppendUint(dst, uint64(c.R), 10)
	dst = append(dst, ';')
	dst = strconv.AppendUint(dst, uint64(c.G), 10)
	dst = append(dst, ';')
	dst = strconv.AppendUint(dst, uint64(c.B), 10)
	return append(dst, 'm', ' ')
}
