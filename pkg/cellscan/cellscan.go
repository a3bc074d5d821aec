// Package cellscan decodes rendered spectrum output back into cells.
//
// The accepted format is exactly what render.TrueColor writes: every line is a
// run of cells, each cell being ESC[48;2;<r>;<g>;<b>m followed by its text,
// and every line ends in '\n'. Channels are decimal without leading zeros.
package cellscan

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/dkoosis/spectrum/pkg/ramp"
)

// ErrMalformed is wrapped by every decoding error caused by the input itself.
var ErrMalformed = errors.New("malformed cell stream")

const prefix = "\x1b[48;2;"

// Cell is one decoded grid cell.
type Cell struct {
	Color ramp.RGB
	Text  string
}

// Grid holds decoded cells, row-major.
type Grid [][]Cell

// Decode reads r to EOF and parses every line into a row of cells.
func Decode(r io.Reader) (Grid, error) {
	br := bufio.NewReader(r)
	var grid Grid

	for lineNo := 1; ; lineNo++ {
		line, err := br.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("reading line %d: %w", lineNo, err)
		}
		if errors.Is(err, io.EOF) {
			if len(line) > 0 {
				return nil, fmt.Errorf("line %d: missing trailing newline: %w", lineNo, ErrMalformed)
			}
			return grid, nil
		}

		row, perr := parseLine(line[:len(line)-1])
		if perr != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, perr)
		}
		grid = append(grid, row)
	}
}

func parseLine(line []byte) ([]Cell, error) {
	var row []Cell
	for col := 0; len(line) > 0; col++ {
		if !bytes.HasPrefix(line, []byte(prefix)) {
			return nil, fmt.Errorf("cell %d: expected %q: %w", col, prefix, ErrMalformed)
		}
		line = line[len(prefix):]

		var channels [3]uint8
		for i := range channels {
			term := byte(';')
			if i == len(channels)-1 {
				term = 'm'
			}
			v, rest, err := parseChannel(line, term)
			if err != nil {
				return nil, fmt.Errorf("cell %d channel %d: %w", col, i, err)
			}
			channels[i] = v
			line = rest
		}

		end := bytes.IndexByte(line, 0x1b)
		if end < 0 {
			end = len(line)
		}
		row = append(row, Cell{
			Color: ramp.RGB{R: channels[0], G: channels[1], B: channels[2]},
			Text:  string(line[:end]),
		})
		line = line[end:]
	}
	return row, nil
}

// parseChannel reads a decimal in [0,255] terminated by term.
func parseChannel(b []byte, term byte) (uint8, []byte, error) {
	n := 0
	for n < len(b) && b[n] >= '0' && b[n] <= '9' {
		n++
	}
	switch {
	case n == 0:
		return 0, nil, fmt.Errorf("missing digits: %w", ErrMalformed)
	case n > 1 && b[0] == '0':
		return 0, nil, fmt.Errorf("leading zero in %q: %w", b[:n], ErrMalformed)
	case n > 3:
		return 0, nil, fmt.Errorf("value %q out of range: %w", b[:n], ErrMalformed)
	case n == len(b) || b[n] != term:
		return 0, nil, fmt.Errorf("expected %q after %q: %w", term, b[:n], ErrMalformed)
	}

	v := 0
	for _, d := range b[:n] {
		v = v*10 + int(d-'0')
	}
	if v > 255 {
		return 0, nil, fmt.Errorf("value %d out of range: %w", v, ErrMalformed)
	}
	return uint8(v), b[n+1:], nil
}

// Validate checks that g is width×height and that every cell's text occupies
// exactly one terminal column.
func (g Grid) Validate(width, height int) error {
	if len(g) != height {
		return fmt.Errorf("got %d rows, want %d: %w", len(g), height, ErrMalformed)
	}
	for y, row := range g {
		if len(row) != width {
			return fmt.Errorf("row %d: got %d cells, want %d: %w", y, len(row), width, ErrMalformed)
		}
		for x, c := range row {
			if !utf8.ValidString(c.Text) || runewidth.StringWidth(c.Text) != 1 {
				return fmt.Errorf("row %d cell %d: text %q is not one column wide: %w", y, x, c.Text, ErrMalformed)
			}
		}
	}
	return nil
}

// RowsIdentical reports whether every row carries the same cells as the first.
func (g Grid) RowsIdentical() bool {
	for _, row := range g[min(1, len(g)):] {
		if len(row) != len(g[0]) {
			return false
		}
		for x, c := range row {
			if c != g[0][x] {
				return false
			}
		}
	}
	return true
}

// Colors returns the colors of row y.
func (g Grid) Colors(y int) []ramp.RGB {
	out := make([]ramp.RGB, len(g[y]))
	for x, c := range g[y] {
		out[x] = c.Color
	}
	return out
}
