// Package ramp computes the colors of the spectrum grid.
//
// A column maps to a color through three linear segments of 85 columns each:
// red fades into green, green into blue, and blue back into red. The sweep is
// not wrapped, so the last column lands exactly on pure red again.
//
// A row maps to a brightness in [0, 1]. Renderers are handed this value but
// do not apply it to the color.
package ramp

import "fmt"

// Grid dimensions.
const (
	Width  = 256
	Height = 256
)

// segment is the number of columns covered by each linear ramp.
const segment = 85

// RGB is a fully opaque 24-bit color.
type RGB struct {
	R, G, B uint8
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

func (c RGB) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.R, c.G, c.B)
}

// Column returns the color of column x. It panics if x is outside [0, Width).
func Column(x int) RGB {
	if x < 0 || x >= Width {
		panic(fmt.Sprintf("ramp: column %d out of range [0,%d)", x, Width))
	}

	switch {
	case x < segment:
		return RGB{R: uint8(255 - 3*x), G: uint8(3 * x)}
	case x < 2*segment:
		x -= segment
		return RGB{G: uint8(255 - 3*x), B: uint8(3 * x)}
	default:
		x -= 2 * segment
		return RGB{R: uint8(3 * x), B: uint8(255 - 3*x)}
	}
}

// Row returns the colors of every column, left to right. All rows share it.
func Row() [Width]RGB {
	var row [Width]RGB
	for x := range row {
		row[x] = Column(x)
	}
	return row
}

// Brightness returns (255 - y) / 255 for row y.
func Brightness(y int) float64 {
	return float64(255-y) / 255.0
}
