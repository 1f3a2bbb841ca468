package display

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Colour is an opaque RGB triple.
type Colour struct {
	R, G, B uint8
}

// Black is the zero Colour.
var Black = Colour{}

// ParseHex parses "#rrggbb" into a Colour.
func ParseHex(s string) (Colour, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Colour{}, fmt.Errorf("parse colour %q: %w", s, err)
	}
	r, g, b := c.Clamped().RGB255()
	return Colour{R: r, G: g, B: b}, nil
}

// Hex formats the colour as "#rrggbb".
func (c Colour) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

func (c Colour) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.R, c.G, c.B)
}

// RGBA returns the colour as a fully opaque color.RGBA.
func (c Colour) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Pen is a display-specific colour handle. Surfaces pack RGB888 into it.
type Pen uint32

// PenFor returns the pen for c.
func PenFor(c Colour) Pen {
	return Pen(uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B))
}

// Colour unpacks the pen.
func (p Pen) Colour() Colour {
	return Colour{R: uint8(p >> 16), G: uint8(p >> 8), B: uint8(p)}
}
