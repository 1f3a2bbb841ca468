package sprite

import (
	"fmt"
	"image"
)

// Decoder decodes a rectangle of an image resource and composites it onto
// the display at (destX, destY), scaled by scale.
type Decoder interface {
	Decode(path string, destX, destY int, scale float64, source image.Rectangle) error
}

// Sheet is a spritesheet: one image holding a grid of fixed-size cells.
type Sheet struct {
	Path   string
	Width  int
	Height int

	dec Decoder
}

// NewSheet creates a sheet drawing through dec.
func NewSheet(dec Decoder, path string, width, height int) *Sheet {
	return &Sheet{Path: path, Width: width, Height: height, dec: dec}
}

// SourceRect returns the image rectangle of the cell at (col, row).
func (s *Sheet) SourceRect(col, row int) image.Rectangle {
	x, y := col*s.Width, row*s.Height
	return image.Rect(x, y, x+s.Width, y+s.Height)
}

// Draw decodes the cell at (col, row) and composites it at (destX, destY).
// Bounds are checked by the decoder, not here.
func (s *Sheet) Draw(col, row, destX, destY int, scale float64) error {
	if err := s.dec.Decode(s.Path, destX, destY, scale, s.SourceRect(col, row)); err != nil {
		return fmt.Errorf("sprite %s[%d,%d]: %w", s.Path, col, row, err)
	}
	return nil
}

// Grid returns how many whole cells fit in an image of the given size.
func (s *Sheet) Grid(size image.Point) (cols, rows int) {
	return size.X / s.Width, size.Y / s.Height
}
