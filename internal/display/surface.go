package display

import "image"

// Galactic Unicorn panel geometry.
const (
	Width  = 53
	Height = 11
)

// Surface is the drawing capability the animation renders through.
// Canvas implements it. Tests can provide recording implementations.
type Surface interface {
	CreatePen(r, g, b uint8) Pen
	SetPen(p Pen)
	Clear()
	SetClip(x, y, w, h int)
	RemoveClip()
	// Text draws text with its top-left corner at (x, y). A positive wrap
	// breaks lines at that pixel width; -1 disables wrapping.
	Text(text string, x, y, wrap int, scale float64)
	MeasureText(text string, scale float64) int
	SetFont(name string) error
	SetThickness(n int)
	// Snapshot returns a copy of the current pixels.
	Snapshot() *image.RGBA
}

// Presenter pushes a surface to the physical display.
type Presenter interface {
	Update(s Surface) error
}
