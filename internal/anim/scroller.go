package anim

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/JPM1118/spookshow/internal/display"
)

// shadowOffsets surround a glyph on all eight sides.
var shadowOffsets = [8]image.Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Banner is a line of shadowed text scrolled right to left through Window.
type Banner struct {
	Text       string
	Window     image.Rectangle
	Y          int
	Scale      float64
	Foreground display.Colour
	Shadow     display.Colour
	Delay      time.Duration
}

// Steps returns how many frames it takes text of msgWidth pixels to enter
// from the right edge of the window and leave past the left edge.
func (b Banner) Steps(msgWidth int) int {
	return msgWidth + b.Window.Dx() + 2
}

// X returns the text's left edge at step z.
func (b Banner) X(z int) int {
	return b.Window.Min.X - z + b.Window.Dx()
}

// Scroll clips drawing to the banner window and scrolls the text across it
// one pixel per step. The clip is removed on return.
func Scroll(ctx context.Context, st Stage, b Banner) error {
	win := b.Window
	st.Surface.SetClip(win.Min.X, win.Min.Y, win.Dx(), win.Dy())
	defer st.Surface.RemoveClip()

	shadow := st.Surface.CreatePen(b.Shadow.R, b.Shadow.G, b.Shadow.B)
	fg := st.Surface.CreatePen(b.Foreground.R, b.Foreground.G, b.Foreground.B)

	steps := b.Steps(st.Surface.MeasureText(b.Text, b.Scale))
	for z := 0; z < steps; z++ {
		x := b.X(z)
		st.Fill(display.Black)

		st.Surface.SetPen(shadow)
		for _, off := range shadowOffsets {
			st.Surface.Text(b.Text, x+off.X, b.Y+off.Y, -1, b.Scale)
		}

		st.Surface.SetPen(fg)
		st.Surface.Text(b.Text, x, b.Y, -1, b.Scale)

		if err := st.Present(); err != nil {
			return fmt.Errorf("scroll step %d: %w", z, err)
		}
		if err := st.Clock.Sleep(ctx, b.Delay); err != nil {
			return err
		}
	}
	return nil
}
