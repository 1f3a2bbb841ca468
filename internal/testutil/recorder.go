package testutil

import (
	"context"
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/JPM1118/spookshow/internal/display"
)

// Recorder implements display.Surface, display.Presenter, sprite.Decoder and
// anim.Clock for testing. Every call that changes the display or blocks is
// appended to a log in call order.
type Recorder struct {
	mu  sync.Mutex
	ops []string

	// GlyphWidth is the advance MeasureText uses per byte. Zero means 7.
	GlyphWidth int
	Size       image.Point
	UpdateErr  error
	DecodeErr  error
	Updates    int
	Sleeps     []time.Duration
}

func (r *Recorder) record(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, fmt.Sprintf(format, args...))
}

// Ops returns a copy of the operation log.
func (r *Recorder) Ops() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.ops...)
}

// Reset clears the operation log and counters.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = nil
	r.Updates = 0
	r.Sleeps = nil
}

func (r *Recorder) CreatePen(red, green, blue uint8) display.Pen {
	return display.PenFor(display.Colour{R: red, G: green, B: blue})
}

func (r *Recorder) SetPen(p display.Pen) { r.record("pen%s", p.Colour()) }
func (r *Recorder) Clear()              { r.record("clear") }
func (r *Recorder) RemoveClip()         { r.record("unclip") }
func (r *Recorder) SetThickness(n int)  { r.record("thickness(%d)", n) }

func (r *Recorder) SetClip(x, y, w, h int) {
	r.record("clip(%d,%d,%d,%d)", x, y, w, h)
}

func (r *Recorder) Text(text string, x, y, wrap int, scale float64) {
	r.record("text(%q,%d,%d,%d,%v)", text, x, y, wrap, scale)
}

func (r *Recorder) MeasureText(text string, scale float64) int {
	w := r.GlyphWidth
	if w == 0 {
		w = 7
	}
	return int(float64(len(text)*w) * scale)
}

func (r *Recorder) SetFont(name string) error {
	r.record("font(%s)", name)
	return nil
}

func (r *Recorder) Snapshot() *image.RGBA {
	size := r.Size
	if size == (image.Point{}) {
		size = image.Pt(display.Width, display.Height)
	}
	return image.NewRGBA(image.Rectangle{Max: size})
}

// Update implements display.Presenter.
func (r *Recorder) Update(display.Surface) error {
	r.record("update")
	r.mu.Lock()
	r.Updates++
	r.mu.Unlock()
	return r.UpdateErr
}

// Decode implements sprite.Decoder.
func (r *Recorder) Decode(path string, x, y int, scale float64, source image.Rectangle) error {
	r.record("decode(%s,%d,%d,%v,%v)", path, x, y, scale, source)
	return r.DecodeErr
}

// Sleep implements anim.Clock without blocking. It fails with ctx.Err()
// once ctx is done.
func (r *Recorder) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.record("sleep(%s)", d)
	r.mu.Lock()
	r.Sleeps = append(r.Sleeps, d)
	r.mu.Unlock()
	return nil
}
