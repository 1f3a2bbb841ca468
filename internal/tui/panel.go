package tui

import (
	"image"
	"sync/atomic"

	"github.com/JPM1118/spookshow/internal/display"
)

// Panel is a display.Presenter that hands each presented frame to the
// Matrix view. When the view falls behind, older frames are dropped.
type Panel struct {
	frames    chan *image.RGBA
	presented atomic.Int64
}

// NewPanel creates a Panel buffering up to buffer frames.
func NewPanel(buffer int) *Panel {
	if buffer < 1 {
		buffer = 1
	}
	return &Panel{frames: make(chan *image.RGBA, buffer)}
}

// Update snapshots s and queues the snapshot without blocking.
func (p *Panel) Update(s display.Surface) error {
	frame := s.Snapshot()
	p.presented.Add(1)

	select {
	case p.frames <- frame:
	default:
		// Drain one and resend
		select {
		case <-p.frames:
		default:
		}
		select {
		case p.frames <- frame:
		default:
		}
	}
	return nil
}

// Frames returns the channel the Matrix reads from.
func (p *Panel) Frames() <-chan *image.RGBA {
	return p.frames
}

// Presented returns how many frames have been presented.
func (p *Panel) Presented() int64 {
	return p.presented.Load()
}
