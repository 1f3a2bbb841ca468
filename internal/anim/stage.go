package anim

import (
	"context"
	"time"

	"github.com/JPM1118/spookshow/internal/display"
)

// Clock suspends the animation between frames.
type Clock interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// RealClock sleeps on the wall clock. It returns early with ctx.Err() when
// ctx is cancelled.
type RealClock struct{}

func (RealClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Stage bundles the collaborators every animation step draws through.
type Stage struct {
	Surface display.Surface
	Out     display.Presenter
	Clock   Clock
}

// Present pushes the surface to the display.
func (s Stage) Present() error {
	return s.Out.Update(s.Surface)
}

// Fill sets the pen to c and clears the surface (inside any clip).
func (s Stage) Fill(c display.Colour) {
	s.Surface.SetPen(s.Surface.CreatePen(c.R, c.G, c.B))
	s.Surface.Clear()
}

// ClearTo fills the surface with c and presents it.
func (s Stage) ClearTo(c display.Colour) error {
	s.Fill(c)
	return s.Present()
}
