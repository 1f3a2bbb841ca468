package anim

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JPM1118/spookshow/internal/display"
)

// ErrNoSteps is returned by Fade when steps is not positive.
var ErrNoSteps = errors.New("fade needs at least one step")

// DefaultFadeDelay is the hold between fade steps.
const DefaultFadeDelay = 100 * time.Millisecond

// FadeStep returns the colour at step i of a fade from start to end.
// Channels use truncating integer division, so the last step (steps-1)
// stops short of end.
func FadeStep(start, end display.Colour, i, steps int) display.Colour {
	lerp := func(a, b uint8) uint8 {
		return uint8(int(a) + (int(b)-int(a))*i/steps)
	}
	return display.Colour{
		R: lerp(start.R, end.R),
		G: lerp(start.G, end.G),
		B: lerp(start.B, end.B),
	}
}

// Fade clears the display to each intermediate colour from start towards
// end, holding each for delay.
func Fade(ctx context.Context, st Stage, start, end display.Colour, steps int, delay time.Duration) error {
	if steps <= 0 {
		return fmt.Errorf("%w: got %d", ErrNoSteps, steps)
	}
	for i := 0; i < steps; i++ {
		if err := st.ClearTo(FadeStep(start, end, i, steps)); err != nil {
			return fmt.Errorf("fade step %d: %w", i, err)
		}
		if err := st.Clock.Sleep(ctx, delay); err != nil {
			return err
		}
	}
	return nil
}
