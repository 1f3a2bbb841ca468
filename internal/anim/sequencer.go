package anim

import (
	"context"
	"fmt"

	"github.com/JPM1118/spookshow/internal/display"
)

// Drawer draws one spritesheet cell. sprite.Sheet implements it.
type Drawer interface {
	Draw(col, row, destX, destY int, scale float64) error
}

// Play renders frames in order. Each frame clears to background, draws its
// sprites, presents, then holds for the frame's pause.
func Play(ctx context.Context, st Stage, frames []Frame, sheet Drawer, background display.Colour) error {
	for i, f := range frames {
		st.Fill(background)

		scale := f.SpriteScale()
		for _, s := range f.Sprites {
			if err := sheet.Draw(s.Col, s.Row, s.X, s.Y, scale); err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
		}

		if err := st.Present(); err != nil {
			return fmt.Errorf("frame %d: present: %w", i, err)
		}
		if err := st.Clock.Sleep(ctx, f.Pause.Duration); err != nil {
			return err
		}
	}
	return nil
}
