package cmd

import (
	"fmt"

	"github.com/JPM1118/spookshow/internal/anim"
	"github.com/JPM1118/spookshow/internal/assets"
	"github.com/JPM1118/spookshow/internal/config"
	"github.com/JPM1118/spookshow/internal/display"
	"github.com/JPM1118/spookshow/internal/pngdec"
	"github.com/JPM1118/spookshow/internal/show"
	"github.com/JPM1118/spookshow/internal/sprite"
)

// build wires a canvas, PNG decoder, spritesheets and sequences into a show
// that presents to out.
func build(c config.Config, out display.Presenter, clock anim.Clock, opts ...show.Option) (*show.Show, *display.Canvas, error) {
	fsys := assets.FS(c.AssetsDir)
	canvas := display.NewCanvas(c.Display.Width, c.Display.Height)

	var decOpts []pngdec.Option
	if c.Display.CacheSprites {
		decOpts = append(decOpts, pngdec.WithCache())
	}
	dec := pngdec.New(fsys, canvas, decOpts...)

	seqs, err := anim.LoadSequences(fsys, c.Show.Sequences)
	if err != nil {
		return nil, nil, err
	}

	sheet := func(s config.SheetConfig) *sprite.Sheet {
		return sprite.NewSheet(dec, s.Path, s.Width, s.Height)
	}
	sheets := show.Sheets{
		Ghosts:   sheet(c.Sheets.Ghosts),
		Bats:     sheet(c.Sheets.Bats),
		Pumpkins: sheet(c.Sheets.Pumpkins),
	}

	st := anim.Stage{Surface: canvas, Out: out, Clock: clock}
	s, err := show.New(st, showConfig(c), sheets, seqs, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("sequences %s: %w", c.Show.Sequences, err)
	}
	return s, canvas, nil
}

func showConfig(c config.Config) show.Config {
	return show.Config{
		Black:       c.Show.Black.Colour,
		Sky:         c.Show.Sky.Colour,
		Red:         c.Show.Red.Colour,
		Yellow:      c.Show.Yellow.Colour,
		FadeSteps:   c.Show.FadeSteps,
		FadeDelay:   c.Show.FadeDelay.Duration,
		Hold:        c.Show.Hold.Duration,
		PumpkinClip: c.Show.PumpkinClip.Rectangle(),
		Font:        c.Banner.Font,
		Banner: anim.Banner{
			Text:       c.Banner.Text,
			Window:     c.Banner.Window.Rectangle(),
			Y:          c.Banner.Y,
			Scale:      c.Banner.Scale,
			Foreground: c.Show.Red.Colour,
			Shadow:     c.Show.Yellow.Colour,
			Delay:      c.Banner.StepDelay.Duration,
		},
	}
}
