package show

import (
	"context"
	"fmt"
	"image"
	"log"
	"time"

	"github.com/JPM1118/spookshow/internal/anim"
	"github.com/JPM1118/spookshow/internal/display"
)

// Scene names, in the order Run plays them.
const (
	SceneGhosts   = "ghosts"
	SceneFade     = "fade"
	SceneBats     = "bats"
	SceneHold     = "hold"
	ScenePumpkin  = "pumpkin"
	SceneBanner   = "banner"
	ScenePumpkin2 = "pumpkin2"
)

// Config holds the show's colours and timings.
type Config struct {
	Black  display.Colour
	Sky    display.Colour
	Red    display.Colour
	Yellow display.Colour

	FadeSteps int
	FadeDelay time.Duration
	// Hold is how long the blank screen stays up after the bats and after
	// the second pumpkin sequence.
	Hold        time.Duration
	PumpkinClip image.Rectangle
	Font        string
	Banner      anim.Banner
}

// Sheets are the spritesheets the sequences draw from.
type Sheets struct {
	Ghosts   anim.Drawer
	Bats     anim.Drawer
	Pumpkins anim.Drawer
}

// Scene is reported to the scene hook as each part of the show starts.
type Scene struct {
	Name string
	Loop int
	At   time.Time
}

// Show sequences the Halloween animation.
type Show struct {
	st      anim.Stage
	cfg     Config
	sheets  Sheets
	seqs    anim.Sequences
	onScene func(Scene)
	now     func() time.Time
}

// Option configures a Show.
type Option func(*Show)

// WithSceneHook registers fn to be called at the start of every scene.
func WithSceneHook(fn func(Scene)) Option {
	return func(s *Show) {
		s.onScene = fn
	}
}

// New creates a show. The ghosts, bats, pumpkin and pumpkin2 sequences must
// all be present in seqs.
func New(st anim.Stage, cfg Config, sheets Sheets, seqs anim.Sequences, opts ...Option) (*Show, error) {
	for _, name := range []string{SceneGhosts, SceneBats, ScenePumpkin, ScenePumpkin2} {
		if _, err := seqs.Get(name); err != nil {
			return nil, err
		}
	}
	s := &Show{
		st:      st,
		cfg:     cfg,
		sheets:  sheets,
		seqs:    seqs,
		onScene: func(Scene) {},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Run plays the show loops times. A loops value of zero or less repeats
// until ctx is cancelled.
func (s *Show) Run(ctx context.Context, loops int) error {
	if err := s.st.Surface.SetFont(s.cfg.Font); err != nil {
		return err
	}
	for loop := 1; loops <= 0 || loop <= loops; loop++ {
		if err := s.iteration(ctx, loop); err != nil {
			return fmt.Errorf("loop %d: %w", loop, err)
		}
	}
	return nil
}

func (s *Show) iteration(ctx context.Context, loop int) error {
	cfg := s.cfg

	s.scene(SceneGhosts, loop)
	if err := s.play(ctx, SceneGhosts, s.sheets.Ghosts, cfg.Black); err != nil {
		return err
	}

	s.scene(SceneFade, loop)
	if err := anim.Fade(ctx, s.st, cfg.Black, cfg.Sky, cfg.FadeSteps, cfg.FadeDelay); err != nil {
		return err
	}

	s.scene(SceneBats, loop)
	if err := s.play(ctx, SceneBats, s.sheets.Bats, cfg.Sky); err != nil {
		return err
	}
	if err := s.hold(ctx, loop); err != nil {
		return err
	}

	s.scene(ScenePumpkin, loop)
	clip := cfg.PumpkinClip
	s.st.Surface.SetClip(clip.Min.X, clip.Min.Y, clip.Dx(), clip.Dy())
	if err := s.play(ctx, ScenePumpkin, s.sheets.Pumpkins, cfg.Black); err != nil {
		return err
	}

	// The pumpkin clip stays until Scroll replaces it, so the last pumpkin
	// frame remains beside the banner.
	s.scene(SceneBanner, loop)
	s.st.Surface.SetPen(s.st.Surface.CreatePen(cfg.Red.R, cfg.Red.G, cfg.Red.B))
	s.st.Surface.SetThickness(1)
	if err := anim.Scroll(ctx, s.st, cfg.Banner); err != nil {
		return err
	}

	s.scene(ScenePumpkin2, loop)
	if err := s.play(ctx, ScenePumpkin2, s.sheets.Pumpkins, cfg.Black); err != nil {
		return err
	}
	return s.hold(ctx, loop)
}

// Solo plays a single named sequence loops times (forever when loops <= 0)
// on its usual background.
func (s *Show) Solo(ctx context.Context, name string, loops int) error {
	sheet, bg, err := s.part(name)
	if err != nil {
		return err
	}
	for loop := 1; loops <= 0 || loop <= loops; loop++ {
		s.scene(name, loop)
		if err := s.play(ctx, name, sheet, bg); err != nil {
			return fmt.Errorf("loop %d: %w", loop, err)
		}
	}
	return nil
}

func (s *Show) part(name string) (anim.Drawer, display.Colour, error) {
	switch name {
	case SceneGhosts:
		return s.sheets.Ghosts, s.cfg.Black, nil
	case SceneBats:
		return s.sheets.Bats, s.cfg.Sky, nil
	case ScenePumpkin, ScenePumpkin2:
		return s.sheets.Pumpkins, s.cfg.Black, nil
	}
	_, err := s.seqs.Get(name)
	if err == nil {
		err = fmt.Errorf("sequence %q has no spritesheet", name)
	}
	return nil, display.Colour{}, err
}

func (s *Show) play(ctx context.Context, name string, sheet anim.Drawer, bg display.Colour) error {
	frames, err := s.seqs.Get(name)
	if err != nil {
		return err
	}
	if err := anim.Play(ctx, s.st, frames, sheet, bg); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func (s *Show) hold(ctx context.Context, loop int) error {
	s.scene(SceneHold, loop)
	if err := s.st.ClearTo(s.cfg.Black); err != nil {
		return fmt.Errorf("hold: %w", err)
	}
	return s.st.Clock.Sleep(ctx, s.cfg.Hold)
}

func (s *Show) scene(name string, loop int) {
	log.Printf("scene %s (loop %d)", name, loop)
	s.onScene(Scene{Name: name, Loop: loop, At: s.now()})
}
