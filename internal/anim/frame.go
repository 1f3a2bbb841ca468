package anim

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrUnknownSequence is returned when a named sequence is not loaded.
var ErrUnknownSequence = errors.New("unknown sequence")

// Sprite is one draw instruction: a sheet cell and where to put it.
type Sprite struct {
	Col, Row int
	X, Y     int
}

// UnmarshalYAML reads a sprite from a [col, row, x, y] sequence.
func (s *Sprite) UnmarshalYAML(value *yaml.Node) error {
	var v []int
	if err := value.Decode(&v); err != nil {
		return err
	}
	if len(v) != 4 {
		return fmt.Errorf("line %d: sprite needs [col, row, x, y], got %d values", value.Line, len(v))
	}
	*s = Sprite{Col: v[0], Row: v[1], X: v[2], Y: v[3]}
	return nil
}

// Pause is a frame hold time. In YAML it is either a number of seconds
// (0.2) or a duration string ("200ms").
type Pause struct {
	time.Duration
}

func (p *Pause) UnmarshalYAML(value *yaml.Node) error {
	var secs float64
	if err := value.Decode(&secs); err == nil {
		p.Duration = time.Duration(secs * float64(time.Second))
		return nil
	}
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid pause %q: %w", s, err)
	}
	p.Duration = d
	return nil
}

// Frame is one animation step.
type Frame struct {
	Sprites []Sprite `yaml:"frame"`
	Pause   Pause    `yaml:"pause"`
	// Scale is applied to every sprite in the frame. Zero means 1.
	Scale float64 `yaml:"scale"`
}

// SpriteScale returns the frame's scale, defaulting to 1.
func (f Frame) SpriteScale() float64 {
	if f.Scale == 0 {
		return 1
	}
	return f.Scale
}

// Sequences maps a sequence name to its frames.
type Sequences map[string][]Frame

// Get returns the named sequence.
func (s Sequences) Get(name string) ([]Frame, error) {
	frames, ok := s[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSequence, name)
	}
	return frames, nil
}

// LoadSequences reads sequence tables from a YAML file in fsys.
func LoadSequences(fsys fs.FS, path string) (Sequences, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read sequences: %w", err)
	}
	return ParseSequences(data)
}

// ParseSequences parses and validates YAML sequence tables.
func ParseSequences(data []byte) (Sequences, error) {
	var seqs Sequences
	if err := yaml.Unmarshal(data, &seqs); err != nil {
		return nil, fmt.Errorf("parse sequences: %w", err)
	}
	for name, frames := range seqs {
		for i, f := range frames {
			if f.Pause.Duration < 0 {
				return nil, fmt.Errorf("sequence %s frame %d: negative pause %s", name, i, f.Pause.Duration)
			}
			if f.Scale < 0 {
				return nil, fmt.Errorf("sequence %s frame %d: scale must be positive, got %v", name, i, f.Scale)
			}
		}
	}
	return seqs, nil
}
