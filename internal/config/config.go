package config

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/JPM1118/spookshow/internal/display"
)

// Config holds all configuration for spookshow.
type Config struct {
	Display   DisplayConfig `yaml:"display"`
	AssetsDir string        `yaml:"assets_dir"`
	Sheets    SheetsConfig  `yaml:"sheets"`
	Show      ShowConfig    `yaml:"show"`
	Banner    BannerConfig  `yaml:"banner"`
	LogFile   string        `yaml:"log_file"`
}

// DisplayConfig describes the emulated LED panel.
type DisplayConfig struct {
	Width        int  `yaml:"width"`
	Height       int  `yaml:"height"`
	CacheSprites bool `yaml:"cache_sprites"`
}

// SheetConfig locates one spritesheet and its cell size.
type SheetConfig struct {
	Path   string `yaml:"path"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// SheetsConfig names the three spritesheets the show uses.
type SheetsConfig struct {
	Ghosts   SheetConfig `yaml:"ghosts"`
	Bats     SheetConfig `yaml:"bats"`
	Pumpkins SheetConfig `yaml:"pumpkins"`
}

// ShowConfig controls colours and timings of the main loop.
type ShowConfig struct {
	Sequences   string   `yaml:"sequences"`
	FadeSteps   int      `yaml:"fade_steps"`
	FadeDelay   Duration `yaml:"fade_delay"`
	Hold        Duration `yaml:"hold"`
	Black       Colour   `yaml:"black"`
	Sky         Colour   `yaml:"sky"`
	Red         Colour   `yaml:"red"`
	Yellow      Colour   `yaml:"yellow"`
	PumpkinClip Rect     `yaml:"pumpkin_clip"`
}

// BannerConfig controls the scrolling text.
type BannerConfig struct {
	Text      string   `yaml:"text"`
	Window    Rect     `yaml:"window"`
	Y         int      `yaml:"y"`
	Scale     float64  `yaml:"scale"`
	Font      string   `yaml:"font"`
	StepDelay Duration `yaml:"step_delay"`
}

// Duration wraps time.Duration for YAML unmarshalling from strings like "100ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

// Colour wraps display.Colour for YAML unmarshalling from "#rrggbb".
type Colour struct {
	display.Colour
}

func (c *Colour) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := display.ParseHex(s)
	if err != nil {
		return err
	}
	c.Colour = parsed
	return nil
}

func (c Colour) MarshalYAML() (interface{}, error) {
	return c.Hex(), nil
}

// Rect is a rectangle written as x, y, width and height.
type Rect struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Rectangle converts r to an image.Rectangle.
func (r Rect) Rectangle() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

func hex(s string) Colour {
	c, err := display.ParseHex(s)
	if err != nil {
		panic(err)
	}
	return Colour{c}
}

// Defaults returns a Config matching the Galactic Unicorn Halloween demo.
func Defaults() Config {
	return Config{
		Display: DisplayConfig{
			Width:  display.Width,
			Height: display.Height,
		},
		Sheets: SheetsConfig{
			Ghosts:   SheetConfig{Path: "pacman_ghosts.png", Width: 11, Height: 11},
			Bats:     SheetConfig{Path: "bat3.png", Width: 31, Height: 13},
			Pumpkins: SheetConfig{Path: "pumpkins.png", Width: 13, Height: 11},
		},
		Show: ShowConfig{
			Sequences:   "sequences.yml",
			FadeSteps:   10,
			FadeDelay:   Duration{100 * time.Millisecond},
			Hold:        Duration{time.Second},
			Black:       hex("#000000"),
			Sky:         hex("#140ded"),
			Red:         hex("#600000"),
			Yellow:      hex("#7f5000"),
			PumpkinClip: Rect{X: 0, Y: 0, Width: 13, Height: 11},
		},
		Banner: BannerConfig{
			Text:      "Happy Hallowe'en",
			Window:    Rect{X: 14, Y: 0, Width: 41, Height: 11},
			Y:         -1,
			Scale:     1,
			Font:      display.DefaultFont,
			StepDelay: Duration{100 * time.Millisecond},
		},
	}
}

// Load reads the config file and merges with defaults.
// Missing file is not an error; defaults are used silently.
func Load() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads config from a specific path.
func LoadFrom(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Defaults(), fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return Defaults(), fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("display size must be positive, got %dx%d", c.Display.Width, c.Display.Height)
	}

	for name, s := range map[string]SheetConfig{
		"ghosts":   c.Sheets.Ghosts,
		"bats":     c.Sheets.Bats,
		"pumpkins": c.Sheets.Pumpkins,
	} {
		if s.Path == "" {
			return fmt.Errorf("sheets.%s.path must be set", name)
		}
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("sheets.%s cell size must be positive, got %dx%d", name, s.Width, s.Height)
		}
	}

	if c.Show.FadeSteps <= 0 {
		return fmt.Errorf("fade_steps must be positive, got %d", c.Show.FadeSteps)
	}
	for name, d := range map[string]time.Duration{
		"fade_delay": c.Show.FadeDelay.Duration,
		"hold":       c.Show.Hold.Duration,
		"step_delay": c.Banner.StepDelay.Duration,
	} {
		if d < 0 {
			return fmt.Errorf("%s must not be negative, got %s", name, d)
		}
	}

	if c.Banner.Scale <= 0 {
		return fmt.Errorf("banner scale must be positive, got %v", c.Banner.Scale)
	}
	if c.Banner.Window.Width <= 0 || c.Banner.Window.Height <= 0 {
		return fmt.Errorf("banner window must have positive size")
	}

	return nil
}

// Path returns the default config file location.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "spookshow", "config.yml")
}
