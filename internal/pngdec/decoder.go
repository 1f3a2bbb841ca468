package pngdec

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"math"

	"golang.org/x/image/draw"

	"github.com/JPM1118/spookshow/internal/sprite"
)

// ErrOutOfBounds is returned when a source rectangle is not inside the image.
var ErrOutOfBounds = errors.New("source rectangle outside image")

// Compositor receives decoded regions. display.Canvas implements it.
type Compositor interface {
	DrawImage(src image.Image, at image.Point)
}

type regionKey struct {
	path   string
	source image.Rectangle
	scale  float64
}

// Decoder reads PNG files from a filesystem and composites sub-rectangles
// onto a Compositor.
type Decoder struct {
	fsys  fs.FS
	dst   Compositor
	cache map[regionKey]image.Image
}

var _ sprite.Decoder = (*Decoder)(nil)

// Option configures a Decoder.
type Option func(*Decoder)

// WithCache keeps every decoded region in memory, keyed by path, source
// rectangle and scale. Without it each Decode reopens and decodes the file.
func WithCache() Option {
	return func(d *Decoder) {
		d.cache = make(map[regionKey]image.Image)
	}
}

// New creates a decoder reading from fsys and drawing onto dst.
func New(fsys fs.FS, dst Compositor, opts ...Option) *Decoder {
	d := &Decoder{fsys: fsys, dst: dst}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode decodes source from the image at path, scales it, and composites
// it with its top-left corner at (destX, destY).
func (d *Decoder) Decode(path string, destX, destY int, scale float64, source image.Rectangle) error {
	key := regionKey{path: path, source: source, scale: scale}
	region, ok := d.cache[key]
	if !ok {
		var err error
		region, err = d.region(path, source, scale)
		if err != nil {
			return err
		}
		if d.cache != nil {
			d.cache[key] = region
		}
	}
	d.dst.DrawImage(region, image.Pt(destX, destY))
	return nil
}

// Cached reports how many regions are held in the cache.
func (d *Decoder) Cached() int {
	return len(d.cache)
}

func (d *Decoder) region(path string, source image.Rectangle, scale float64) (image.Image, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("decode %s: scale must be positive, got %v", path, scale)
	}

	f, err := d.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if source.Empty() || !source.In(img.Bounds()) {
		return nil, fmt.Errorf("%s: %v in %v: %w", path, source, img.Bounds(), ErrOutOfBounds)
	}

	out := image.NewNRGBA(image.Rect(0, 0, scaled(source.Dx(), scale), scaled(source.Dy(), scale)))
	draw.NearestNeighbor.Scale(out, out.Bounds(), img, source, draw.Src, nil)
	return out, nil
}

// Size returns the pixel dimensions of the PNG at path without decoding it.
func Size(fsys fs.FS, path string) (image.Point, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return image.Point{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	if err != nil {
		return image.Point{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return image.Pt(cfg.Width, cfg.Height), nil
}

func scaled(n int, scale float64) int {
	v := int(math.Round(float64(n) * scale))
	if v < 1 {
		v = 1
	}
	return v
}
