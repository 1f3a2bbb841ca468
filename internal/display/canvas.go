package display

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// alphaThreshold is the 16-bit alpha above which a source pixel lights an LED.
const alphaThreshold = 0x8000

// Canvas is an in-memory RGB framebuffer implementing Surface.
type Canvas struct {
	img       *image.RGBA
	clip      image.Rectangle
	pen       Pen
	face      font.Face
	thickness int
}

var _ Surface = (*Canvas)(nil)

// NewCanvas creates a black canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	c := &Canvas{
		img:       img,
		clip:      img.Bounds(),
		thickness: 1,
	}
	c.face, _ = lookupFace(DefaultFont)
	c.Clear()
	return c
}

// Bounds returns the full canvas rectangle.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Bounds()
}

// Clip returns the active clip rectangle.
func (c *Canvas) Clip() image.Rectangle {
	return c.clip
}

// At returns the colour of a single pixel.
func (c *Canvas) At(x, y int) Colour {
	p := c.img.RGBAAt(x, y)
	return Colour{R: p.R, G: p.G, B: p.B}
}

func (c *Canvas) CreatePen(r, g, b uint8) Pen {
	return PenFor(Colour{R: r, G: g, B: b})
}

func (c *Canvas) SetPen(p Pen) {
	c.pen = p
}

// Clear fills the clip rectangle with the current pen.
func (c *Canvas) Clear() {
	draw.Draw(c.img, c.clip, image.NewUniform(c.pen.Colour().RGBA()), image.Point{}, draw.Src)
}

func (c *Canvas) SetClip(x, y, w, h int) {
	c.clip = image.Rect(x, y, x+w, y+h).Intersect(c.img.Bounds())
}

func (c *Canvas) RemoveClip() {
	c.clip = c.img.Bounds()
}

func (c *Canvas) SetFont(name string) error {
	f, ok := lookupFace(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFont, name)
	}
	c.face = f
	return nil
}

func (c *Canvas) SetThickness(n int) {
	if n < 1 {
		n = 1
	}
	c.thickness = n
}

func (c *Canvas) MeasureText(text string, scale float64) int {
	return scaled(font.MeasureString(c.face, text).Ceil(), scale)
}

func (c *Canvas) Text(text string, x, y, wrap int, scale float64) {
	m := c.face.Metrics()
	lineHeight := scaled(m.Height.Ceil(), scale)
	for i, line := range c.wrapLines(text, wrap, scale) {
		c.drawLine(line, x, y+i*lineHeight, scale)
	}
}

func (c *Canvas) wrapLines(text string, wrap int, scale float64) []string {
	if wrap <= 0 {
		return []string{text}
	}
	var lines []string
	current := ""
	for _, word := range strings.Fields(text) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if current != "" && c.MeasureText(candidate, scale) > wrap {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

func (c *Canvas) drawLine(line string, x, y int, scale float64) {
	m := c.face.Metrics()
	w := font.MeasureString(c.face, line).Ceil()
	h := (m.Ascent + m.Descent).Ceil()
	if w <= 0 || h <= 0 {
		return
	}

	glyphs := image.NewAlpha(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  glyphs,
		Src:  image.Opaque,
		Face: c.face,
		Dot:  fixed.P(0, m.Ascent.Ceil()),
	}
	d.DrawString(line)

	mask := image.NewAlpha(image.Rect(0, 0, scaled(w, scale), scaled(h, scale)))
	draw.NearestNeighbor.Scale(mask, mask.Bounds(), glyphs, glyphs.Bounds(), draw.Src, nil)

	col := c.pen.Colour().RGBA()
	b := mask.Bounds()
	for py := b.Min.Y; py < b.Max.Y; py++ {
		for px := b.Min.X; px < b.Max.X; px++ {
			if uint32(mask.AlphaAt(px, py).A)<<8 >= alphaThreshold {
				c.plot(x+px, y+py, col)
			}
		}
	}
}

// DrawImage composites src with its top-left corner at `at`. Pixels under
// half opacity are skipped; the rest are written unblended.
func (c *Canvas) DrawImage(src image.Image, at image.Point) {
	b := src.Bounds()
	for sy := b.Min.Y; sy < b.Max.Y; sy++ {
		for sx := b.Min.X; sx < b.Max.X; sx++ {
			px := color.NRGBAModel.Convert(src.At(sx, sy)).(color.NRGBA)
			if uint32(px.A)<<8 < alphaThreshold {
				continue
			}
			c.set(at.X+sx-b.Min.X, at.Y+sy-b.Min.Y, color.RGBA{R: px.R, G: px.G, B: px.B, A: 0xff})
		}
	}
}

// Snapshot returns a copy of the pixels.
func (c *Canvas) Snapshot() *image.RGBA {
	out := image.NewRGBA(c.img.Bounds())
	copy(out.Pix, c.img.Pix)
	return out
}

func (c *Canvas) plot(x, y int, col color.RGBA) {
	for dy := 0; dy < c.thickness; dy++ {
		for dx := 0; dx < c.thickness; dx++ {
			c.set(x+dx, y+dy, col)
		}
	}
}

func (c *Canvas) set(x, y int, col color.RGBA) {
	if !image.Pt(x, y).In(c.clip) {
		return
	}
	c.img.SetRGBA(x, y, col)
}

func scaled(n int, scale float64) int {
	v := int(math.Round(float64(n) * scale))
	if v < 1 && n > 0 {
		v = 1
	}
	return v
}
