package display

import (
	"errors"
	"sort"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/inconsolata"
)

// ErrUnknownFont is returned by SetFont for names not in Fonts.
var ErrUnknownFont = errors.New("unknown font")

// DefaultFont is the face a new Canvas starts with.
const DefaultFont = "bitmap"

var faces = map[string]font.Face{
	"bitmap":           basicfont.Face7x13,
	"inconsolata":      inconsolata.Regular8x16,
	"inconsolata-bold": inconsolata.Bold8x16,
}

// Fonts lists the available font names.
func Fonts() []string {
	names := make([]string, 0, len(faces))
	for name := range faces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupFace(name string) (font.Face, bool) {
	f, ok := faces[name]
	return f, ok
}
