// Package assets holds the built-in spritesheets and animation sequences.
package assets

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed *.png sequences.yml
var builtin embed.FS

// FS returns dir as a filesystem, or the built-in assets when dir is empty.
func FS(dir string) fs.FS {
	if dir == "" {
		return builtin
	}
	return os.DirFS(dir)
}
