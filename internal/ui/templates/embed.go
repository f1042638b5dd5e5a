// Package templates embeds the widget's HTML templates into the binary.
package templates

import (
	"embed"
	"io/fs"
)

//go:embed layouts pages partials
var files embed.FS

func FS() fs.FS {
	return files
}
