// Package web holds the HTML templates rendered by the controllers.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses every page and the shared layout blocks. Pages are looked
// up by file name, e.g. "index.html".
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
}
