// README: Embedded HTML templates for the form and results pages.
package views

import (
	"embed"
	"html/template"
)

//go:embed templates/*.tmpl
var files embed.FS

// Load parses every template. Names are the file base names, e.g. "index.tmpl".
func Load() (*template.Template, error) {
	return template.New("").ParseFS(files, "templates/*.tmpl")
}

// MustLoad is Load for router construction, where a broken template is a build defect.
func MustLoad() *template.Template {
	return template.Must(Load())
}
