package site

import (
	"bytes"
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Render writes the full HTML document for p.
func Render(w io.Writer, p *Page) error {
	return templates.ExecuteTemplate(w, "layout", p)
}

// RenderCard writes a single project card.
func RenderCard(w io.Writer, c ProjectCard) error {
	return templates.ExecuteTemplate(w, "card", c)
}

// RenderBytes renders p into memory so a failed render never reaches a
// client half written.
func RenderBytes(p *Page) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
