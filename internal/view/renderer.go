package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/page.html
var templateFS embed.FS

// Renderer writes pages as HTML
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded page template
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/page.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render executes the page template into w
func (r *Renderer) Render(w io.Writer, page Page) error {
	if err := r.tmpl.ExecuteTemplate(w, "page.html", page); err != nil {
		return fmt.Errorf("failed to execute page template: %w", err)
	}
	return nil
}
