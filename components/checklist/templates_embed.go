package checklist

import (
	"embed"
	"fmt"
	"io/fs"

	template "github.com/goliatone/go-template"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

// NewTemplateRenderer creates a go-template renderer backed by the embedded
// templates only, so it loads from any working directory.
func NewTemplateRenderer() (Renderer, error) {
	templates, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return nil, fmt.Errorf("checklist: embedded templates: %w", err)
	}
	return template.NewRenderer(
		template.WithFS(templates),
		template.WithExtension(".html"),
	)
}
