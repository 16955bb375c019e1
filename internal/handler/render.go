package handler

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/authgate/authgate-go/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{"index", "register", "login", "dashboard", "error"}

// PageData is the rendering context shared by all templates.
type PageData struct {
	User      *model.UserView
	Error     string
	CSRFToken string
}

// Renderer holds the parsed page templates.
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses the embedded templates. Each page is parsed on its
// own so a broken template fails at startup, not mid-request.
func NewRenderer() (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.ParseFS(templateFS, "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", name, err)
		}
		templates[name] = tmpl
	}
	return &Renderer{templates: templates}, nil
}

// Render executes the named template. The page is buffered first so an
// execution failure can still become a clean 500 instead of a
// half-written response.
func (rn *Renderer) Render(w http.ResponseWriter, status int, name string, data PageData) {
	tmpl, ok := rn.templates[name]
	if !ok {
		slog.Error("unknown template", "name", name)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		slog.Error("rendering template failed", "name", name, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
