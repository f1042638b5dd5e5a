package handler

import (
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
)

// Renderer executes pages (layout + page + partials) and standalone partials
// from a template filesystem. Parsed pages are cached.
type Renderer struct {
	files     fs.FS
	templates map[string]*template.Template
	partials  *template.Template
	mu        sync.RWMutex
}

func NewRenderer(files fs.FS) (*Renderer, error) {
	partials, err := template.New("").ParseFS(files, "partials/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{
		files:     files,
		templates: make(map[string]*template.Template),
		partials:  partials,
	}, nil
}

func (r *Renderer) loadTemplate(name string) (*template.Template, error) {
	r.mu.RLock()
	if tmpl, ok := r.templates[name]; ok {
		r.mu.RUnlock()
		return tmpl, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if tmpl, ok := r.templates[name]; ok {
		return tmpl, nil
	}

	tmpl, err := template.New("").ParseFS(r.files,
		"layouts/base.html",
		"pages/"+name+".html",
		"partials/*.html",
	)
	if err != nil {
		return nil, err
	}

	r.templates[name] = tmpl
	return tmpl, nil
}

func (r *Renderer) Render(w io.Writer, name string, data any) error {
	tmpl, err := r.loadTemplate(name)
	if err != nil {
		return err
	}
	return tmpl.ExecuteTemplate(w, "base", data)
}

func (r *Renderer) RenderPartial(w io.Writer, name string, data any) error {
	return r.partials.ExecuteTemplate(w, name, data)
}

func (r *Renderer) HTML(c *gin.Context, code int, name string, data any) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(code)
	if err := r.Render(c.Writer, name, data); err != nil {
		c.String(http.StatusInternalServerError, "Template error: %v", err)
	}
}

func (r *Renderer) Partial(c *gin.Context, code int, name string, data any) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(code)
	if err := r.RenderPartial(c.Writer, name, data); err != nil {
		c.String(http.StatusInternalServerError, "Template error: %v", err)
	}
}
