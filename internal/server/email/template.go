package email

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
	"sync"
)

//go:embed templates/*.html
var templateFS embed.FS

// templateCache compiles templates on first use and memoizes them by name.
type templateCache struct {
	mu       sync.Mutex
	compiled map[string]*template.Template
}

func newTemplateCache() *templateCache {
	return &templateCache{compiled: make(map[string]*template.Template)}
}

func (c *templateCache) render(name string, data any) (string, error) {
	tpl, err := c.lookup(name)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if err := tpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("rendering template %s: %w", name, err)
	}
	return b.String(), nil
}

func (c *templateCache) lookup(name string) (*template.Template, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if tpl, ok := c.compiled[name]; ok {
		return tpl, nil
	}

	tpl, err := template.ParseFS(templateFS, "templates/"+name+".html")
	if err != nil {
		return nil, fmt.Errorf("email template not found: %s: %w", name, err)
	}
	c.compiled[name] = tpl
	return tpl, nil
}
