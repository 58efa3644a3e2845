// Package site renders the server side pages of the multilingual site.
//
// Pages are html/template files embedded in the binary. Each page is parsed
// together with the shared layout and partials into its own template set so
// that every page can define its own "content" block.
package site

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"

	"github.com/gin-gonic/gin/render"

	"github.com/guttosm/multilingual/internal/messages"
)

//go:embed templates
var templateFS embed.FS

// Page template names.
const (
	TemplateHome     = "home"
	TemplateAbout    = "about"
	TemplateTemplate = "template"
	TemplateError    = "error"
)

// layoutName is the entry point every page set executes.
const layoutName = "layout"

// Page is a routable page of the site.
type Page struct {
	// Slug is the path below the locale prefix; empty for the home page.
	Slug string
	// Namespace is the page's message namespace.
	Namespace string
	// Template is the page template name.
	Template string
}

// Pages lists the routable pages in navigation order.
var Pages = []Page{
	{Slug: "", Namespace: "HomePage", Template: TemplateHome},
	{Slug: "about", Namespace: "AboutPage", Template: TemplateAbout},
	{Slug: "template", Namespace: "TemplatePage", Template: TemplateTemplate},
}

// PageBySlug returns the page served at slug.
func PageBySlug(slug string) (Page, bool) {
	for _, p := range Pages {
		if p.Slug == slug {
			return p, true
		}
	}
	return Page{}, false
}

// Renderer is a gin HTML renderer holding one template set per page.
type Renderer struct {
	templates map[string]*template.Template
}

var _ render.HTMLRender = (*Renderer)(nil)

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	return newRenderer(templateFS)
}

func newRenderer(fsys fs.FS) (*Renderer, error) {
	base, err := template.New(layoutName).Funcs(funcs()).ParseFS(fsys, "templates/layout.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	files, err := fs.Glob(fsys, "templates/pages/*.html")
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}

	r := &Renderer{templates: make(map[string]*template.Template, len(files))}
	for _, file := range files {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout: %w", err)
		}
		if _, err := t.ParseFS(fsys, file); err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		r.templates[strings.TrimSuffix(path.Base(file), ".html")] = t
	}
	return r, nil
}

// Instance implements render.HTMLRender. Unknown names render the error
// page.
func (r *Renderer) Instance(name string, data any) render.Render {
	t, ok := r.templates[name]
	if !ok {
		t = r.templates[TemplateError]
	}
	return render.HTML{Template: t, Name: layoutName, Data: data}
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"upper": strings.ToUpper,
	}
}

// Data is what page templates are executed with.
type Data struct {
	Locale    string
	Theme     Theme
	Messages  messages.Dictionary
	Namespace string
	Nav       []NavItem
	Languages []LanguageLink
	Toggle    ThemeToggle
	Year      int
	// Text holds server generated copy that is not part of the messages
	// tree: the title, body and back link of the error page.
	Text map[string]string
}

// T looks up key in the page's own namespace.
func (d Data) T(key string) string {
	return d.Messages.Lookup(d.Namespace, key)
}

// In looks up key in another namespace, e.g. a component's.
func (d Data) In(namespace, key string) string {
	return d.Messages.Lookup(namespace, key)
}

// Href prefixes a site path with the current locale.
func (d Data) Href(p string) string {
	return LocalePath(d.Locale, p)
}
