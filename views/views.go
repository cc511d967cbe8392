// Package views renders the storefront pages from embedded html/template files.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"time"

	"storefront/models"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const Brand = "POSH"

// Page names, one template file each.
const (
	PageHome     = "home"
	PageExplore  = "explore"
	PageProducts = "products"
	PageAbout    = "about"
	PageTerms    = "terms"
	PageError    = "error"
)

type NavLink struct {
	Label  string
	Path   string
	Active bool
}

var navLinks = []NavLink{
	{Label: "Home", Path: "/"},
	{Label: "Collections", Path: "/explore"},
	{Label: "Shop", Path: "/products"},
	{Label: "Philosophy", Path: "/about"},
	{Label: "Terms", Path: "/terms"},
}

// Nav returns the navigation with the link for path marked active.
func Nav(path string) []NavLink {
	links := make([]NavLink, len(navLinks))
	for i, l := range navLinks {
		l.Active = l.Path == path
		links[i] = l
	}
	return links
}

type Page struct {
	Name    string
	Title   string
	Brand   string
	Year    int
	Nav     []NavLink
	Content any
}

type HomeContent struct {
	Cards []Card
}

type ExploreContent struct {
	Collections []models.Collection
}

type ProductsContent struct {
	Cards []Card
}

type Stat struct {
	Value string
	Label string
}

type AboutContent struct {
	Stats []Stat
}

type TermsSection struct {
	Heading string
	Body    string
}

type TermsContent struct {
	Updated  string
	Sections []TermsSection
}

type ErrorContent struct {
	Status  int
	Message string
}

var funcs = template.FuncMap{
	"add": func(a, b int) int { return a + b },
}

type Renderer struct {
	pages map[string]*template.Template
	now   func() time.Time
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template), now: time.Now}
	for _, name := range []string{PageHome, PageExplore, PageProducts, PageAbout, PageTerms, PageError} {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render executes the page into a buffer first so a template error never
// leaves a half written response behind.
func (r *Renderer) Render(w io.Writer, page Page) error {
	t, ok := r.pages[page.Name]
	if !ok {
		return fmt.Errorf("unknown page %q", page.Name)
	}
	if page.Brand == "" {
		page.Brand = Brand
	}
	if page.Year == 0 {
		page.Year = r.now().Year()
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", page); err != nil {
		return fmt.Errorf("render %s: %w", page.Name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// Static returns the stylesheet and images served under /static/.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
