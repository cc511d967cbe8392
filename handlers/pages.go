package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"storefront/acquire"
	"storefront/catalog"
	"storefront/pkg/errx"
	"storefront/views"
)

func HomeHandler(p *acquire.Pipeline, v *views.Renderer, featuredLimit int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			writeError(w, r, v, errx.NotFound())
			return
		}
		if !allowRead(w, r) {
			return
		}
		res := p.Acquire(r.Context(), acquire.Featured(featuredLimit))
		w.Header().Set(sourceHeader, res.Source())
		render(w, r, v, views.Page{
			Name:    views.PageHome,
			Title:   "Walk on the Edge",
			Nav:     views.Nav("/"),
			Content: views.HomeContent{Cards: views.Cards(res.Products)},
		})
	}
}

func ProductsPageHandler(p *acquire.Pipeline, v *views.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !allowRead(w, r) {
			return
		}
		res := p.Acquire(r.Context(), acquire.Catalog())
		w.Header().Set(sourceHeader, res.Source())
		render(w, r, v, views.Page{
			Name:    views.PageProducts,
			Title:   "All Products",
			Nav:     views.Nav("/products"),
			Content: views.ProductsContent{Cards: views.Cards(res.Products)},
		})
	}
}

// StaticPageHandler serves pages that need no product data.
func StaticPageHandler(v *views.Renderer, name, title, path string, content func() any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !allowRead(w, r) {
			return
		}
		render(w, r, v, views.Page{
			Name:    name,
			Title:   title,
			Nav:     views.Nav(path),
			Content: content(),
		})
	}
}

func ExploreContent() any {
	return views.ExploreContent{Collections: catalog.Collections()}
}

func AboutContent() any {
	return views.About()
}

func TermsContent() any {
	return views.Terms()
}

const sourceHeader = "X-Catalog-Source"

func allowRead(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func render(w http.ResponseWriter, r *http.Request, v *views.Renderer, page views.Page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := v.Render(w, page); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("page", page.Name).Msg("render failed")
		writeError(w, r, v, err)
	}
}

// writeError renders the error page, or plain text if even that fails.
func writeError(w http.ResponseWriter, r *http.Request, v *views.Renderer, err error) {
	status, msg := errx.StatusOf(err)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	page := views.Page{
		Name:    views.PageError,
		Title:   http.StatusText(status),
		Nav:     views.Nav(""),
		Content: views.ErrorContent{Status: status, Message: msg},
	}
	if renderErr := v.Render(w, page); renderErr != nil {
		zerolog.Ctx(r.Context()).Error().Err(renderErr).Msg("render error page failed")
		_, _ = w.Write([]byte(msg))
	}
}
