package handlers

import (
	"net/http"

	"storefront/acquire"
	"storefront/handoff"
	"storefront/source"
	"storefront/views"
)

type Deps struct {
	Source        source.Source
	Pipeline      *acquire.Pipeline
	Views         *views.Renderer
	Handoff       handoff.Builder
	FeaturedLimit int
}

func Register(mux *http.ServeMux, d Deps) {
	featured := func() acquire.Query { return acquire.Featured(d.FeaturedLimit) }

	mux.HandleFunc("/", HomeHandler(d.Pipeline, d.Views, d.FeaturedLimit))
	mux.HandleFunc("/explore", StaticPageHandler(d.Views, views.PageExplore, "Collections", "/explore", ExploreContent))
	mux.HandleFunc("/products", ProductsPageHandler(d.Pipeline, d.Views))
	mux.HandleFunc("/about", StaticPageHandler(d.Views, views.PageAbout, "Our Legacy", "/about", AboutContent))
	mux.HandleFunc("/terms", StaticPageHandler(d.Views, views.PageTerms, "Terms of Service", "/terms", TermsContent))
	mux.HandleFunc("/checkout", CheckoutHandler(d.Handoff, d.Views))

	mux.HandleFunc("/api/products", ProductsHandler(d.Pipeline, acquire.Catalog))
	mux.HandleFunc("/api/products/featured", ProductsHandler(d.Pipeline, featured))
	mux.HandleFunc("/ping", PingHandler(d.Source))

	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServerFS(views.Static())))
}
