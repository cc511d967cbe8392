package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"storefront/acquire"
	"storefront/models"
)

type productsResponse struct {
	Source   string           `json:"source"`
	Products []models.Product `json:"products"`
}

// ProductsHandler answers with the same data set a page would show, as JSON.
func ProductsHandler(p *acquire.Pipeline, query func() acquire.Query) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !allowRead(w, r) {
			return
		}

		res := p.Acquire(r.Context(), query())

		products := res.Products
		if products == nil {
			products = []models.Product{}
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set(sourceHeader, res.Source())
		if err := json.NewEncoder(w).Encode(productsResponse{Source: res.Source(), Products: products}); err != nil {
			zerolog.Ctx(r.Context()).Error().Err(err).Str("query", res.Query).Msg("write products response failed")
		}
	}
}
