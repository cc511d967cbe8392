package handlers

import (
	"encoding/json"
	"mime"
	"net/http"

	"github.com/rs/zerolog"

	"storefront/handoff"
	"storefront/models"
	"storefront/pkg/errx"
	"storefront/validators"
	"storefront/views"
)

const maxCheckoutBody = 16 << 10

// CheckoutHandler accepts the order form and sends the shopper on to the
// messaging app. Form posts get a 303 to the hand-off link; JSON posts get the
// link back in the body.
func CheckoutHandler(b handoff.Builder, v *views.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxCheckoutBody)

		mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
		asJSON := mediaType == "application/json"

		var form models.CheckoutForm
		if asJSON {
			if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
				http.Error(w, "Bad JSON", http.StatusBadRequest)
				return
			}
		} else {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "Bad request", http.StatusBadRequest)
				return
			}
			form = models.CheckoutForm{
				Name:        r.PostForm.Get("name"),
				Phone:       r.PostForm.Get("phone"),
				Address:     r.PostForm.Get("address"),
				PostalCode:  r.PostForm.Get("postal_code"),
				ProductName: r.PostForm.Get("model_name"),
				Price:       r.PostForm.Get("price"),
				Category:    r.PostForm.Get("category"),
			}
		}

		validators.NormalizeCheckout(&form)
		if err := validators.ValidateCheckout(&form); err != nil {
			if asJSON {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			writeError(w, r, v, errx.BadRequest(err))
			return
		}

		link := b.Link(form)
		zerolog.Ctx(r.Context()).Info().Str("product", form.ProductName).Msg("checkout handed off")

		if asJSON {
			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(map[string]string{"link": link}); err != nil {
				zerolog.Ctx(r.Context()).Error().Err(err).Msg("write checkout response failed")
			}
			return
		}
		http.Redirect(w, r, link, http.StatusSeeOther)
	}
}
