package handlers

import (
	"net/http"

	"storefront/source"
)

// PingHandler reports liveness. Sources that can ping are checked without
// reading any rows.
func PingHandler(src source.Source) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if pinger, ok := src.(source.Pinger); ok {
			if err := pinger.Ping(r.Context()); err != nil {
				http.Error(w, "source error", http.StatusServiceUnavailable)
				return
			}
		}
		w.Write([]byte("pong"))
	}
}
