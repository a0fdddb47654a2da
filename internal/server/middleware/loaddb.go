package middleware

import (
	"net/http"

	"github.com/mugiliam/brewcatalogsrv/internal/db"
)

// LoadDB makes store available to handlers through db.DB. The store is owned
// by the caller and outlives every request.
func LoadDB(store db.DB_) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := db.WithDB(r.Context(), store)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
