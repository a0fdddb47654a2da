package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/mugiliam/brewcatalogsrv/pkg/httpx"
	"github.com/rs/zerolog/log"
)

// Recoverer turns a panic in a handler into a 500 JSON error.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}
			log.Ctx(r.Context()).Error().
				Interface("panic", rvr).
				Bytes("stack", debug.Stack()).
				Msg("handler panicked")
			httpx.ErrApplicationError().Send(w)
		}()
		next.ServeHTTP(w, r)
	})
}
