package apis

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mugiliam/brewcatalogsrv/pkg/httpx"
)

type handlerParam struct {
	Method  string
	Path    string
	Handler httpx.RequestHandler
}

var beerHandlers = []handlerParam{
	{
		Method:  http.MethodPost,
		Path:    "/beer",
		Handler: createBeer,
	},
	{
		Method:  http.MethodGet,
		Path:    "/beers",
		Handler: listBeers,
	},
	{
		Method:  http.MethodGet,
		Path:    "/beer/{beerId}",
		Handler: getBeer,
	},
	{
		Method:  http.MethodGet,
		Path:    "/beer/{beerId}/details",
		Handler: getBeerDetails,
	},
}

// Router mounts the beer catalog handlers on r.
func Router(r chi.Router) {
	for _, handler := range beerHandlers {
		r.Method(handler.Method, handler.Path, httpx.WrapHttpRsp(handler.Handler))
	}
}
