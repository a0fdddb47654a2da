package apis

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mugiliam/brewcatalogsrv/internal/catalogmanager"
	"github.com/mugiliam/brewcatalogsrv/pkg/httpx"
	"github.com/mugiliam/brewcatalogsrv/pkg/types"
	"github.com/tidwall/gjson"
)

// getBeerId reads the {beerId} path segment. A segment that is not a
// non-negative integer names no beer, so it is reported as not found.
func getBeerId(r *http.Request) (types.BeerId, error) {
	id, ok := types.ParseBeerId(chi.URLParam(r, "beerId"))
	if !ok {
		return 0, ToHttpxError(catalogmanager.ErrBeerNotFound)
	}
	return id, nil
}

func validateRequest(reqJson []byte) error {
	if !gjson.ValidBytes(reqJson) {
		return httpx.ErrInvalidRequest("unable to parse request")
	}
	if !gjson.ParseBytes(reqJson).IsObject() {
		return httpx.ErrInvalidRequest("request must be a JSON object")
	}
	return nil
}
