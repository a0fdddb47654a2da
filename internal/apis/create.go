package apis

import (
	"errors"
	"io"
	"net/http"

	"github.com/mugiliam/brewcatalogsrv/internal/catalogmanager"
	"github.com/mugiliam/brewcatalogsrv/pkg/api"
	"github.com/mugiliam/brewcatalogsrv/pkg/httpx"
	"github.com/rs/zerolog/log"
)

// MaxRequestBodySize bounds the body accepted by POST /api/beer.
const MaxRequestBodySize = 1 << 20

// Create a new beer
func createBeer(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	if r.Body == nil {
		return nil, httpx.ErrInvalidRequest()
	}

	req, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, MaxRequestBodySize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Ctx(ctx).Debug().Int64("limit", tooLarge.Limit).Msg("request body too large")
			return nil, httpx.ErrInvalidRequest("request body too large")
		}
		return nil, httpx.ErrUnableToReadRequest()
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	bm, appErr := catalogmanager.NewBeerManager(ctx, req)
	if appErr != nil {
		return nil, ToHttpxError(appErr)
	}
	if appErr := bm.Save(ctx); appErr != nil {
		return nil, ToHttpxError(appErr)
	}
	log.Ctx(ctx).Info().Stringer("beer_id", bm.ID()).Msg("beer created")

	rsp := &httpx.Response{
		StatusCode: http.StatusCreated,
		Location:   bm.ID().Location(),
		Response: &api.CreateBeerRsp{
			Message: api.BeerCreatedMessage,
		},
	}
	return rsp, nil
}
