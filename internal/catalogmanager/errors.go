package catalogmanager

import (
	"net/http"

	"github.com/mugiliam/brewcatalogsrv/pkg/apperrors"
)

var (
	ErrBeerError          apperrors.Error = apperrors.New("error in processing beer").SetStatusCode(http.StatusInternalServerError)
	ErrBeerNotFound       apperrors.Error = ErrBeerError.Msg("beer not found").SetStatusCode(http.StatusNotFound)
	ErrInvalidBeer        apperrors.Error = ErrBeerError.Msg("invalid beer").SetStatusCode(http.StatusBadRequest)
	ErrUnableToLoadBeer   apperrors.Error = ErrBeerError.Msg("unable to load beer")
	ErrUnableToStoreBeer  apperrors.Error = ErrBeerError.Msg("unable to store beer")
	ErrStorageUnavailable apperrors.Error = ErrBeerError.Msg("storage unavailable").SetStatusCode(http.StatusServiceUnavailable)
)
