package apis

import (
	"net/http"

	"github.com/mugiliam/brewcatalogsrv/internal/catalogmanager"
	"github.com/mugiliam/brewcatalogsrv/pkg/httpx"
)

func listBeers(r *http.Request) (*httpx.Response, error) {
	beers, err := catalogmanager.ListBeers(r.Context())
	if err != nil {
		return nil, ToHttpxError(err)
	}
	rsp := &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   beers,
	}
	return rsp, nil
}

func getBeer(r *http.Request) (*httpx.Response, error) {
	bm, err := loadBeer(r)
	if err != nil {
		return nil, err
	}
	rsp := &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   bm.Summary(),
	}
	return rsp, nil
}

func getBeerDetails(r *http.Request) (*httpx.Response, error) {
	bm, err := loadBeer(r)
	if err != nil {
		return nil, err
	}
	d, appErr := bm.Detail()
	if appErr != nil {
		return nil, ToHttpxError(appErr)
	}
	rsp := &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   d,
	}
	return rsp, nil
}

func loadBeer(r *http.Request) (catalogmanager.BeerManager, error) {
	id, err := getBeerId(r)
	if err != nil {
		return nil, err
	}
	bm, appErr := catalogmanager.LoadBeerManagerByID(r.Context(), id)
	if appErr != nil {
		return nil, ToHttpxError(appErr)
	}
	return bm, nil
}
