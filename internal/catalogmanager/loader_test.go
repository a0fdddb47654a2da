package catalogmanager

import (
	"testing"

	"github.com/mugiliam/brewcatalogsrv/internal/geo"
	schemaerr "github.com/mugiliam/brewcatalogsrv/pkg/schemas/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportBeers(t *testing.T) {
	ctx := newTestContext()
	data := `
- brewery_name: Acme
  beer_name: Pale
  style: IPA
  longitude: -122.4
  latitude: 37.8
- brewery_name: Acme
  beer_name: Dark
  style: Stout
  flavor_profile: [coffee, chocolate]
  nutritional_info:
    carbs: 20
`
	n, err := ImportBeers(ctx, []byte(data))
	require.Nil(t, err)
	assert.Equal(t, 2, n)

	list, err := ListBeers(ctx)
	require.Nil(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Pale", list[0].BeerName)
	assert.Equal(t, "Dark", list[1].BeerName)
}

func TestImportBeersStopsAtFailure(t *testing.T) {
	ctx := newTestContext()
	data := `
- brewery_name: Acme
  beer_name: Pale
  style: IPA
- brewery_name: Acme
  beer_name: Broken
- brewery_name: Acme
  beer_name: Never
  style: Lager
`
	n, err := ImportBeers(ctx, []byte(data))
	require.NotNil(t, err)
	assert.Equal(t, 1, n)
	assert.ErrorIs(t, err, schemaerr.ErrMissingRequired)
	assert.Equal(t, "beer 1: missing required field: style", err.ErrorAll())

	list, lerr := ListBeers(ctx)
	require.Nil(t, lerr)
	assert.Len(t, list, 1)

	n, err = ImportBeers(ctx, []byte("- {brewery_name: A, beer_name: B, style: C, latitude: 1}"))
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, geo.ErrIncompleteCoordinate)
}

func TestImportBeersNotAList(t *testing.T) {
	ctx := newTestContext()
	_, err := ImportBeers(ctx, []byte("brewery_name: Acme"))
	assert.ErrorIs(t, err, ErrInvalidBeerList)

	_, err = ImportBeers(ctx, []byte("- [unterminated"))
	assert.ErrorIs(t, err, ErrInvalidBeerList)
}
