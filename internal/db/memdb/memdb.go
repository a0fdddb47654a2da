// Package memdb is an in-process beer store for local runs and tests. It
// keeps rows in insertion order and enforces the same column widths as the
// beers table.
package memdb

import (
	"context"
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/jackc/pgtype"
	"github.com/mugiliam/brewcatalogsrv/internal/db/dberror"
	"github.com/mugiliam/brewcatalogsrv/internal/db/models"
	"github.com/mugiliam/brewcatalogsrv/pkg/apperrors"
	"github.com/rs/zerolog/log"
)

type memCatalogDb struct {
	mu     sync.RWMutex
	nextID int64
	beers  []models.Beer
	index  map[int64]int
	closed bool
}

func NewMemCatalogDb() *memCatalogDb {
	return &memCatalogDb{
		nextID: 1,
		index:  make(map[int64]int),
	}
}

func (m *memCatalogDb) CreateBeer(ctx context.Context, beer *models.Beer) (int64, apperrors.Error) {
	if err := checkWidths(beer); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to insert beer")
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return 0, dberror.ErrStorageUnavailable.Msg("store is closed")
	}

	id := m.nextID
	m.nextID++
	row := cloneBeer(beer)
	row.ID = id
	m.index[id] = len(m.beers)
	m.beers = append(m.beers, row)

	beer.ID = id
	return id, nil
}

func (m *memCatalogDb) ListBeers(ctx context.Context) ([]models.BeerSummary, apperrors.Error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, dberror.ErrStorageUnavailable.Msg("store is closed")
	}

	beers := make([]models.BeerSummary, 0, len(m.beers))
	for i := range m.beers {
		beers = append(beers, m.beers[i].Summary())
	}
	return beers, nil
}

func (m *memCatalogDb) GetBeer(ctx context.Context, id int64) (*models.Beer, apperrors.Error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, dberror.ErrStorageUnavailable.Msg("store is closed")
	}

	i, ok := m.index[id]
	if !ok {
		log.Ctx(ctx).Info().Int64("id", id).Msg("beer not found")
		return nil, dberror.ErrNotFound.Msg("beer not found")
	}
	b := cloneBeer(&m.beers[i])
	return &b, nil
}

func (m *memCatalogDb) InitSchema(ctx context.Context) apperrors.Error {
	return nil
}

func (m *memCatalogDb) Ping(ctx context.Context) apperrors.Error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return dberror.ErrStorageUnavailable.Msg("store is closed")
	}
	return nil
}

func (m *memCatalogDb) Close(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
}

type column struct {
	name  string
	value string
	valid bool
	width int
}

func checkWidths(b *models.Beer) apperrors.Error {
	cols := []column{
		{"brewery_name", b.BreweryName, true, 100},
		{"beer_name", b.BeerName, true, 100},
		{"style", b.Style, true, 50},
		{"location", b.Location.String, b.Location.Valid, 100},
		{"packaging_type", b.PackagingType.String, b.PackagingType.Valid, 50},
		{"availability", b.Availability.String, b.Availability.Valid, 50},
		{"serving_temperature", b.ServingTemperature.String, b.ServingTemperature.Valid, 50},
		{"distributor", b.Distributor.String, b.Distributor.Valid, 100},
	}
	for _, c := range cols {
		if c.valid && utf8.RuneCountInString(c.value) > c.width {
			return dberror.ErrPersistenceRejected.Msg(
				fmt.Sprintf("value too long for type character varying(%d) in column %s", c.width, c.name))
		}
	}
	if b.Calories.Valid && (b.Calories.Int64 > 1<<31-1 || b.Calories.Int64 < -1<<31) {
		return dberror.ErrPersistenceRejected.Msg("integer out of range in column calories")
	}
	return nil
}

func cloneBeer(b *models.Beer) models.Beer {
	c := *b
	c.FlavorProfile = cloneArray(b.FlavorProfile)
	c.Ingredients = cloneArray(b.Ingredients)
	c.SpecialFeatures = cloneArray(b.SpecialFeatures)
	c.PairingSuggestions = cloneArray(b.PairingSuggestions)
	c.UserTags = cloneArray(b.UserTags)
	c.NutritionalInfo = cloneJSONB(b.NutritionalInfo)
	c.BreweryDetails = cloneJSONB(b.BreweryDetails)
	return c
}

func cloneArray(a pgtype.TextArray) pgtype.TextArray {
	c := a
	c.Elements = append([]pgtype.Text(nil), a.Elements...)
	c.Dimensions = append([]pgtype.ArrayDimension(nil), a.Dimensions...)
	return c
}

func cloneJSONB(j pgtype.JSONB) pgtype.JSONB {
	c := j
	c.Bytes = append([]byte(nil), j.Bytes...)
	return c
}
