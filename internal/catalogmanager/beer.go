package catalogmanager

import (
	"context"
	"errors"

	"github.com/mugiliam/brewcatalogsrv/internal/db"
	"github.com/mugiliam/brewcatalogsrv/internal/db/dberror"
	"github.com/mugiliam/brewcatalogsrv/internal/db/models"
	"github.com/mugiliam/brewcatalogsrv/internal/geo"
	"github.com/mugiliam/brewcatalogsrv/pkg/api"
	"github.com/mugiliam/brewcatalogsrv/pkg/apperrors"
	"github.com/mugiliam/brewcatalogsrv/pkg/schemas"
	"github.com/mugiliam/brewcatalogsrv/pkg/types"
	"github.com/rs/zerolog/log"
)

// BeerManager holds a single beer between the request and the store.
type BeerManager interface {
	ID() types.BeerId
	Summary() api.BeerSummary
	Detail() (*api.BeerDetail, apperrors.Error)
	Save(ctx context.Context) apperrors.Error
}

type beerManager struct {
	b models.Beer
}

var _ BeerManager = (*beerManager)(nil)

// NewBeerManager validates a beer request body and prepares the row to be
// stored. Nothing is written until Save is called.
func NewBeerManager(ctx context.Context, rsrcJson []byte) (BeerManager, apperrors.Error) {
	bs, err := schemas.ParseBeer(rsrcJson)
	if err != nil {
		log.Ctx(ctx).Debug().Err(err).Msg("invalid beer")
		return nil, err
	}

	point, errGeo := geo.FromCoordinates(bs.Longitude, bs.Latitude)
	if errGeo != nil {
		if ae, ok := apperrors.As(errGeo); ok {
			return nil, ae
		}
		return nil, ErrInvalidBeer.Err(errGeo)
	}

	b := models.Beer{
		BreweryName:        bs.BreweryName,
		BeerName:           bs.BeerName,
		Style:              bs.Style,
		Price:              models.NullFloat(bs.Price),
		Abv:                models.NullFloat(bs.Abv),
		FlavorProfile:      models.TextArray(bs.FlavorProfile),
		Ingredients:        models.TextArray(bs.Ingredients),
		Location:           models.NullString(bs.Location),
		Rating:             models.NullFloat(bs.Rating),
		PackagingType:      models.NullString(bs.PackagingType),
		Availability:       models.NullString(bs.Availability),
		ServingTemperature: models.NullString(bs.ServingTemperature),
		Calories:           models.NullInt(bs.Calories.Int64()),
		Distributor:        models.NullString(bs.Distributor),
		SpecialFeatures:    models.TextArray(bs.SpecialFeatures),
		PairingSuggestions: models.TextArray(bs.PairingSuggestions),
		UserTags:           models.TextArray(bs.UserTags),
		PopularityScore:    models.NullFloat(bs.PopularityScore),
		Geolocation:        point,
	}
	var errDoc error
	if b.NutritionalInfo, errDoc = models.Document(bs.NutritionalInfo); errDoc != nil {
		return nil, ErrInvalidBeer.MsgErr("invalid nutritional_info", errDoc)
	}
	if b.BreweryDetails, errDoc = models.Document(bs.BreweryDetails); errDoc != nil {
		return nil, ErrInvalidBeer.MsgErr("invalid brewery_details", errDoc)
	}

	return &beerManager{
		b: b,
	}, nil
}

func (bm *beerManager) ID() types.BeerId {
	return types.BeerId(bm.b.ID)
}

func (bm *beerManager) Summary() api.BeerSummary {
	return summaryFromModel(bm.b.Summary())
}

func (bm *beerManager) Detail() (*api.BeerDetail, apperrors.Error) {
	b := &bm.b
	d := &api.BeerDetail{
		ID:                 b.ID,
		BreweryName:        b.BreweryName,
		BeerName:           b.BeerName,
		Style:              b.Style,
		Price:              models.FloatPtr(b.Price),
		Abv:                models.FloatPtr(b.Abv),
		FlavorProfile:      models.Strings(b.FlavorProfile),
		Ingredients:        models.Strings(b.Ingredients),
		Location:           models.StringPtr(b.Location),
		Rating:             models.FloatPtr(b.Rating),
		PackagingType:      models.StringPtr(b.PackagingType),
		Availability:       models.StringPtr(b.Availability),
		ServingTemperature: models.StringPtr(b.ServingTemperature),
		Calories:           models.IntPtr(b.Calories),
		Distributor:        models.StringPtr(b.Distributor),
		SpecialFeatures:    models.Strings(b.SpecialFeatures),
		PairingSuggestions: models.Strings(b.PairingSuggestions),
		UserTags:           models.Strings(b.UserTags),
		PopularityScore:    models.FloatPtr(b.PopularityScore),
	}
	var err error
	if d.NutritionalInfo, err = models.DocumentJSON(b.NutritionalInfo); err != nil {
		return nil, ErrUnableToLoadBeer.Err(err)
	}
	if d.BreweryDetails, err = models.DocumentJSON(b.BreweryDetails); err != nil {
		return nil, ErrUnableToLoadBeer.Err(err)
	}
	if p := b.Geolocation.Ptr(); p != nil {
		d.Geolocation = &api.Geolocation{Longitude: p.Lon, Latitude: p.Lat}
	}
	return d, nil
}

// Save stores the beer and records the id the store assigned to it.
func (bm *beerManager) Save(ctx context.Context) apperrors.Error {
	store := db.DB(ctx)
	if store == nil {
		log.Ctx(ctx).Error().Msg("no beer store in context")
		return ErrStorageUnavailable
	}
	if _, err := store.CreateBeer(ctx, &bm.b); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to create beer")
		return storeError(err, ErrUnableToStoreBeer)
	}
	return nil
}

func LoadBeerManagerByID(ctx context.Context, id types.BeerId) (BeerManager, apperrors.Error) {
	store := db.DB(ctx)
	if store == nil {
		log.Ctx(ctx).Error().Msg("no beer store in context")
		return nil, ErrStorageUnavailable
	}
	b, err := store.GetBeer(ctx, int64(id))
	if err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return nil, ErrBeerNotFound
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to load beer")
		return nil, storeError(err, ErrUnableToLoadBeer)
	}
	return &beerManager{
		b: *b,
	}, nil
}

// ListBeers returns the projection of every stored beer in id order. An
// empty store yields an empty, non-nil slice.
func ListBeers(ctx context.Context) ([]api.BeerSummary, apperrors.Error) {
	store := db.DB(ctx)
	if store == nil {
		log.Ctx(ctx).Error().Msg("no beer store in context")
		return nil, ErrStorageUnavailable
	}
	rows, err := store.ListBeers(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to list beers")
		return nil, storeError(err, ErrUnableToLoadBeer)
	}
	beers := make([]api.BeerSummary, 0, len(rows))
	for _, r := range rows {
		beers = append(beers, summaryFromModel(r))
	}
	return beers, nil
}

// storeError keeps the store error as the cause so callers can still match
// dberror sentinels, but exposes only a generic message.
func storeError(err apperrors.Error, fallback apperrors.Error) apperrors.Error {
	if errors.Is(err, dberror.ErrStorageUnavailable) {
		return ErrStorageUnavailable.Err(err)
	}
	return fallback.Err(err)
}

func summaryFromModel(s models.BeerSummary) api.BeerSummary {
	return api.BeerSummary{
		ID:          s.ID,
		BreweryName: s.BreweryName,
		BeerName:    s.BeerName,
		Style:       s.Style,
		Price:       models.FloatPtr(s.Price),
		Abv:         models.FloatPtr(s.Abv),
	}
}
