package postgresql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mugiliam/brewcatalogsrv/internal/db/dberror"
	"github.com/mugiliam/brewcatalogsrv/internal/db/models"
	"github.com/mugiliam/brewcatalogsrv/pkg/apperrors"
	"github.com/rs/zerolog/log"
)

// CreateBeer inserts a beer in a single transaction and returns the id
// assigned by the database. beer.ID is set on success.
func (h *beerCatalogDb) CreateBeer(ctx context.Context, beer *models.Beer) (id int64, err apperrors.Error) {
	tx, errStd := h.conn().BeginTx(ctx, nil)
	if errStd != nil {
		log.Ctx(ctx).Error().Err(errStd).Msg("failed to begin transaction")
		return 0, dberror.FromStoreError(errStd)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
				log.Ctx(ctx).Error().Err(rollbackErr).Msg("failed to rollback transaction")
			}
		}
	}()

	query := `
		INSERT INTO beers (
			brewery_name, beer_name, style, price, abv,
			flavor_profile, ingredients, location, rating, packaging_type,
			availability, serving_temperature, calories, nutritional_info, distributor,
			special_features, pairing_suggestions, brewery_details, user_tags, popularity_score,
			geolocation
		)
		VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20,
			ST_GeomFromEWKB(decode($21, 'hex'))
		)
		RETURNING id;
	`

	errStd = tx.QueryRowContext(ctx, query,
		beer.BreweryName,
		beer.BeerName,
		beer.Style,
		beer.Price,
		beer.Abv,
		beer.FlavorProfile,
		beer.Ingredients,
		beer.Location,
		beer.Rating,
		beer.PackagingType,
		beer.Availability,
		beer.ServingTemperature,
		beer.Calories,
		beer.NutritionalInfo,
		beer.Distributor,
		beer.SpecialFeatures,
		beer.PairingSuggestions,
		beer.BreweryDetails,
		beer.UserTags,
		beer.PopularityScore,
		beer.Geolocation,
	).Scan(&id)
	if errStd != nil {
		log.Ctx(ctx).Error().Err(errStd).
			Str("brewery_name", beer.BreweryName).
			Str("beer_name", beer.BeerName).
			Msg("failed to insert beer")
		return 0, dberror.FromStoreError(errStd)
	}

	if errStd := tx.Commit(); errStd != nil {
		log.Ctx(ctx).Error().Err(errStd).Msg("failed to commit transaction")
		return 0, dberror.FromStoreError(errStd)
	}

	beer.ID = id
	return id, nil
}

// ListBeers returns the projection of every beer ordered by id.
func (h *beerCatalogDb) ListBeers(ctx context.Context) ([]models.BeerSummary, apperrors.Error) {
	query := `
		SELECT id, brewery_name, beer_name, style, price, abv
		FROM beers
		ORDER BY id;
	`
	rows, err := h.conn().QueryContext(ctx, query)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to list beers")
		return nil, dberror.FromStoreError(err)
	}
	defer rows.Close()

	beers := make([]models.BeerSummary, 0)
	for rows.Next() {
		var b models.BeerSummary
		if err := rows.Scan(&b.ID, &b.BreweryName, &b.BeerName, &b.Style, &b.Price, &b.Abv); err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to scan beer")
			return nil, dberror.FromStoreError(err)
		}
		beers = append(beers, b)
	}
	if err := rows.Err(); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to iterate beers")
		return nil, dberror.FromStoreError(err)
	}
	return beers, nil
}

// GetBeer retrieves the full record of a beer.
func (h *beerCatalogDb) GetBeer(ctx context.Context, id int64) (*models.Beer, apperrors.Error) {
	query := `
		SELECT id, brewery_name, beer_name, style, price, abv,
			flavor_profile, ingredients, location, rating, packaging_type,
			availability, serving_temperature, calories, nutritional_info, distributor,
			special_features, pairing_suggestions, brewery_details, user_tags, popularity_score,
			ST_AsHexEWKB(geolocation)
		FROM beers
		WHERE id = $1;
	`
	var b models.Beer
	err := h.conn().QueryRowContext(ctx, query, id).Scan(
		&b.ID,
		&b.BreweryName,
		&b.BeerName,
		&b.Style,
		&b.Price,
		&b.Abv,
		&b.FlavorProfile,
		&b.Ingredients,
		&b.Location,
		&b.Rating,
		&b.PackagingType,
		&b.Availability,
		&b.ServingTemperature,
		&b.Calories,
		&b.NutritionalInfo,
		&b.Distributor,
		&b.SpecialFeatures,
		&b.PairingSuggestions,
		&b.BreweryDetails,
		&b.UserTags,
		&b.PopularityScore,
		&b.Geolocation,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Ctx(ctx).Info().Int64("id", id).Msg("beer not found")
			return nil, dberror.ErrNotFound.Msg("beer not found")
		}
		log.Ctx(ctx).Error().Err(err).Int64("id", id).Msg("failed to retrieve beer")
		return nil, dberror.FromStoreError(err)
	}
	return &b, nil
}
