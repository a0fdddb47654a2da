package postgresql

import (
	"context"

	"github.com/mugiliam/brewcatalogsrv/internal/db/dberror"
	"github.com/mugiliam/brewcatalogsrv/pkg/apperrors"
	"github.com/rs/zerolog/log"
)

var schemaStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS postgis;`,
	`CREATE TABLE IF NOT EXISTS beers (
		id                  SERIAL PRIMARY KEY,
		brewery_name        VARCHAR(100) NOT NULL,
		beer_name           VARCHAR(100) NOT NULL,
		style               VARCHAR(50) NOT NULL,
		price               DOUBLE PRECISION,
		abv                 DOUBLE PRECISION,
		flavor_profile      TEXT[],
		ingredients         TEXT[],
		location            VARCHAR(100),
		rating              DOUBLE PRECISION,
		packaging_type      VARCHAR(50),
		availability        VARCHAR(50),
		serving_temperature VARCHAR(50),
		calories            INTEGER,
		nutritional_info    JSONB,
		distributor         VARCHAR(100),
		special_features    TEXT[],
		pairing_suggestions TEXT[],
		brewery_details     JSONB,
		user_tags           TEXT[],
		popularity_score    DOUBLE PRECISION,
		geolocation         GEOMETRY(POINT, 4326)
	);`,
}

// InitSchema creates the PostGIS extension and the beers table if they do
// not exist. Existing tables are left untouched.
func (h *beerCatalogDb) InitSchema(ctx context.Context) apperrors.Error {
	for _, stmt := range schemaStatements {
		if _, err := h.conn().ExecContext(ctx, stmt); err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to initialize schema")
			return dberror.FromStoreError(err)
		}
	}
	log.Ctx(ctx).Info().Msg("beers schema ready")
	return nil
}
