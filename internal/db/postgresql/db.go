package postgresql

import (
	"context"
	"database/sql"

	"github.com/mugiliam/brewcatalogsrv/internal/db/dberror"
	"github.com/mugiliam/brewcatalogsrv/pkg/apperrors"
	"github.com/rs/zerolog/log"
)

type beerCatalogDb struct {
	db *sql.DB
}

// NewBeerCatalogDb wraps an open connection pool. The pool is owned by the
// returned value and released by Close.
func NewBeerCatalogDb(db *sql.DB) *beerCatalogDb {
	return &beerCatalogDb{db: db}
}

func (h *beerCatalogDb) conn() *sql.DB {
	return h.db
}

func (h *beerCatalogDb) Ping(ctx context.Context) apperrors.Error {
	if err := h.conn().PingContext(ctx); err != nil {
		return dberror.FromStoreError(err)
	}
	return nil
}

func (h *beerCatalogDb) Close(ctx context.Context) {
	if err := h.db.Close(); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to close database")
		return
	}
	log.Ctx(ctx).Info().Msg("postgresql connection closed")
}
