package db

import (
	"context"

	"github.com/mugiliam/brewcatalogsrv/internal/config"
	"github.com/mugiliam/brewcatalogsrv/internal/db/dberror"
	"github.com/mugiliam/brewcatalogsrv/internal/db/dbmanager"
	"github.com/mugiliam/brewcatalogsrv/internal/db/memdb"
	"github.com/mugiliam/brewcatalogsrv/internal/db/models"
	"github.com/mugiliam/brewcatalogsrv/internal/db/postgresql"
	"github.com/mugiliam/brewcatalogsrv/pkg/apperrors"
	"github.com/rs/zerolog/log"
)

// DB_ is the persistence layer of the beer catalog. Every method is a single
// round trip to the backing store; none of them retry.
type DB_ interface {
	// CreateBeer stores a validated beer atomically and returns the id the
	// store assigned to it.
	CreateBeer(ctx context.Context, beer *models.Beer) (int64, apperrors.Error)
	// ListBeers returns the projection of every stored beer in id order.
	ListBeers(ctx context.Context) ([]models.BeerSummary, apperrors.Error)
	// GetBeer returns the beer with the given id or dberror.ErrNotFound.
	GetBeer(ctx context.Context, id int64) (*models.Beer, apperrors.Error)

	// InitSchema creates the storage layout if it is missing.
	InitSchema(ctx context.Context) apperrors.Error
	Ping(ctx context.Context) apperrors.Error
	// Close releases the underlying pool.
	Close(ctx context.Context)
}

const (
	DriverPostgresql = "postgresql"
	DriverMemory     = "memory"
)

type ctxDbKeyType string

const ctxDbKey ctxDbKeyType = "BrewCatalogDb"

// WithDB returns a copy of ctx carrying the store.
func WithDB(ctx context.Context, store DB_) context.Context {
	return context.WithValue(ctx, ctxDbKey, store)
}

// DB returns the store carried by ctx, or nil if there is none.
func DB(ctx context.Context) DB_ {
	if store, ok := ctx.Value(ctxDbKey).(DB_); ok {
		return store
	}
	return nil
}

// Open creates the store selected by cfg.Driver. It is called once at
// startup and the result is held for the life of the process.
func Open(ctx context.Context, cfg config.DatabaseConfig) (DB_, apperrors.Error) {
	switch cfg.Driver {
	case DriverPostgresql:
		pool, err := dbmanager.NewPostgresqlDb(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return postgresql.NewBeerCatalogDb(pool), nil
	case DriverMemory:
		log.Ctx(ctx).Warn().Msg("using in-memory beer store; data is lost on exit")
		return memdb.NewMemCatalogDb(), nil
	}
	log.Ctx(ctx).Error().Str("driver", cfg.Driver).Msg("unsupported database driver")
	return nil, dberror.ErrUnsupportedDriver.Msg("unsupported database driver " + cfg.Driver)
}
