package dbmanager

import (
	"context"
	"database/sql"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/stdlib"
	"github.com/mugiliam/brewcatalogsrv/internal/config"
	"github.com/mugiliam/brewcatalogsrv/internal/db/dberror"
	"github.com/mugiliam/brewcatalogsrv/pkg/apperrors"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 5 * time.Second

// NewPostgresqlDb opens a connection pool using the pgx driver and verifies
// that the server is reachable.
func NewPostgresqlDb(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, apperrors.Error) {
	connConfig, err := pgx.ParseConfig(cfg.DSN)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("invalid database DSN")
		return nil, dberror.ErrInvalidInput.MsgErr("invalid database DSN", err)
	}
	db := stdlib.OpenDB(*connConfig)

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pctx); err != nil {
		_ = db.Close()
		log.Ctx(ctx).Error().Err(err).Str("host", connConfig.Host).Msg("unable to reach database")
		return nil, dberror.ErrStorageUnavailable.Err(err)
	}

	log.Ctx(ctx).Info().
		Str("host", connConfig.Host).
		Str("database", connConfig.Database).
		Int("max_open_conns", cfg.MaxOpenConns).
		Msg("connected to postgresql")
	return db, nil
}
