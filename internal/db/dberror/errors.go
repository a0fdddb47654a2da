package dberror

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"net"
	"net/http"

	"github.com/jackc/pgconn"
	"github.com/mugiliam/brewcatalogsrv/pkg/apperrors"
)

var (
	ErrDatabase            apperrors.Error = apperrors.New("db error").SetStatusCode(http.StatusInternalServerError)
	ErrNotFound            apperrors.Error = ErrDatabase.Msg("not found").SetStatusCode(http.StatusNotFound)
	ErrInvalidInput        apperrors.Error = ErrDatabase.Msg("invalid input").SetStatusCode(http.StatusBadRequest)
	ErrStorageUnavailable  apperrors.Error = ErrDatabase.Msg("storage unavailable").SetStatusCode(http.StatusServiceUnavailable)
	ErrPersistenceRejected apperrors.Error = ErrDatabase.Msg("persistence rejected")
	ErrUnsupportedDriver   apperrors.Error = ErrDatabase.Msg("unsupported database driver")
)

// SQLSTATE classes that mean the server could not be used at all.
var unavailableClasses = map[string]bool{
	"08": true, // connection exception
	"28": true, // invalid authorization specification
	"3D": true, // invalid catalog name
	"53": true, // insufficient resources
	"57": true, // operator intervention
}

// SQLSTATE classes that mean the server refused the row.
var rejectedClasses = map[string]bool{
	"22": true, // data exception
	"23": true, // integrity constraint violation
}

// FromStoreError classifies an error returned by the driver. Server-reported
// errors are split by SQLSTATE class; transport level failures are
// ErrStorageUnavailable.
func FromStoreError(err error) apperrors.Error {
	if err == nil {
		return nil
	}
	if ae, ok := err.(apperrors.Error); ok {
		return ae
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound.Err(err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		class := ""
		if len(pgErr.Code) >= 2 {
			class = pgErr.Code[:2]
		}
		switch {
		case rejectedClasses[class]:
			return ErrPersistenceRejected.Err(err)
		case unavailableClasses[class]:
			return ErrStorageUnavailable.Err(err)
		}
		return ErrDatabase.Err(err)
	}

	if isConnectionError(err) {
		return ErrStorageUnavailable.Err(err)
	}
	return ErrDatabase.Err(err)
}

// database/sql does not export the error returned by a closed *sql.DB.
const dbClosedText = "sql: database is closed"

func isConnectionError(err error) bool {
	var netErr net.Error
	switch {
	case err.Error() == dbClosedText:
		return true
	case errors.As(err, &netErr),
		errors.Is(err, driver.ErrBadConn),
		errors.Is(err, sql.ErrConnDone),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled),
		errors.Is(err, io.EOF),
		errors.Is(err, io.ErrUnexpectedEOF),
		pgconn.Timeout(err),
		pgconn.SafeToRetry(err):
		return true
	}
	return false
}
