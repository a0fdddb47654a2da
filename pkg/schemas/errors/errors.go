package errors

import (
	"net/http"
	"strings"

	"github.com/mugiliam/brewcatalogsrv/pkg/apperrors"
)

var (
	ErrSchemaValidation apperrors.Error = apperrors.New("error validating beer").SetStatusCode(http.StatusBadRequest)
	ErrInvalidSchema    apperrors.Error = ErrSchemaValidation.Msg("invalid beer schema").SetExpandError(true)
	ErrMissingRequired  apperrors.Error = ErrSchemaValidation.Msg("missing required field")
	ErrEmptyRequest     apperrors.Error = ErrSchemaValidation.Msg("empty request")
)

// ErrMissingRequiredField names the required field that is absent or empty.
func ErrMissingRequiredField(field string) apperrors.Error {
	return ErrMissingRequired.Msg("missing required field: " + field)
}

// ValidationError describes a problem with a single attribute.
type ValidationError struct {
	Field  string
	Value  any
	ErrStr string
}

func (ve ValidationError) Error() string {
	if ve.Field == "" {
		return ve.ErrStr
	}
	return ve.Field + ": " + ve.ErrStr
}

type ValidationErrors []ValidationError

func (ves ValidationErrors) Error() string {
	s := make([]string, 0, len(ves))
	for _, ve := range ves {
		s = append(s, ve.Error())
	}
	return strings.Join(s, "; ")
}
