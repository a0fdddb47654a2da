package models

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/jackc/pgtype"
)

var errInvalidDocument = errors.New("document is not valid JSON")

// The helpers below convert between optional Go values and column types.
// nil always maps to SQL NULL.

func NullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

func FloatPtr(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	f := n.Float64
	return &f
}

func NullInt(i *int64) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *i, Valid: true}
}

func IntPtr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	i := n.Int64
	return &i
}

func NullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func StringPtr(n sql.NullString) *string {
	if !n.Valid {
		return nil
	}
	s := n.String
	return &s
}

// TextArray keeps element order; an empty slice is stored as an empty array.
func TextArray(s []string) pgtype.TextArray {
	var ta pgtype.TextArray
	if s == nil {
		ta.Status = pgtype.Null
		return ta
	}
	// Set only fails for unsupported source types.
	_ = ta.Set(s)
	return ta
}

func Strings(ta pgtype.TextArray) []string {
	if ta.Status != pgtype.Present {
		return nil
	}
	s := make([]string, 0, len(ta.Elements))
	for _, e := range ta.Elements {
		s = append(s, e.String)
	}
	return s
}

// Document stores raw as a JSONB value without re-encoding it, so numbers
// keep their original text. Empty input and JSON null are stored as NULL.
func Document(raw json.RawMessage) (pgtype.JSONB, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return pgtype.JSONB{Status: pgtype.Null}, nil
	}
	if !json.Valid(trimmed) {
		return pgtype.JSONB{}, errInvalidDocument
	}
	b := make([]byte, len(trimmed))
	copy(b, trimmed)
	return pgtype.JSONB{Bytes: b, Status: pgtype.Present}, nil
}

// DocumentJSON returns the stored document text, nil for NULL.
func DocumentJSON(j pgtype.JSONB) (json.RawMessage, error) {
	if j.Status != pgtype.Present {
		return nil, nil
	}
	if !json.Valid(j.Bytes) {
		return nil, errInvalidDocument
	}
	return json.RawMessage(j.Bytes), nil
}
