// Package geo converts longitude/latitude pairs to and from the PostGIS
// point representation used for the geolocation column.
package geo

import (
	"database/sql"
	"database/sql/driver"
	"encoding/binary"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/mugiliam/brewcatalogsrv/pkg/apperrors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/ewkbhex"
	"github.com/twpayne/go-geom/encoding/wkt"
)

// SRID of WGS84 longitude/latitude coordinates.
const SRID = 4326

var (
	ErrInvalidPoint         apperrors.Error = apperrors.New("invalid geolocation").SetStatusCode(http.StatusBadRequest)
	ErrIncompleteCoordinate apperrors.Error = ErrInvalidPoint.Msg("longitude and latitude must be supplied together")
	ErrInvalidCoordinate    apperrors.Error = ErrInvalidPoint.Msg("longitude and latitude must be finite numbers")
	ErrMalformedPoint       apperrors.Error = ErrInvalidPoint.Msg("malformed point")
	ErrUnsupportedSRID      apperrors.Error = ErrInvalidPoint.Msg("unsupported SRID")
)

// Point is a WGS84 coordinate. X is longitude, Y is latitude.
type Point struct {
	Lon float64 `json:"longitude"`
	Lat float64 `json:"latitude"`
}

// Coordinates returns the longitude and latitude of the point.
func (p Point) Coordinates() (lon, lat float64) {
	return p.Lon, p.Lat
}

// Geom returns the point as a go-geom geometry tagged with SRID 4326.
func (p Point) Geom() *geom.Point {
	return geom.NewPointFlat(geom.XY, []float64{p.Lon, p.Lat}).SetSRID(SRID)
}

// WKT formats the point as POINT (lon lat).
func (p Point) WKT() string {
	s, err := wkt.Marshal(p.Geom())
	if err != nil {
		return "POINT EMPTY"
	}
	return s
}

// EWKT formats the point as SRID=4326;POINT (lon lat).
func (p Point) EWKT() string {
	return "SRID=" + strconv.Itoa(SRID) + ";" + p.WKT()
}

// EWKBHex encodes the point as little endian hex EWKB with SRID 4326, the
// form accepted by ST_GeomFromEWKB(decode(..., 'hex')).
func (p Point) EWKBHex() (string, error) {
	s, err := ewkbhex.Encode(p.Geom(), binary.LittleEndian)
	if err != nil {
		return "", ErrMalformedPoint.Err(err)
	}
	return s, nil
}

func (p Point) String() string {
	return p.EWKT()
}

// FromCoordinates builds a point from an optional longitude and latitude.
// If both are nil the result is an invalid NullPoint and no error. If only
// one is supplied it fails with ErrIncompleteCoordinate.
func FromCoordinates(lon, lat *float64) (NullPoint, error) {
	switch {
	case lon == nil && lat == nil:
		return NullPoint{}, nil
	case lon == nil:
		return NullPoint{}, ErrIncompleteCoordinate.Msg("latitude supplied without longitude")
	case lat == nil:
		return NullPoint{}, ErrIncompleteCoordinate.Msg("longitude supplied without latitude")
	}
	if !isFinite(*lon) || !isFinite(*lat) {
		return NullPoint{}, ErrInvalidCoordinate
	}
	return NullPoint{Point: Point{Lon: *lon, Lat: *lat}, Valid: true}, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// fromGeom accepts a non-empty 2D point with SRID 4326 or no SRID.
func fromGeom(g geom.T) (Point, error) {
	pt, ok := g.(*geom.Point)
	if !ok {
		return Point{}, ErrMalformedPoint.Msg(fmt.Sprintf("expected a point, got %T", g))
	}
	if pt.Layout() != geom.XY {
		return Point{}, ErrMalformedPoint.Msg("point must have exactly two coordinates")
	}
	if pt.Empty() {
		return Point{}, ErrMalformedPoint.Msg("empty point")
	}
	if srid := pt.SRID(); srid != 0 && srid != SRID {
		return Point{}, ErrUnsupportedSRID.Msg(fmt.Sprintf("unsupported SRID %d", srid))
	}
	return Point{Lon: pt.X(), Lat: pt.Y()}, nil
}

// ParseWKT parses POINT(x y), optionally prefixed with SRID=4326;.
func ParseWKT(s string) (Point, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	srid := 0
	if strings.HasPrefix(s, "SRID=") {
		semi := strings.IndexByte(s, ';')
		if semi < 0 {
			return Point{}, ErrMalformedPoint.Msg("missing ';' after SRID")
		}
		n, err := strconv.Atoi(s[5:semi])
		if err != nil {
			return Point{}, ErrMalformedPoint.Err(err)
		}
		srid = n
		s = strings.TrimSpace(s[semi+1:])
	}
	g, err := wkt.Unmarshal(s)
	if err != nil {
		return Point{}, ErrMalformedPoint.Err(err)
	}
	p, err := fromGeom(g)
	if err != nil {
		return Point{}, err
	}
	if srid != 0 && srid != SRID {
		return Point{}, ErrUnsupportedSRID.Msg(fmt.Sprintf("unsupported SRID %d", srid))
	}
	return p, nil
}

// DecodeEWKB decodes a hex encoded (E)WKB 2D point in either byte order. An
// embedded SRID must be 4326.
func DecodeEWKB(s string) (Point, error) {
	g, err := ewkbhex.Decode(strings.TrimSpace(s))
	if err != nil {
		return Point{}, ErrMalformedPoint.Err(err)
	}
	return fromGeom(g)
}

// NullPoint is a Point that may be NULL. It is stored as hex EWKB and
// scanned from either the hex EWKB that PostGIS emits for geometry columns
// or from (E)WKT text.
type NullPoint struct {
	Point
	Valid bool
}

var (
	_ driver.Valuer = NullPoint{}
	_ sql.Scanner   = (*NullPoint)(nil)
)

func (np NullPoint) Value() (driver.Value, error) {
	if !np.Valid {
		return nil, nil
	}
	return np.EWKBHex()
}

func (np *NullPoint) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case nil:
		*np = NullPoint{}
		return nil
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return ErrMalformedPoint.Msg(fmt.Sprintf("cannot scan %T into point", src))
	}

	var (
		p   Point
		err error
	)
	if isHex(s) {
		p, err = DecodeEWKB(s)
	} else {
		p, err = ParseWKT(s)
	}
	if err != nil {
		return err
	}
	*np = NullPoint{Point: p, Valid: true}
	return nil
}

func isHex(s string) bool {
	for _, c := range strings.TrimSpace(s) {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return false
		}
	}
	return true
}

// Ptr returns the point, or nil if it is NULL.
func (np NullPoint) Ptr() *Point {
	if !np.Valid {
		return nil
	}
	p := np.Point
	return &p
}
