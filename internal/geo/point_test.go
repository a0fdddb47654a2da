package geo

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/ewkbhex"
)

func f(v float64) *float64 { return &v }

// ewkbHex encodes p the way PostGIS prints a geometry column, with or
// without an embedded SRID.
func ewkbHex(t *testing.T, p Point, order binary.ByteOrder, srid int) string {
	t.Helper()
	s, err := ewkbhex.Encode(geom.NewPointFlat(geom.XY, []float64{p.Lon, p.Lat}).SetSRID(srid), order)
	require.NoError(t, err)
	return s
}

func TestFromCoordinates(t *testing.T) {
	tests := []struct {
		name     string
		lon, lat *float64
		valid    bool
		expected error
	}{
		{name: "both absent", valid: false},
		{name: "both present", lon: f(-122.4), lat: f(37.8), valid: true},
		{name: "zero is a value", lon: f(0), lat: f(0), valid: true},
		{name: "longitude only", lon: f(-122.4), expected: ErrIncompleteCoordinate},
		{name: "latitude only", lat: f(37.8), expected: ErrIncompleteCoordinate},
		{name: "nan", lon: f(math.NaN()), lat: f(1), expected: ErrInvalidCoordinate},
		{name: "inf", lon: f(1), lat: f(math.Inf(-1)), expected: ErrInvalidCoordinate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			np, err := FromCoordinates(tt.lon, tt.lat)
			if tt.expected != nil {
				assert.ErrorIs(t, err, tt.expected)
				assert.ErrorIs(t, err, ErrInvalidPoint)
				assert.False(t, np.Valid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.valid, np.Valid)
			if tt.valid {
				lon, lat := np.Coordinates()
				assert.Equal(t, *tt.lon, lon)
				assert.Equal(t, *tt.lat, lat)
			}
		})
	}
}

func TestPointLiteral(t *testing.T) {
	p := Point{Lon: -122.4, Lat: 37.8}
	assert.Equal(t, "POINT (-122.4 37.8)", p.WKT())
	assert.Equal(t, "SRID=4326;POINT (-122.4 37.8)", p.EWKT())

	v, err := NullPoint{Point: p, Valid: true}.Value()
	require.NoError(t, err)
	s, ok := v.(string)
	require.True(t, ok)
	// little endian point with the SRID flag and SRID 4326
	assert.True(t, strings.HasPrefix(strings.ToUpper(s), "0101000020E6100000"), s)
	got, err := DecodeEWKB(s)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	v, err = NullPoint{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

var roundTripPoints = []Point{
	{Lon: -122.4, Lat: 37.8},
	{Lon: 0, Lat: 0},
	{Lon: 180, Lat: 90},
	{Lon: -180, Lat: -90},
	{Lon: 179.99999999999997, Lat: -89.99999999999999},
	{Lon: 0.1 + 0.2, Lat: 1.0 / 3.0},
	{Lon: 5e-324, Lat: -1e-300},
	{Lon: math.MaxFloat64, Lat: -math.MaxFloat64},
}

func TestWKTRoundTrip(t *testing.T) {
	for _, p := range roundTripPoints {
		got, err := ParseWKT(p.EWKT())
		require.NoError(t, err, p.EWKT())
		assert.Equal(t, math.Float64bits(p.Lon), math.Float64bits(got.Lon), p.EWKT())
		assert.Equal(t, math.Float64bits(p.Lat), math.Float64bits(got.Lat), p.EWKT())

		got, err = ParseWKT(p.WKT())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
}

func TestEWKBRoundTrip(t *testing.T) {
	for _, p := range roundTripPoints {
		for _, order := range []binary.ByteOrder{binary.LittleEndian, binary.BigEndian} {
			for _, srid := range []int{SRID, 0} {
				got, err := DecodeEWKB(ewkbHex(t, p, order, srid))
				require.NoError(t, err)
				assert.Equal(t, math.Float64bits(p.Lon), math.Float64bits(got.Lon))
				assert.Equal(t, math.Float64bits(p.Lat), math.Float64bits(got.Lat))
			}
		}
	}
}

func TestDecodeEWKBKnownValue(t *testing.T) {
	// SELECT ST_SetSRID(ST_MakePoint(1, 2), 4326);
	p, err := DecodeEWKB("0101000020E6100000000000000000F03F0000000000000040")
	require.NoError(t, err)
	assert.Equal(t, Point{Lon: 1, Lat: 2}, p)
}

func TestParseWKTErrors(t *testing.T) {
	tests := []struct {
		input    string
		expected error
	}{
		{"", ErrMalformedPoint},
		{"POINT EMPTY", ErrMalformedPoint},
		{"POINT(1)", ErrMalformedPoint},
		{"POINT(1 2 3)", ErrMalformedPoint},
		{"POINT(a 2)", ErrMalformedPoint},
		{"LINESTRING(1 2, 3 4)", ErrMalformedPoint},
		{"SRID=3857;POINT(1 2)", ErrUnsupportedSRID},
		{"SRID=x;POINT(1 2)", ErrMalformedPoint},
		{"SRID=4326 POINT(1 2)", ErrMalformedPoint},
	}
	for _, tt := range tests {
		_, err := ParseWKT(tt.input)
		assert.ErrorIs(t, err, tt.expected, tt.input)
	}

	p, err := ParseWKT("  srid=4326; point ( -1.5   2.25 ) ")
	require.NoError(t, err)
	assert.Equal(t, Point{Lon: -1.5, Lat: 2.25}, p)
}

func TestDecodeEWKBErrors(t *testing.T) {
	_, err := DecodeEWKB("zz")
	assert.ErrorIs(t, err, ErrMalformedPoint)

	_, err = DecodeEWKB("01")
	assert.ErrorIs(t, err, ErrMalformedPoint)

	// linestring type
	_, err = DecodeEWKB("0102000000")
	assert.ErrorIs(t, err, ErrMalformedPoint)

	// SRID 3857
	_, err = DecodeEWKB("0101000020110F0000000000000000F03F0000000000000040")
	assert.ErrorIs(t, err, ErrUnsupportedSRID)

	// 3D point
	s, err := ewkbhex.Encode(geom.NewPointFlat(geom.XYZ, []float64{1, 2, 3}).SetSRID(SRID), binary.LittleEndian)
	require.NoError(t, err)
	_, err = DecodeEWKB(s)
	assert.ErrorIs(t, err, ErrMalformedPoint)

	// truncated coordinates
	_, err = DecodeEWKB("0101000020E6100000000000000000F03F")
	assert.ErrorIs(t, err, ErrMalformedPoint)
}

func TestNullPointScan(t *testing.T) {
	var np NullPoint
	require.NoError(t, np.Scan(nil))
	assert.False(t, np.Valid)
	assert.Nil(t, np.Ptr())

	require.NoError(t, np.Scan("0101000020E6100000000000000000F03F0000000000000040"))
	assert.True(t, np.Valid)
	assert.Equal(t, Point{Lon: 1, Lat: 2}, np.Point)

	require.NoError(t, np.Scan([]byte("SRID=4326;POINT(-122.4 37.8)")))
	assert.Equal(t, &Point{Lon: -122.4, Lat: 37.8}, np.Ptr())

	v, err := NullPoint{Point: Point{Lon: 151.2093, Lat: -33.8688}, Valid: true}.Value()
	require.NoError(t, err)
	require.NoError(t, np.Scan(v))
	assert.Equal(t, Point{Lon: 151.2093, Lat: -33.8688}, np.Point)

	assert.ErrorIs(t, np.Scan(42), ErrMalformedPoint)
}
