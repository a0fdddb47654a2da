package schemas

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
)

// Integer is a JSON number with an integral value. 5, 5.0 and 5e0 all
// decode to 5; the JSON schema rejects fractional values before decoding.
type Integer int64

func (n *Integer) UnmarshalJSON(b []byte) error {
	s := string(b)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		*n = Integer(i)
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return &json.UnmarshalTypeError{Value: "number " + s, Type: reflect.TypeOf(int64(0))}
	}
	*n = Integer(f)
	return nil
}

// Int64 returns the value as *int64, nil if n is nil.
func (n *Integer) Int64() *int64 {
	if n == nil {
		return nil
	}
	i := int64(*n)
	return &i
}
