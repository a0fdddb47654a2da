package types

import (
	"strconv"
)

// BeerId is the identifier the store assigns to a beer.
type BeerId int64

const (
	ResourceNameBeers = "beers"
	ResourceNameBeer  = "beer"
)

// ParseBeerId accepts the decimal form used in resource paths. Signs and
// surrounding whitespace are rejected.
func ParseBeerId(s string) (BeerId, bool) {
	if s == "" || s[0] < '0' || s[0] > '9' {
		return 0, false
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return BeerId(id), true
}

func (id BeerId) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Location is the path of the beer resource.
func (id BeerId) Location() string {
	return "/api/" + ResourceNameBeer + "/" + id.String()
}
