package api

import "encoding/json"

// BeerSummary is the projection returned by GET /api/beers and
// GET /api/beer/{id}. Price and Abv are null when they were not supplied.
type BeerSummary struct {
	ID          int64    `json:"id"`
	BreweryName string   `json:"brewery_name"`
	BeerName    string   `json:"beer_name"`
	Style       string   `json:"style"`
	Price       *float64 `json:"price"`
	Abv         *float64 `json:"abv"`
}

type Geolocation struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// BeerDetail is the full record returned by GET /api/beer/{id}/details.
// Documents are returned as stored.
type BeerDetail struct {
	ID                 int64           `json:"id"`
	BreweryName        string          `json:"brewery_name"`
	BeerName           string          `json:"beer_name"`
	Style              string          `json:"style"`
	Price              *float64        `json:"price"`
	Abv                *float64        `json:"abv"`
	FlavorProfile      []string        `json:"flavor_profile"`
	Ingredients        []string        `json:"ingredients"`
	Location           *string         `json:"location"`
	Rating             *float64        `json:"rating"`
	PackagingType      *string         `json:"packaging_type"`
	Availability       *string         `json:"availability"`
	ServingTemperature *string         `json:"serving_temperature"`
	Calories           *int64          `json:"calories"`
	NutritionalInfo    json.RawMessage `json:"nutritional_info"`
	Distributor        *string         `json:"distributor"`
	SpecialFeatures    []string        `json:"special_features"`
	PairingSuggestions []string        `json:"pairing_suggestions"`
	BreweryDetails     json.RawMessage `json:"brewery_details"`
	UserTags           []string        `json:"user_tags"`
	PopularityScore    *float64        `json:"popularity_score"`
	Geolocation        *Geolocation    `json:"geolocation"`
}

type CreateBeerRsp struct {
	Message string `json:"message"`
}

const BeerCreatedMessage = "Beer added successfully"
