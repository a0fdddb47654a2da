package models

import (
	"database/sql"

	"github.com/jackc/pgtype"
	"github.com/mugiliam/brewcatalogsrv/internal/geo"
)

/*
        Column        |          Type          | Nullable |              Default
----------------------+------------------------+----------+-----------------------------------
 id                   | integer                | not null | nextval('beers_id_seq'::regclass)
 brewery_name         | character varying(100) | not null |
 beer_name            | character varying(100) | not null |
 style                | character varying(50)  | not null |
 price                | double precision       |          |
 abv                  | double precision       |          |
 flavor_profile       | text[]                 |          |
 ingredients          | text[]                 |          |
 location             | character varying(100) |          |
 rating               | double precision       |          |
 packaging_type       | character varying(50)  |          |
 availability         | character varying(50)  |          |
 serving_temperature  | character varying(50)  |          |
 calories             | integer                |          |
 nutritional_info     | jsonb                  |          |
 distributor          | character varying(100) |          |
 special_features     | text[]                 |          |
 pairing_suggestions  | text[]                 |          |
 brewery_details      | jsonb                  |          |
 user_tags            | text[]                 |          |
 popularity_score     | double precision       |          |
 geolocation          | geometry(Point,4326)   |          |
Indexes:
    "beers_pkey" PRIMARY KEY, btree (id)
*/

// Beer is a row of the beers table.
type Beer struct {
	ID                 int64            `db:"id"`
	BreweryName        string           `db:"brewery_name"`
	BeerName           string           `db:"beer_name"`
	Style              string           `db:"style"`
	Price              sql.NullFloat64  `db:"price"`
	Abv                sql.NullFloat64  `db:"abv"`
	FlavorProfile      pgtype.TextArray `db:"flavor_profile"`
	Ingredients        pgtype.TextArray `db:"ingredients"`
	Location           sql.NullString   `db:"location"`
	Rating             sql.NullFloat64  `db:"rating"`
	PackagingType      sql.NullString   `db:"packaging_type"`
	Availability       sql.NullString   `db:"availability"`
	ServingTemperature sql.NullString   `db:"serving_temperature"`
	Calories           sql.NullInt64    `db:"calories"`
	NutritionalInfo    pgtype.JSONB     `db:"nutritional_info"`
	Distributor        sql.NullString   `db:"distributor"`
	SpecialFeatures    pgtype.TextArray `db:"special_features"`
	PairingSuggestions pgtype.TextArray `db:"pairing_suggestions"`
	BreweryDetails     pgtype.JSONB     `db:"brewery_details"`
	UserTags           pgtype.TextArray `db:"user_tags"`
	PopularityScore    sql.NullFloat64  `db:"popularity_score"`
	Geolocation        geo.NullPoint    `db:"geolocation"`
}

// BeerSummary is the projection returned by list and get.
type BeerSummary struct {
	ID          int64           `db:"id"`
	BreweryName string          `db:"brewery_name"`
	BeerName    string          `db:"beer_name"`
	Style       string          `db:"style"`
	Price       sql.NullFloat64 `db:"price"`
	Abv         sql.NullFloat64 `db:"abv"`
}

// Summary projects the beer.
func (b *Beer) Summary() BeerSummary {
	return BeerSummary{
		ID:          b.ID,
		BreweryName: b.BreweryName,
		BeerName:    b.BeerName,
		Style:       b.Style,
		Price:       b.Price,
		Abv:         b.Abv,
	}
}
