package schemas

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/mugiliam/brewcatalogsrv/pkg/apperrors"
	schemaerr "github.com/mugiliam/brewcatalogsrv/pkg/schemas/errors"
	"github.com/mugiliam/brewcatalogsrv/pkg/schemas/schemavalidator"
	"github.com/xeipuuv/gojsonschema"
)

// BeerSchema is the inbound shape of a catalog item. Longitude and Latitude
// are not stored as such; they are turned into the geolocation point.
type BeerSchema struct {
	BreweryName        string          `json:"brewery_name" validate:"required"`
	BeerName           string          `json:"beer_name" validate:"required"`
	Style              string          `json:"style" validate:"required"`
	Price              *float64        `json:"price"`
	Abv                *float64        `json:"abv"`
	FlavorProfile      []string        `json:"flavor_profile"`
	Ingredients        []string        `json:"ingredients"`
	Location           *string         `json:"location"`
	Rating             *float64        `json:"rating"`
	PackagingType      *string         `json:"packaging_type"`
	Availability       *string         `json:"availability"`
	ServingTemperature *string         `json:"serving_temperature"`
	Calories           *Integer        `json:"calories"`
	NutritionalInfo    json.RawMessage `json:"nutritional_info"`
	Distributor        *string         `json:"distributor"`
	SpecialFeatures    []string        `json:"special_features"`
	PairingSuggestions []string        `json:"pairing_suggestions"`
	BreweryDetails     json.RawMessage `json:"brewery_details"`
	UserTags           []string        `json:"user_tags"`
	PopularityScore    *float64        `json:"popularity_score"`
	Longitude          *float64        `json:"longitude"`
	Latitude           *float64        `json:"latitude"`
}

// RequiredFields lists the required attributes in the order they are checked.
var RequiredFields = []string{"brewery_name", "beer_name", "style"}

// ParseBeer checks raw against BeerJsonSchema, decodes it and validates the
// required fields.
func ParseBeer(raw []byte) (*BeerSchema, apperrors.Error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, schemaerr.ErrEmptyRequest
	}
	result, err := beerJsonSchema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, schemaerr.ErrInvalidSchema.Msg("unable to parse request")
	}
	if !result.Valid() {
		var ves schemaerr.ValidationErrors
		for _, e := range result.Errors() {
			ves = append(ves, schemaerr.ValidationError{
				Field:  e.Field(),
				Value:  e.Value(),
				ErrStr: e.Description(),
			})
		}
		return nil, schemaerr.ErrInvalidSchema.Err(ves)
	}

	bs := &BeerSchema{}
	if err := json.Unmarshal(raw, bs); err != nil {
		return nil, schemaerr.ErrInvalidSchema.Err(decodeError(err))
	}
	bs.NutritionalInfo = nullDocument(bs.NutritionalInfo)
	bs.BreweryDetails = nullDocument(bs.BreweryDetails)
	if err := bs.Validate(); err != nil {
		return nil, err
	}
	return bs, nil
}

// decodeError describes a decoding failure in terms of the request
// attribute. The decoder's own text names Go types and is not returned.
func decodeError(err error) error {
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) {
		return schemaerr.ValidationErrors{{Field: te.Field, ErrStr: "value out of range"}}
	}
	return schemaerr.ValidationErrors{{ErrStr: "unable to decode request"}}
}

func nullDocument(doc json.RawMessage) json.RawMessage {
	if bytes.Equal(bytes.TrimSpace(doc), []byte("null")) {
		return nil
	}
	return doc
}

// Validate fails with a missing required field error naming the first
// required attribute that is absent or empty.
func (bs *BeerSchema) Validate() apperrors.Error {
	err := schemavalidator.V().Struct(bs)
	if err == nil {
		return nil
	}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return schemaerr.ErrInvalidSchema.Err(err)
	}

	missing := make(map[string]bool)
	var ves schemaerr.ValidationErrors
	for _, e := range ve {
		switch e.Tag() {
		case "required":
			missing[e.Field()] = true
		default:
			ves = append(ves, schemaerr.ValidationError{
				Field:  e.Field(),
				Value:  e.Value(),
				ErrStr: "validation failed for attribute",
			})
		}
	}
	for _, f := range RequiredFields {
		if missing[f] {
			return schemaerr.ErrMissingRequiredField(f)
		}
	}
	return schemaerr.ErrInvalidSchema.Err(ves)
}

var beerJsonSchema *gojsonschema.Schema

func init() {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(BeerJsonSchema))
	if err != nil {
		panic("invalid beer json schema: " + err.Error())
	}
	beerJsonSchema = s
}

// BeerJsonSchema describes the accepted request body. Presence of required
// fields is checked by Validate so the error can name the field.
const BeerJsonSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"definitions": {
		"text": {"type": ["string", "null"]},
		"number": {"type": ["number", "null"]},
		"tags": {"type": ["array", "null"], "items": {"type": "string"}},
		"document": {"type": ["object", "null"]}
	},
	"properties": {
		"brewery_name": {"$ref": "#/definitions/text"},
		"beer_name": {"$ref": "#/definitions/text"},
		"style": {"$ref": "#/definitions/text"},
		"price": {"$ref": "#/definitions/number"},
		"abv": {"$ref": "#/definitions/number"},
		"flavor_profile": {"$ref": "#/definitions/tags"},
		"ingredients": {"$ref": "#/definitions/tags"},
		"location": {"$ref": "#/definitions/text"},
		"rating": {"$ref": "#/definitions/number"},
		"packaging_type": {"$ref": "#/definitions/text"},
		"availability": {"$ref": "#/definitions/text"},
		"serving_temperature": {"$ref": "#/definitions/text"},
		"calories": {"type": ["integer", "null"]},
		"nutritional_info": {"$ref": "#/definitions/document"},
		"distributor": {"$ref": "#/definitions/text"},
		"special_features": {"$ref": "#/definitions/tags"},
		"pairing_suggestions": {"$ref": "#/definitions/tags"},
		"brewery_details": {"$ref": "#/definitions/document"},
		"user_tags": {"$ref": "#/definitions/tags"},
		"popularity_score": {"$ref": "#/definitions/number"},
		"longitude": {"$ref": "#/definitions/number"},
		"latitude": {"$ref": "#/definitions/number"}
	}
}`
