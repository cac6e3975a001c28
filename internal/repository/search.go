package repository

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/lightbnb/backend/internal/errs"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// PropertySearchCriteria holds the optional search filters. A nil field is
// an absent filter. Prices are in major currency units.
type PropertySearchCriteria struct {
	City                 *string  `json:"city,omitempty"`
	MinimumPricePerNight *float64 `json:"minimum_price_per_night,omitempty"`
	MaximumPricePerNight *float64 `json:"maximum_price_per_night,omitempty"`
	OwnerID              *int64   `json:"owner_id,omitempty"`
	MinimumRating        *float64 `json:"minimum_rating,omitempty"`
}

const searchBase = `SELECT properties.id, properties.owner_id, properties.title,
	properties.number_of_bedrooms, properties.number_of_bathrooms, properties.parking_spaces,
	properties.cost_per_night, properties.thumbnail_photo_url, properties.cover_photo_url,
	properties.street, properties.city, properties.province, properties.post_code, properties.country,
	AVG(property_reviews.rating)::float8 AS average_rating
FROM properties
%s property_reviews ON property_reviews.property_id = properties.id
WHERE 1=1`

// SearchQueryBuilder turns search criteria into one parameterized
// statement. Filters are appended in a fixed order: city, minimum price,
// maximum price, owner, then GROUP BY, the rating HAVING and LIMIT last.
type SearchQueryBuilder struct {
	// IncludeUnreviewed left-joins reviews so properties without any
	// review are returned with a NULL average rating.
	IncludeUnreviewed bool
}

func NewSearchQueryBuilder(includeUnreviewed bool) SearchQueryBuilder {
	return SearchQueryBuilder{IncludeUnreviewed: includeUnreviewed}
}

// Build returns the query text and its positional arguments.
func (b SearchQueryBuilder) Build(criteria PropertySearchCriteria, limit int) (string, []any, error) {
	if limit <= 0 {
		return "", nil, errs.NewQueryConstructionError("limit must be positive, got %d", limit)
	}
	if err := criteria.check(); err != nil {
		return "", nil, err
	}

	q := newStatement(fmt.Sprintf(searchBase, reviewJoin(b.IncludeUnreviewed)))

	if criteria.City != nil {
		q.addBound("AND properties.city LIKE %s", "%"+escapeLike(*criteria.City)+"%")
	}
	if criteria.MinimumPricePerNight != nil {
		q.addBound("AND properties.cost_per_night >= %s", toMinorUnits(*criteria.MinimumPricePerNight))
	}
	if criteria.MaximumPricePerNight != nil {
		q.addBound("AND properties.cost_per_night <= %s", toMinorUnits(*criteria.MaximumPricePerNight))
	}
	if criteria.OwnerID != nil {
		q.addBound("AND properties.owner_id = %s", *criteria.OwnerID)
	}

	q.add("GROUP BY properties.id")

	if criteria.MinimumRating != nil {
		q.addBound("HAVING AVG(property_reviews.rating) >= %s", *criteria.MinimumRating)
	}

	q.addBound("LIMIT %s", limit)

	return q.String(), q.args, nil
}

func (c PropertySearchCriteria) check() error {
	floats := []struct {
		name  string
		value *float64
	}{
		{"minimum_price_per_night", c.MinimumPricePerNight},
		{"maximum_price_per_night", c.MaximumPricePerNight},
		{"minimum_rating", c.MinimumRating},
	}
	for _, f := range floats {
		if f.value != nil && (math.IsNaN(*f.value) || math.IsInf(*f.value, 0)) {
			return errs.NewQueryConstructionError("%s must be a finite number", f.name)
		}
	}

	// cost_per_night and owner_id are INTEGER columns.
	prices := floats[:2]
	for _, f := range prices {
		if f.value != nil && !fitsInteger(minorUnits(*f.value)) {
			return errs.NewQueryConstructionError("%s %v is out of range", f.name, *f.value)
		}
	}
	if c.OwnerID != nil && (*c.OwnerID < math.MinInt32 || *c.OwnerID > math.MaxInt32) {
		return errs.NewQueryConstructionError("owner_id %d is out of range", *c.OwnerID)
	}
	return nil
}

var (
	minInteger = decimal.NewFromInt(math.MinInt32)
	maxInteger = decimal.NewFromInt(math.MaxInt32)
)

// fitsInteger reports whether d fits a Postgres INTEGER column.
func fitsInteger(d decimal.Decimal) bool {
	return d.GreaterThanOrEqual(minInteger) && d.LessThanOrEqual(maxInteger)
}

// minorUnits scales a major-unit price to cents, rounding half away from
// zero.
func minorUnits(major float64) decimal.Decimal {
	return decimal.NewFromFloat(major).Shift(2).Round(0)
}

// toMinorUnits is minorUnits as an int64. Callers run check first so the
// value is in INTEGER range.
func toMinorUnits(major float64) int64 {
	return minorUnits(major).IntPart()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// ParseSearchCriteria reads criteria from loosely typed key/value input
// such as a query string. Empty values are treated as absent. Unknown
// keys and unparsable values are rejected.
func ParseSearchCriteria(values map[string]string) (PropertySearchCriteria, error) {
	var c PropertySearchCriteria

	for _, key := range slices.Sorted(maps.Keys(values)) {
		raw := strings.TrimSpace(values[key])
		if raw == "" {
			continue
		}

		switch key {
		case "city":
			c.City = &raw
		case "minimum_price_per_night":
			v, err := cast.ToFloat64E(raw)
			if err != nil {
				return PropertySearchCriteria{}, invalidFilter(key, raw)
			}
			c.MinimumPricePerNight = &v
		case "maximum_price_per_night":
			v, err := cast.ToFloat64E(raw)
			if err != nil {
				return PropertySearchCriteria{}, invalidFilter(key, raw)
			}
			c.MaximumPricePerNight = &v
		case "owner_id":
			v, err := cast.ToInt64E(raw)
			if err != nil {
				return PropertySearchCriteria{}, invalidFilter(key, raw)
			}
			c.OwnerID = &v
		case "minimum_rating":
			v, err := cast.ToFloat64E(raw)
			if err != nil {
				return PropertySearchCriteria{}, invalidFilter(key, raw)
			}
			c.MinimumRating = &v
		default:
			return PropertySearchCriteria{}, errs.NewQueryConstructionError("unknown filter %q", key)
		}
	}

	return c, c.check()
}

func invalidFilter(key, raw string) error {
	return errs.NewQueryConstructionError("invalid value %q for filter %s", raw, key)
}
