package repository

import (
	"context"
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/lightbnb/backend/internal/errs"
	"github.com/lightbnb/backend/internal/model"
	"github.com/rs/zerolog"
	"github.com/spf13/cast"
)

type columnKind int

const (
	textColumn columnKind = iota
	intColumn
	boolColumn
)

// propertyColumns lists the columns a caller may set when adding a
// property. id is assigned by the store.
var propertyColumns = map[string]columnKind{
	"owner_id":            intColumn,
	"title":               textColumn,
	"description":         textColumn,
	"thumbnail_photo_url": textColumn,
	"cover_photo_url":     textColumn,
	"cost_per_night":      intColumn,
	"parking_spaces":      intColumn,
	"number_of_bathrooms": intColumn,
	"number_of_bedrooms":  intColumn,
	"country":             textColumn,
	"street":              textColumn,
	"city":                textColumn,
	"province":            textColumn,
	"post_code":           textColumn,
	"active":              boolColumn,
}

const propertyReturning = `RETURNING id, owner_id, title, description, thumbnail_photo_url, cover_photo_url,
	cost_per_night, parking_spaces, number_of_bathrooms, number_of_bedrooms,
	country, street, city, province, post_code, active`

type PropertyRepository struct {
	db      Querier
	builder SearchQueryBuilder
	log     *zerolog.Logger
}

func NewPropertyRepository(db Querier, includeUnreviewed bool, log *zerolog.Logger) *PropertyRepository {
	return &PropertyRepository{
		db:      db,
		builder: NewSearchQueryBuilder(includeUnreviewed),
		log:     log,
	}
}

// Search returns at most limit properties matching criteria, each with
// its average review rating. No match yields an empty slice.
func (r *PropertyRepository) Search(ctx context.Context, criteria PropertySearchCriteria, limit int) ([]model.PropertySearchResult, error) {
	const op = "property.search"

	sql, args, err := r.builder.Build(criteria, limit)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fail(r.log, op, err)
	}

	results, err := pgx.CollectRows(rows, scanSearchResult)
	if err != nil {
		return nil, fail(r.log, op, err)
	}
	if results == nil {
		results = []model.PropertySearchResult{}
	}

	return results, nil
}

func scanSearchResult(row pgx.CollectableRow) (model.PropertySearchResult, error) {
	var p model.PropertySearchResult
	err := row.Scan(
		&p.ID, &p.OwnerID, &p.Title,
		&p.NumberOfBedrooms, &p.NumberOfBathrooms, &p.ParkingSpaces,
		&p.CostPerNight, &p.ThumbnailPhotoURL, &p.CoverPhotoURL,
		&p.Street, &p.City, &p.Province, &p.PostCode, &p.Country,
		&p.AverageRating,
	)
	return p, err
}

// AddProperty inserts a property from a column to value mapping and
// returns the stored row. Values are coerced to the column's type, so
// string input such as form values is accepted.
func (r *PropertyRepository) AddProperty(ctx context.Context, fields map[string]any) (*model.Property, error) {
	const op = "property.add"

	if len(fields) == 0 {
		return nil, errs.NewQueryConstructionError("property has no fields")
	}

	q := newStatement("")
	columns := make([]string, 0, len(fields))
	placeholders := make([]string, 0, len(fields))

	for _, column := range slices.Sorted(maps.Keys(fields)) {
		kind, ok := propertyColumns[column]
		if !ok {
			return nil, errs.NewQueryConstructionError("unknown property column %q", column)
		}

		value, err := coerce(kind, fields[column])
		if err != nil {
			return nil, errs.NewQueryConstructionError("invalid value for property column %s: %v", column, err)
		}

		columns = append(columns, column)
		placeholders = append(placeholders, q.bind(value))
	}

	sql := "INSERT INTO properties (" + strings.Join(columns, ", ") + ")\n" +
		"VALUES (" + strings.Join(placeholders, ", ") + ")\n" +
		propertyReturning

	var p model.Property
	err := r.db.QueryRow(ctx, sql, q.args...).Scan(
		&p.ID, &p.OwnerID, &p.Title, &p.Description, &p.ThumbnailPhotoURL, &p.CoverPhotoURL,
		&p.CostPerNight, &p.ParkingSpaces, &p.NumberOfBathrooms, &p.NumberOfBedrooms,
		&p.Country, &p.Street, &p.City, &p.Province, &p.PostCode, &p.Active,
	)
	if err != nil {
		return nil, fail(r.log, op, err)
	}

	return &p, nil
}

func coerce(kind columnKind, value any) (any, error) {
	switch kind {
	case intColumn:
		n, err := cast.ToInt64E(value)
		if err != nil {
			return nil, err
		}
		if n < math.MinInt32 || n > math.MaxInt32 {
			return nil, fmt.Errorf("%d is out of integer range", n)
		}
		return n, nil
	case boolColumn:
		return cast.ToBoolE(value)
	default:
		return cast.ToStringE(value)
	}
}
