package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/lightbnb/backend/internal/errs"
	"github.com/lightbnb/backend/internal/model"
	"github.com/rs/zerolog"
)

const reservationsForGuest = `SELECT reservations.id, properties.id AS property_id, properties.title,
	reservations.start_date, reservations.end_date,
	properties.number_of_bathrooms, properties.number_of_bedrooms, properties.parking_spaces,
	properties.cost_per_night, properties.thumbnail_photo_url,
	AVG(property_reviews.rating)::float8 AS average_rating
FROM reservations
INNER JOIN properties ON reservations.property_id = properties.id
%s property_reviews ON property_reviews.property_id = properties.id
WHERE reservations.guest_id = $1
GROUP BY reservations.id, properties.id
ORDER BY reservations.start_date
LIMIT $2`

type ReservationRepository struct {
	db  Querier
	sql string
	log *zerolog.Logger
}

func NewReservationRepository(db Querier, includeUnreviewed bool, log *zerolog.Logger) *ReservationRepository {
	return &ReservationRepository{
		db:  db,
		sql: fmt.Sprintf(reservationsForGuest, reviewJoin(includeUnreviewed)),
		log: log,
	}
}

// GetAllReservations lists a guest's reservations by start date, each with
// the reserved property's summary and average rating.
func (r *ReservationRepository) GetAllReservations(ctx context.Context, guestID int64, limit int) ([]model.ReservationWithPropertySummary, error) {
	const op = "reservation.list_for_guest"

	if limit <= 0 {
		return nil, errs.NewQueryConstructionError("limit must be positive, got %d", limit)
	}

	rows, err := r.db.Query(ctx, r.sql, guestID, limit)
	if err != nil {
		return nil, fail(r.log, op, err)
	}

	reservations, err := pgx.CollectRows(rows, scanReservation)
	if err != nil {
		return nil, fail(r.log, op, err)
	}
	if reservations == nil {
		reservations = []model.ReservationWithPropertySummary{}
	}

	return reservations, nil
}

func scanReservation(row pgx.CollectableRow) (model.ReservationWithPropertySummary, error) {
	var res model.ReservationWithPropertySummary
	err := row.Scan(
		&res.ID, &res.PropertyID, &res.Title,
		&res.StartDate, &res.EndDate,
		&res.NumberOfBathrooms, &res.NumberOfBedrooms, &res.ParkingSpaces,
		&res.CostPerNight, &res.ThumbnailPhotoURL,
		&res.AverageRating,
	)
	return res, err
}
