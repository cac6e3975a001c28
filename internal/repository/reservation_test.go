package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/lightbnb/backend/internal/errs"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reservationColumns = []string{
	"id", "property_id", "title", "start_date", "end_date",
	"number_of_bathrooms", "number_of_bedrooms", "parking_spaces",
	"cost_per_night", "thumbnail_photo_url", "average_rating",
}

func TestReservationRepository_GetAllReservations(t *testing.T) {
	ctx := context.Background()
	day := func(s string) time.Time {
		d, err := time.Parse(time.DateOnly, s)
		require.NoError(t, err)
		return d
	}

	t.Run("lists reservations for the guest", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewReservationRepository(mock, false, nopLogger())

		mock.ExpectQuery(sqlPattern("WHERE reservations.guest_id = $1", "GROUP BY reservations.id, properties.id", "ORDER BY reservations.start_date", "LIMIT $2")).
			WithArgs(int64(1), 10).
			WillReturnRows(pgxmock.NewRows(reservationColumns).
				AddRow(int64(1), int64(4), "Lake house", day("2018-09-11"), day("2018-09-26"),
					int32(2), int32(3), int32(1), int64(9300), "https://img.example/a.jpg", ptr(4.25)).
				AddRow(int64(7), int64(2), "Loft", day("2019-01-04"), day("2019-02-01"),
					int32(1), int32(1), int32(0), int64(5400), "https://img.example/b.jpg", ptr(3.5)))

		got, err := repo.GetAllReservations(ctx, 1, 10)
		require.NoError(t, err)
		require.Len(t, got, 2)

		assert.Equal(t, "Lake house", got[0].Title)
		assert.Equal(t, int64(4), got[0].PropertyID)
		assert.True(t, got[0].StartDate.Before(got[1].StartDate))
		require.NotNil(t, got[1].AverageRating)
		assert.Equal(t, 3.5, *got[1].AverageRating)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("inner join by default", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewReservationRepository(mock, false, nopLogger())

		mock.ExpectQuery(regexp.QuoteMeta("INNER JOIN property_reviews")).
			WithArgs(int64(2), 5).
			WillReturnRows(pgxmock.NewRows(reservationColumns))

		got, err := repo.GetAllReservations(ctx, 2, 5)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("left join when unreviewed properties are included", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewReservationRepository(mock, true, nopLogger())

		mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN property_reviews")).
			WithArgs(int64(2), 10).
			WillReturnRows(pgxmock.NewRows(reservationColumns).
				AddRow(int64(3), int64(9), "New listing", day("2024-05-01"), day("2024-05-03"),
					int32(1), int32(1), int32(0), int64(8000), "", nil))

		got, err := repo.GetAllReservations(ctx, 2, 10)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Nil(t, got[0].AverageRating)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("store failure", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewReservationRepository(mock, false, nopLogger())

		mock.ExpectQuery(regexp.QuoteMeta("LIMIT $2")).
			WithArgs(int64(1), 10).
			WillReturnError(errors.New("connection refused"))

		_, err := repo.GetAllReservations(ctx, 1, 10)

		var unavailable *errs.StoreUnavailableError
		require.ErrorAs(t, err, &unavailable)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("non-positive limit", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewReservationRepository(mock, false, nopLogger())

		_, err := repo.GetAllReservations(ctx, 1, 0)

		var construct *errs.QueryConstructionError
		require.ErrorAs(t, err, &construct)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
