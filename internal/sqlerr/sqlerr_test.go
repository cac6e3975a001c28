package sqlerr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lightbnb/backend/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapCode(t *testing.T) {
	tests := map[string]Code{
		"23502": NotNullViolation,
		"23503": ForeignKeyViolation,
		"23505": UniqueViolation,
		"23514": CheckViolation,
		"42P01": UndefinedTable,
		"57014": QueryCanceled,
		"08006": ConnectionException,
		"08001": ConnectionException,
		"53300": TooManyConnections,
		"57P01": AdminShutdown,
		"XX000": Other,
	}
	for state, want := range tests {
		assert.Equal(t, want, MapCode(state), state)
	}
}

func TestWrap(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, Wrap("op", nil))
	})

	t.Run("network failure is store unavailable", func(t *testing.T) {
		cause := errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")
		err := Wrap("property.search", cause)

		var unavailable *errs.StoreUnavailableError
		require.ErrorAs(t, err, &unavailable)
		assert.Equal(t, "property.search", unavailable.Op)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("cancellation is kept", func(t *testing.T) {
		err := Wrap("property.search", fmt.Errorf("query: %w", context.Canceled))

		assert.ErrorIs(t, err, context.Canceled)
		var unavailable *errs.StoreUnavailableError
		assert.False(t, errors.As(err, &unavailable))
	})

	t.Run("server error keeps sqlstate", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23505", Severity: "ERROR", ConstraintName: "users_email_key"}
		err := Wrap("user.add", pgErr)

		var sqlErr *Error
		require.ErrorAs(t, err, &sqlErr)
		assert.Equal(t, UniqueViolation, sqlErr.Code)
		assert.Equal(t, "users_email_key", sqlErr.ConstraintName)
		assert.Equal(t, UniqueViolation, ErrCode(err))
		assert.ErrorIs(t, err, pgErr)
	})

	t.Run("connection class sqlstate is store unavailable", func(t *testing.T) {
		for _, state := range []string{"08006", "53300", "57P01"} {
			err := Wrap("property.search", &pgconn.PgError{Code: state, Severity: "FATAL"})

			var unavailable *errs.StoreUnavailableError
			assert.ErrorAs(t, err, &unavailable, state)
		}
	})

	t.Run("typed errors pass through", func(t *testing.T) {
		duplicate := &errs.DuplicateEmailError{Email: "eva@example.com"}
		assert.Same(t, duplicate, Wrap("user.add", duplicate))

		unavailable := &errs.StoreUnavailableError{Op: "user.add", Err: errors.New("reset")}
		assert.Same(t, unavailable, Wrap("property.search", unavailable))
	})
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "duplicate email",
			err:        &errs.DuplicateEmailError{Email: "eva@example.com"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "USER_ALREADY_EXISTS",
			wantMsg:    "A user with this email already exists",
		},
		{
			name:       "query construction",
			err:        errs.NewQueryConstructionError("unknown filter %q", "pets"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_QUERY",
			wantMsg:    `invalid query: unknown filter "pets"`,
		},
		{
			name:       "store unavailable",
			err:        Wrap("property.search", errors.New("connection refused")),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "SERVICE_UNAVAILABLE",
		},
		{
			name: "foreign key",
			err: Wrap("property.add", &pgconn.PgError{
				Code: "23503", TableName: "properties", ColumnName: "owner_id",
			}),
			wantStatus: http.StatusBadRequest,
			wantCode:   "PROPERTY_NOT_FOUND",
			wantMsg:    "The referenced Owner does not exist",
		},
		{
			name: "unique violation names the column",
			err: Wrap("user.add", &pgconn.PgError{
				Code: "23505", TableName: "users", ConstraintName: "users_email_key",
			}),
			wantStatus: http.StatusBadRequest,
			wantCode:   "USER_ALREADY_EXISTS",
			wantMsg:    "A User with this Email already exists",
		},
		{
			name: "not null",
			err: Wrap("property.add", &pgconn.PgError{
				Code: "23502", TableName: "properties", ColumnName: "post_code",
			}),
			wantStatus: http.StatusBadRequest,
			wantCode:   "PROPERTY_REQUIRED",
			wantMsg:    "The Post Code is required",
		},
		{
			name:       "no rows",
			err:        fmt.Errorf("lookup: %w", pgx.ErrNoRows),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "other server error",
			err:        Wrap("property.search", &pgconn.PgError{Code: "42P01"}),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
		},
		{
			name:       "unknown",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var httpErr *errs.HTTPError
			require.ErrorAs(t, HandleError(tt.err), &httpErr)

			assert.Equal(t, tt.wantStatus, httpErr.Status)
			assert.Equal(t, tt.wantCode, httpErr.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, httpErr.Message)
			}
		})
	}
}

func TestSingular(t *testing.T) {
	assert.Equal(t, "property", singular("properties"))
	assert.Equal(t, "user", singular("users"))
	assert.Equal(t, "property_review", singular("property_reviews"))
	assert.Equal(t, "RECORD", singular("RECORD"))
}

func TestHandleError_NotNullFieldError(t *testing.T) {
	err := HandleError(&pgconn.PgError{Code: "23502", TableName: "users", ColumnName: "Name"})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, []errs.FieldError{{Field: "name", Error: "is required"}}, httpErr.Errors)
}

func TestHandleError_PassesHTTPErrorThrough(t *testing.T) {
	orig := errs.NewNotFoundError("user not found", true, nil)
	assert.Same(t, orig, HandleError(orig))
}
