package sqlerr

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lightbnb/backend/internal/errs"
)

// Wrap classifies an error returned by the driver for operation op.
//
//   - errors already typed by this module pass through unchanged
//   - context cancellation is returned as is (the caller gave up)
//   - Postgres server errors become *Error, except connection-class
//     SQLSTATEs which are reported as unavailability
//   - everything else (dial failures, resets, timeouts) becomes
//     *errs.StoreUnavailableError
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}

	var (
		unavailable *errs.StoreUnavailableError
		duplicate   *errs.DuplicateEmailError
		construct   *errs.QueryConstructionError
		converted   *Error
	)
	if errors.As(err, &unavailable) || errors.As(err, &duplicate) ||
		errors.As(err, &construct) || errors.As(err, &converted) {
		return err
	}

	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		sqlErr := ConvertPgError(pgErr)
		if sqlErr.Code.unavailable() {
			return &errs.StoreUnavailableError{Op: op, Err: sqlErr}
		}
		return fmt.Errorf("%s: %w", op, sqlErr)
	}

	return &errs.StoreUnavailableError{Op: op, Err: err}
}
