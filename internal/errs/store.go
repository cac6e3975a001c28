package errs

import "fmt"

// StoreUnavailableError reports that the relational store could not be
// reached or failed underneath a query (connection refused, reset, timeout,
// server shutting down). It is never masked as an empty result.
type StoreUnavailableError struct {
	// Op names the repository operation, e.g. "property.search".
	Op  string
	Err error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("%s: store unavailable: %v", e.Op, e.Err)
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.Err
}

// DuplicateEmailError is returned when registering an email that already
// belongs to a user. Callers should not retry.
type DuplicateEmailError struct {
	Email string
}

func (e *DuplicateEmailError) Error() string {
	return fmt.Sprintf("user with email %q already exists", e.Email)
}

// QueryConstructionError is returned when inputs cannot be turned into a
// valid statement: unknown filter keys, unparsable values, non-positive
// limits, unknown columns.
type QueryConstructionError struct {
	Reason string
}

func (e *QueryConstructionError) Error() string {
	return "invalid query: " + e.Reason
}

// NewQueryConstructionError formats a QueryConstructionError.
func NewQueryConstructionError(format string, args ...any) *QueryConstructionError {
	return &QueryConstructionError{Reason: fmt.Sprintf(format, args...)}
}
