// Package repository holds every SQL statement of the application.
//
// Statements are built with positional parameters only; values never
// reach the SQL text. Repositories run against a Querier (the shared
// pgxpool.Pool in production) and classify failures with sqlerr.Wrap, so
// callers always receive a typed error rather than an empty result.
package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/lightbnb/backend/internal/sqlerr"
	"github.com/rs/zerolog"
)

// DefaultLimit is the result cap used when callers do not choose one.
const DefaultLimit = 10

// Querier is the part of *pgxpool.Pool the repositories use. Each call
// borrows a pooled connection for the duration of one statement.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// statement accumulates SQL clauses together with the arguments they
// reference. bind is the only way to add an argument, and it derives the
// placeholder from the argument count, so $n always names args[n-1].
type statement struct {
	clauses []string
	args    []any
}

func newStatement(base string) *statement {
	return &statement{clauses: []string{base}}
}

// bind appends value to the argument list and returns its placeholder.
func (s *statement) bind(value any) string {
	s.args = append(s.args, value)
	return "$" + strconv.Itoa(len(s.args))
}

// add appends a clause that references no argument.
func (s *statement) add(clause string) {
	s.clauses = append(s.clauses, clause)
}

// addBound appends a clause whose single %s is the placeholder for value.
func (s *statement) addBound(clause string, value any) {
	s.add(fmt.Sprintf(clause, s.bind(value)))
}

func (s *statement) String() string {
	return strings.Join(s.clauses, "\n")
}

// fail classifies err for op and logs it once before handing it back.
func fail(log *zerolog.Logger, op string, err error) error {
	err = sqlerr.Wrap(op, err)
	log.Error().Err(err).Str("operation", op).Msg("store operation failed")
	return err
}

// reviewJoin returns the join keyword used against property_reviews.
func reviewJoin(includeUnreviewed bool) string {
	if includeUnreviewed {
		return "LEFT JOIN"
	}
	return "INNER JOIN"
}
