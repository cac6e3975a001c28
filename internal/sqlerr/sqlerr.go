// Package sqlerr specifically handles database driver errors.
//
// It maps Postgres SQLSTATE codes into a small set of categories,
// classifies driver failures at the repository boundary (Wrap), and
// converts them into errs.HTTPError values (HandleError).
package sqlerr

import (
	"fmt"
	"strings"
)

// Code is a coarse category for a Postgres SQLSTATE.
type Code string

const (
	Other               Code = "other"
	NotNullViolation    Code = "not_null_violation"
	ForeignKeyViolation Code = "foreign_key_violation"
	UniqueViolation     Code = "unique_violation"
	CheckViolation      Code = "check_violation"
	SyntaxError         Code = "syntax_error"
	UndefinedTable      Code = "undefined_table"
	UndefinedColumn     Code = "undefined_column"
	InvalidText         Code = "invalid_text_representation"
	QueryCanceled       Code = "query_canceled"
	ConnectionException Code = "connection_exception"
	TooManyConnections  Code = "too_many_connections"
	AdminShutdown       Code = "admin_shutdown"
)

// Severity mirrors the severity field of a Postgres error report.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
	SeverityDebug   Severity = "DEBUG"
	SeverityInfo    Severity = "INFO"
	SeverityLog     Severity = "LOG"
)

// Error is a Postgres server error with its SQLSTATE mapped to a Code.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string

	driverErr error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Severity, e.DatabaseCode, e.Message)
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// MapCode maps a SQLSTATE to a Code. Class 08 (connection exception) is
// mapped as a whole.
func MapCode(sqlState string) Code {
	switch sqlState {
	case "23502":
		return NotNullViolation
	case "23503":
		return ForeignKeyViolation
	case "23505":
		return UniqueViolation
	case "23514":
		return CheckViolation
	case "42601":
		return SyntaxError
	case "42P01":
		return UndefinedTable
	case "42703":
		return UndefinedColumn
	case "22P02":
		return InvalidText
	case "57014":
		return QueryCanceled
	case "53300":
		return TooManyConnections
	case "57P01", "57P02", "57P03":
		return AdminShutdown
	}

	if strings.HasPrefix(sqlState, "08") {
		return ConnectionException
	}

	return Other
}

// MapSeverity maps the (possibly localized-away) severity string.
func MapSeverity(severity string) Severity {
	switch strings.ToUpper(severity) {
	case "FATAL":
		return SeverityFatal
	case "PANIC":
		return SeverityPanic
	case "WARNING":
		return SeverityWarning
	case "NOTICE":
		return SeverityNotice
	case "DEBUG":
		return SeverityDebug
	case "INFO":
		return SeverityInfo
	case "LOG":
		return SeverityLog
	default:
		return SeverityError
	}
}

// unavailable reports whether the code means the server cannot serve
// queries right now, as opposed to rejecting this particular one.
func (c Code) unavailable() bool {
	switch c {
	case ConnectionException, TooManyConnections, AdminShutdown:
		return true
	}
	return false
}
