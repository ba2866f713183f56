package errors

import (
	stderrs "errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the repositories can hit
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
	pgInvalidText         = "22P02"
	pgReadOnlyTx          = "25006"
	pgCannotConnectNow    = "57P03"
)

// ExtractPgError returns the *pgconn.PgError at the root of err
func ExtractPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsDuplicateKey reports a unique constraint violation
func IsDuplicateKey(err error) bool {
	pgErr, ok := ExtractPgError(err)
	return ok && pgErr.Code == pgUniqueViolation
}

// DBErrorCode maps a Postgres error onto an ErrorCode; ok is false for non-pg errors
func DBErrorCode(err error) (ErrorCode, bool) {
	if stderrs.Is(err, pgx.ErrNoRows) {
		return ErrorCodeNotFound, true
	}
	pgErr, ok := ExtractPgError(err)
	if !ok {
		return ErrorCodeUnknown, false
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return ErrorCodeDuplicateKey, true
	case pgForeignKeyViolation, pgInvalidText:
		return ErrorCodeInvalidArgument, true
	case pgNotNullViolation, pgCheckViolation:
		return ErrorCodeValidation, true
	case pgReadOnlyTx, pgCannotConnectNow:
		return ErrorCodeUnavailable, true
	}
	return ErrorCodeDB, true
}

// FromPostgres wraps a database error with its mapped code; nil stays nil
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	if code, ok := DBErrorCode(err); ok {
		if pgErr, isPg := ExtractPgError(err); isPg && pgErr.ColumnName != "" {
			return &Error{code: code, msg: msg, orig: err, field: pgErr.ColumnName}
		}
		return Wrap(err, code, msg)
	}
	return Wrap(err, ErrorCodeDB, msg)
}

// FromPostgresf is FromPostgres with a formatted message
func FromPostgresf(err error, format string, a ...any) error {
	return FromPostgres(err, fmt.Sprintf(format, a...))
}
