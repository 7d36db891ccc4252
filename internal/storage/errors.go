// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound            = errors.New("resource not found")
	ErrDuplicateKey        = errors.New("duplicate key violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

// constraintSentinels maps the postgres error codes callers branch on.
var constraintSentinels = map[string]error{
	pgErrCodeUniqueViolation:     ErrDuplicateKey,
	pgErrCodeForeignKeyViolation: ErrForeignKeyViolation,
}

// IsNoRows matches both database/sql and native pgx empty results.
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

// wrapWriteError turns constraint violations into sentinels naming the
// violated constraint, anything else is wrapped as is.
func wrapWriteError(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if sentinel, ok := constraintSentinels[pgErr.Code]; ok {
			if pgErr.ConstraintName != "" {
				return fmt.Errorf("%s violates %s: %w", op, pgErr.ConstraintName, sentinel)
			}
			return fmt.Errorf("%s: %w", op, sentinel)
		}
	}

	return fmt.Errorf("failed to %s: %w", op, err)
}
