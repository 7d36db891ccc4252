// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// failedRunner fails every statement with the error that prevented the transaction from starting.
type failedRunner struct {
	err error
}

var _ sq.QueryRowerContext = failedRunner{}

func (r failedRunner) Exec(string, ...interface{}) (sql.Result, error) {
	return nil, r.wrap()
}

func (r failedRunner) Query(string, ...interface{}) (*sql.Rows, error) {
	return nil, r.wrap()
}

func (r failedRunner) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, r.wrap()
}

func (r failedRunner) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, r.wrap()
}

func (r failedRunner) QueryRowContext(context.Context, string, ...interface{}) sq.RowScanner {
	return errRow{err: r.wrap()}
}

func (r failedRunner) wrap() error {
	return fmt.Errorf("transaction unavailable: %w", r.err)
}

type errRow struct {
	err error
}

func (r errRow) Scan(...interface{}) error {
	return r.err
}
