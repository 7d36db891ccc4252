// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

type txKey struct{}

// lazyTx opens the transaction on the first statement, a WithTx block that
// only decides to do nothing never touches the pool.
type lazyTx struct {
	db      *sql.DB
	timeout time.Duration

	tx       TxInterface
	cancel   context.CancelFunc
	beginErr error
}

func (lt *lazyTx) runner() (sq.BaseRunner, error) {
	if lt.tx != nil || lt.beginErr != nil {
		return lt.tx, lt.beginErr
	}

	// detached from the request so a client hanging up cannot abort the
	// transaction between statements, the timeout still bounds it
	ctx, cancel := context.WithTimeout(context.Background(), lt.timeout)

	tx, err := lt.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		cancel()
		lt.beginErr = err
		return nil, err
	}

	lt.tx = tx
	lt.cancel = cancel
	return tx, nil
}

// finish commits when fnErr is nil and rolls back otherwise.
func (lt *lazyTx) finish(fnErr error) error {
	if lt.tx == nil {
		if fnErr == nil && lt.beginErr != nil {
			return fmt.Errorf("transaction unavailable: %w", lt.beginErr)
		}
		return fnErr
	}
	defer lt.cancel()

	if fnErr != nil {
		if err := lt.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			return errors.Join(fnErr, fmt.Errorf("rollback failed: %w", err))
		}
		return fnErr
	}

	if err := lt.tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// WithTx runs fn in a transaction which is only opened once fn issues a
// statement through Statement. A nil return commits, anything else rolls
// back. Inside an outer WithTx, fn joins the outer transaction and its owner
// decides the outcome.
func (d *DBClient) WithTx(ctx context.Context, fn func(context.Context) error) (err error) {
	if _, ok := ctx.Value(txKey{}).(*lazyTx); ok {
		return fn(ctx)
	}

	lt := &lazyTx{db: d.db, timeout: d.txTimeout}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := lt.finish(fmt.Errorf("panic: %v", p)); rbErr != nil {
				d.logger.Errorf("rolled back after panic: %v", rbErr)
			}
			panic(p)
		}
	}()

	err = lt.finish(fn(context.WithValue(ctx, txKey{}, lt)))
	if err != nil && lt.tx != nil {
		d.logger.Debugf("transaction not committed: %v", err)
	}

	return err
}
