// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/canonical/vault-service/internal/logging"
	"github.com/canonical/vault-service/internal/monitoring"
	"github.com/canonical/vault-service/internal/tracing"
)

const defaultTxTimeout = time.Minute

type Config struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	// TxTimeout bounds how long a transaction opened by WithTx may stay open.
	TxTimeout      time.Duration
	TracingEnabled bool
}

var _ DBClientInterface = (*DBClient)(nil)

// DBClient hands out squirrel builders bound either to the pool or to the
// transaction carried by the context.
type DBClient struct {
	pool      *pgxpool.Pool
	db        *sql.DB
	txTimeout time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (d *DBClient) Statement(ctx context.Context) sq.StatementBuilderType {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	lt, ok := ctx.Value(txKey{}).(*lazyTx)
	if !ok {
		return builder.RunWith(d.db)
	}

	runner, err := lt.runner()
	if err != nil {
		d.logger.Errorf("failed to begin transaction: %v", err)
		return builder.RunWith(failedRunner{err: err})
	}

	return builder.RunWith(runner)
}

// Ping checks connectivity and reports the outcome as the database
// availability metric.
func (d *DBClient) Ping(ctx context.Context) error {
	ctx, span := d.tracer.Start(ctx, "db.DBClient.Ping")
	defer span.End()

	err := d.db.PingContext(ctx)

	up := 1.0
	if err != nil {
		up = 0
	}
	if mErr := d.monitor.SetDependencyAvailability(map[string]string{"component": "database"}, up); mErr != nil {
		d.logger.Debugf("failed to set database availability metric: %v", mErr)
	}

	return err
}

func (d *DBClient) Close() {
	if d.db != nil {
		if err := d.db.Close(); err != nil {
			d.logger.Debugf("failed to close database handle: %v", err)
		}
	}

	if d.pool != nil {
		d.pool.Close()
	}
}

// NewDBClient opens a pgx pool for cfg.DSN and exposes it through database/sql
// so squirrel can drive it.
func NewDBClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*DBClient, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("invalid DSN: %w", err)
	}

	if cfg.TracingEnabled {
		// uses the global tracer provider set up by the tracing package
		poolCfg.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnLifetimeJitter = cfg.MaxConnLifetime / 10
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create db pool: %w", err)
	}

	if cfg.TracingEnabled {
		if err := otelpgx.RecordStats(pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to record database stats: %w", err)
		}
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	if err := sqlDB.Ping(); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	d := NewDBClientFromDB(sqlDB, tracer, monitor, logger)
	d.pool = pool
	if cfg.TxTimeout > 0 {
		d.txTimeout = cfg.TxTimeout
	}

	return d, nil
}

// NewDBClientFromDB wraps an already opened handle, used by tests with sqlmock.
func NewDBClientFromDB(sqlDB *sql.DB, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *DBClient {
	return &DBClient{
		db:        sqlDB,
		txTimeout: defaultTxTimeout,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}
