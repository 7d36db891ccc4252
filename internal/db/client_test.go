// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/vault-service/internal/logging"
	"github.com/canonical/vault-service/internal/monitoring"
	"github.com/canonical/vault-service/internal/tracing"
)

func newMockClient(t *testing.T) (*DBClient, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	logger := logging.NewNoopLogger()
	return NewDBClientFromDB(sqlDB, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger), mock
}

func deleteVault(ctx context.Context, c *DBClient, id string) error {
	_, err := c.Statement(ctx).Delete("vaults").Where(sq.Eq{"id": id}).ExecContext(ctx)
	return err
}

func TestWithTx_Commit(t *testing.T) {
	c, mock := newMockClient(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM vaults WHERE id = \$1`).WithArgs("v-1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := c.WithTx(context.Background(), func(ctx context.Context) error {
		return deleteVault(ctx, c, "v-1")
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestWithTx_RollbackOnError(t *testing.T) {
	c, mock := newMockClient(t)
	fnErr := errors.New("membership conflict")

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM vaults WHERE id = \$1`).WithArgs("v-1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	err := c.WithTx(context.Background(), func(ctx context.Context) error {
		if err := deleteVault(ctx, c, "v-1"); err != nil {
			return err
		}
		return fnErr
	})
	if !errors.Is(err, fnErr) {
		t.Fatalf("expected %v, got %v", fnErr, err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestWithTx_NoStatementsNoTransaction(t *testing.T) {
	c, mock := newMockClient(t)

	err := c.WithTx(context.Background(), func(ctx context.Context) error {
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestWithTx_NestedJoinsOuterTransaction(t *testing.T) {
	c, mock := newMockClient(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM vaults`).WithArgs("v-1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM vaults`).WithArgs("v-2").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := c.WithTx(context.Background(), func(ctx context.Context) error {
		if err := deleteVault(ctx, c, "v-1"); err != nil {
			return err
		}
		return c.WithTx(ctx, func(inner context.Context) error {
			return deleteVault(inner, c, "v-2")
		})
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPing(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	defer sqlDB.Close()

	logger := logging.NewNoopLogger()
	c := NewDBClientFromDB(sqlDB, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	mock.ExpectPing()
	if err := c.Ping(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	mock.ExpectPing().WillReturnError(errors.New("down"))
	if err := c.Ping(context.Background()); err == nil {
		t.Error("expected ping error")
	}
}

func TestTransactionMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		status     int
		setupMocks func(sqlmock.Sqlmock)
	}{
		{
			name:       "read request skips transaction",
			method:     http.MethodGet,
			status:     http.StatusOK,
			setupMocks: func(mock sqlmock.Sqlmock) {},
		},
		{
			name:   "successful write commits",
			method: http.MethodPost,
			status: http.StatusOK,
			setupMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`DELETE FROM vaults`).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name:   "failed write rolls back",
			method: http.MethodPost,
			status: http.StatusBadRequest,
			setupMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`DELETE FROM vaults`).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectRollback()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, mock := newMockClient(t)
			tt.setupMocks(mock)

			handler := TransactionMiddleware(c, logging.NewNoopLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodGet {
					if err := deleteVault(r.Context(), c, "v-1"); err != nil {
						t.Errorf("unexpected error: %v", err)
					}
				}
				w.WriteHeader(tt.status)
			}))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(tt.method, "/webhooks/registration", nil))

			if rr.Code != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, rr.Code)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}

func TestPagination(t *testing.T) {
	tests := []struct {
		page, size    int64
		limit, offset uint64
	}{
		{page: 0, size: 0, limit: defaultPageSize, offset: 0},
		{page: 1, size: 10, limit: 10, offset: 0},
		{page: 3, size: 10, limit: 10, offset: 20},
		{page: 2, size: 10000, limit: maxPageSize, offset: maxPageSize},
	}

	for _, tt := range tests {
		limit := PageSize(tt.size)
		if limit != tt.limit {
			t.Errorf("PageSize(%d): expected %d, got %d", tt.size, tt.limit, limit)
		}
		if got := Offset(tt.page, limit); got != tt.offset {
			t.Errorf("Offset(%d, %d): expected %d, got %d", tt.page, limit, tt.offset, got)
		}
	}
}

func TestWithTx_RollbackOnPanic(t *testing.T) {
	c, mock := newMockClient(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM vaults WHERE id = \$1`).WithArgs("v-1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected the panic to propagate")
			}
		}()

		_ = c.WithTx(context.Background(), func(ctx context.Context) error {
			if err := deleteVault(ctx, c, "v-1"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			panic("boom")
		})
	}()

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestWithTx_BeginFailureSurfacesWhenSwallowed(t *testing.T) {
	c, mock := newMockClient(t)
	beginErr := errors.New("too many connections")

	mock.ExpectBegin().WillReturnError(beginErr)

	err := c.WithTx(context.Background(), func(ctx context.Context) error {
		_ = deleteVault(ctx, c, "v-1")
		return nil
	})
	if !errors.Is(err, beginErr) {
		t.Fatalf("expected %v, got %v", beginErr, err)
	}
}

func TestWithTx_BeginFailureFailsStatements(t *testing.T) {
	c, mock := newMockClient(t)
	beginErr := errors.New("too many connections")

	mock.ExpectBegin().WillReturnError(beginErr)

	err := c.WithTx(context.Background(), func(ctx context.Context) error {
		return deleteVault(ctx, c, "v-1")
	})
	if !errors.Is(err, beginErr) {
		t.Fatalf("expected %v, got %v", beginErr, err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
