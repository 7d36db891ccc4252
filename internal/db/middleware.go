// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"fmt"
	"net/http"

	"github.com/canonical/vault-service/internal/logging"
)

// TransactionMiddleware runs every write request in one lazy transaction.
// Responses below 400 commit, anything else rolls back.
func TransactionMiddleware(db DBClientInterface, logger logging.LoggerInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}

			err := db.WithTx(r.Context(), func(txCtx context.Context) error {
				rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

				next.ServeHTTP(rw, r.WithContext(txCtx))

				if rw.status >= http.StatusBadRequest {
					return fmt.Errorf("%s %s answered %d", r.Method, r.URL.Path, rw.status)
				}

				return nil
			})
			if err != nil {
				logger.Debugf("request transaction not committed: %v", err)
			}
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}
