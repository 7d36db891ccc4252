// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

const (
	defaultPageSize uint64 = 100
	maxPageSize     uint64 = 500
)

// PageSize turns the size query parameter into a limit, capped at maxPageSize.
func PageSize(size int64) uint64 {
	switch {
	case size <= 0:
		return defaultPageSize
	case uint64(size) > maxPageSize:
		return maxPageSize
	}
	return uint64(size)
}

// Offset turns a 1-based page into a row offset.
func Offset(page int64, pageSize uint64) uint64 {
	if page <= 1 {
		return 0
	}
	return uint64(page-1) * pageSize
}
