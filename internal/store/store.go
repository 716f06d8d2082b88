// Package store provides the entity store backends for futbolpath.
//
// Each backend answers the same three questions: every teammate edge (read
// once per graph build), one player's display attributes by ID, and
// name-prefix-ranked player search. Backends are read-only; ingestion lives
// outside this module.
package store

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

const (
	defaultQueryTimeout = 30 * time.Second
	bulkQueryTimeout    = 5 * time.Minute
)

// Search limits.
const (
	defaultSearchLimit = 10
	maxSearchLimit     = 20
)

// withTimeout creates a context with the default query timeout.
func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, defaultQueryTimeout)
}

// withBulkTimeout creates a context with the timeout used for full-table reads.
func withBulkTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, bulkQueryTimeout)
}

// clampLimit applies the default and the hard cap to a search limit.
func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultSearchLimit
	}

	if limit > maxSearchLimit {
		return maxSearchLimit
	}

	return limit
}

// likeEscaper escapes LIKE wildcards so user input only matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePatterns returns the substring and prefix patterns for a normalized query.
func likePatterns(normalized string) (contains, prefix string) {
	escaped := likeEscaper.Replace(normalized)
	return "%" + escaped + "%", escaped + "%"
}

// nullString maps a nullable column to the zero string.
func nullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}

	return ""
}
