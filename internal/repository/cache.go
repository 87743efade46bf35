// Package repository persists raw upstream payloads so repeat requests
// inside the TTL window skip the external API. Derived records are
// never stored; they are recomputed from the cached body on every read.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

type CacheEntry struct {
	Key       string
	Body      []byte
	FetchedAt time.Time
}

type CacheRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewCacheRepository(db *sql.DB, logger zerolog.Logger) *CacheRepository {
	return &CacheRepository{db: db, logger: logger}
}

// Get returns the cached entry for key, or nil when none exists.
func (r *CacheRepository) Get(ctx context.Context, key string) (*CacheEntry, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT cache_key, body, fetched_at FROM cache_entries WHERE cache_key = ?`, key)

	var entry CacheEntry
	if err := row.Scan(&entry.Key, &entry.Body, &entry.FetchedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cache entry: %w", err)
	}
	return &entry, nil
}

// Put stores or replaces the cached body for key.
func (r *CacheRepository) Put(ctx context.Context, key string, body []byte) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO cache_entries (cache_key, body, fetched_at) VALUES (?, ?, ?)
		 ON CONFLICT(cache_key) DO UPDATE SET body = excluded.body, fetched_at = excluded.fetched_at`,
		key, body, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}

// DeleteExpired drops entries older than maxAge. Runs once at server
// startup; failure is logged and ignored.
func (r *CacheRepository) DeleteExpired(ctx context.Context, maxAge time.Duration) {
	cutoff := time.Now().UTC().Add(-maxAge)
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM cache_entries WHERE fetched_at < ?`, cutoff)
	if err != nil {
		r.logger.Warn().Err(err).Msg("failed to prune expired cache entries")
		return
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		r.logger.Debug().Int64("pruned", n).Msg("expired cache entries removed")
	}
}
