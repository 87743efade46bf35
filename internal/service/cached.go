package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"rivals-tracker/internal/constants"
	"rivals-tracker/internal/repository"
)

// fetchCached is the read-through path shared by every service: return
// the cached body when fresh, otherwise fetch upstream and store the
// raw payload. Normalization happens in the caller, so a policy change
// takes effect on the next request without invalidating the cache.
func fetchCached(
	ctx context.Context,
	cache *repository.CacheRepository,
	logger zerolog.Logger,
	key string,
	ttl time.Duration,
	fetch func(ctx context.Context) (json.RawMessage, error),
) ([]byte, error) {
	dbCtx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	entry, err := cache.Get(dbCtx, key)
	cancel()
	if err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("cache read failed")
	}
	if entry != nil && time.Since(entry.FetchedAt) < ttl {
		logger.Debug().Str("key", key).Msg("cache hit")
		return entry.Body, nil
	}

	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	body, err := fetch(apiCtx)
	if err != nil {
		// serve stale on upstream failure when we have anything at all
		if entry != nil {
			logger.Warn().Err(err).Str("key", key).Msg("upstream failed, serving stale cache entry")
			return entry.Body, nil
		}
		return nil, err
	}

	dbCtx, cancel = context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	if err := cache.Put(dbCtx, key, body); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
	return body, nil
}
