// Copyright (c) 2026 Creata. All rights reserved.

package work

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/creata-app/creata/internal/platform/constants"
)

// # Redis Caching Layer

const (
	// trendingTTL bounds staleness of the cached trending pages.
	trendingTTL = 60 * time.Second

	// trendingVersionKey tracks the current cache generation. Mutations
	// bump it, which implicitly orphans every older page entry.
	trendingVersionKey = constants.RedisPrefixTrending + "version"
)

// cachedRepository decorates a [Repository] with a Redis read-through cache
// for the trending listing, which is by far the hottest query in the system.
//
// Only anonymous requests are cached: the per-viewer like flag makes
// authenticated payloads unique per user, so those always hit the backing
// store.
type cachedRepository struct {
	Repository

	client *redis.Client
	logger *slog.Logger
}

// NewCachedRepository wraps next with the trending cache.
func NewCachedRepository(next Repository, client *redis.Client, logger *slog.Logger) Repository {
	return &cachedRepository{
		Repository: next,
		client:     client,
		logger:     logger,
	}
}

// trendingPage is the cached wire format for one page of trending results.
type trendingPage struct {
	Works []*Work `json:"works"`
	Total int     `json:"total"`
}

func (repository *cachedRepository) ListTrending(context context.Context, viewerID string, limit, offset int) ([]*Work, int, error) {

	// Authenticated viewers bypass the cache entirely.
	if viewerID != "" {
		return repository.Repository.ListTrending(context, viewerID, limit, offset)
	}

	key, err := repository.pageKey(context, limit, offset)
	if err == nil {
		if payload, cacheErr := repository.client.Get(context, key).Bytes(); cacheErr == nil {
			var page trendingPage
			if json.Unmarshal(payload, &page) == nil {
				return page.Works, page.Total, nil
			}
		}
	}

	works, total, err := repository.Repository.ListTrending(context, viewerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	repository.storePage(context, limit, offset, works, total)

	return works, total, nil
}

// # Invalidation

// Mutations bump the cache generation. Old entries simply expire.

func (repository *cachedRepository) Create(context context.Context, work *Work) error {
	if err := repository.Repository.Create(context, work); err != nil {
		return err
	}
	repository.invalidate(context)
	return nil
}

func (repository *cachedRepository) Update(context context.Context, id string, patch Update) (*Work, error) {
	updated, err := repository.Repository.Update(context, id, patch)
	if err != nil {
		return nil, err
	}
	repository.invalidate(context)
	return updated, nil
}

func (repository *cachedRepository) Delete(context context.Context, id string) (bool, error) {
	removed, err := repository.Repository.Delete(context, id)
	if err != nil {
		return false, err
	}
	if removed {
		repository.invalidate(context)
	}
	return removed, nil
}

func (repository *cachedRepository) ToggleLike(context context.Context, workID, viewerID string) (bool, int, error) {
	liked, likesCount, err := repository.Repository.ToggleLike(context, workID, viewerID)
	if err != nil {
		return false, 0, err
	}
	repository.invalidate(context)
	return liked, likesCount, nil
}

// # Internal Helpers

// pageKey derives the versioned cache key for one trending page.
func (repository *cachedRepository) pageKey(context context.Context, limit, offset int) (string, error) {
	version, err := repository.client.Get(context, trendingVersionKey).Int64()
	if err != nil && err != redis.Nil {
		return "", err
	}
	return fmt.Sprintf("%sv%d:%d:%d", constants.RedisPrefixTrending, version, limit, offset), nil
}

// storePage writes a trending page to the cache. Failures are logged and
// swallowed; the cache is an optimization, never a dependency.
func (repository *cachedRepository) storePage(context context.Context, limit, offset int, works []*Work, total int) {
	key, err := repository.pageKey(context, limit, offset)
	if err != nil {
		return
	}

	payload, err := json.Marshal(trendingPage{Works: works, Total: total})
	if err != nil {
		return
	}

	if err := repository.client.Set(context, key, payload, trendingTTL).Err(); err != nil {
		repository.logger.Warn("trending_cache_write_failed", slog.Any("error", err))
	}
}

func (repository *cachedRepository) invalidate(context context.Context) {
	if err := repository.client.Incr(context, trendingVersionKey).Err(); err != nil {
		repository.logger.Warn("trending_cache_invalidate_failed", slog.Any("error", err))
	}
}
