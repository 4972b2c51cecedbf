// Copyright (c) 2026 Creata. All rights reserved.

package work

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/creata-app/creata/internal/platform/dberr"
	"github.com/creata-app/creata/pkg/slice"
)

// # In-Memory Repository

// memoryRepository implements [Repository] entirely in process memory.
//
// It backs the "memory" storage mode used for local development and demos,
// and doubles as the deterministic backend for the test suites. Every
// instance owns its own state; there is no shared global map.
type memoryRepository struct {
	mu sync.RWMutex

	works map[string]*Work
	order []string // Insertion order, newest first

	// favorites maps workID -> viewerID -> time the like was placed.
	favorites map[string]map[string]time.Time
}

// NewMemoryRepository constructs an in-memory work store preloaded with the
// given seed entities. Seeds are inserted in slice order, so the first seed
// is treated as the newest work.
func NewMemoryRepository(seeds []*Work) Repository {
	repository := &memoryRepository{
		works:     make(map[string]*Work),
		favorites: make(map[string]map[string]time.Time),
	}

	for index := len(seeds) - 1; index >= 0; index-- {
		seed := seeds[index]
		repository.works[seed.ID] = cloneWork(seed)
		repository.order = append([]string{seed.ID}, repository.order...)
	}

	return repository
}

// # Read Operations

func (repository *memoryRepository) ListTrending(_ context.Context, viewerID string, limit, offset int) ([]*Work, int, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	published := repository.collect(func(work *Work) bool {
		return work.Status == StatusPublished
	})

	// Most liked first; insertion order breaks ties deterministically.
	sort.SliceStable(published, func(i, j int) bool {
		return published[i].LikesCount > published[j].LikesCount
	})

	return repository.page(published, viewerID, limit, offset)
}

func (repository *memoryRepository) Search(_ context.Context, query, viewerID string, limit, offset int) ([]*Work, int, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	needle := strings.ToLower(query)

	// Exact ID lookup short-circuits the substring scan.
	if match, ok := repository.works[query]; ok && match.Status == StatusPublished {
		return []*Work{repository.resolve(match, viewerID)}, 1, nil
	}

	matches := repository.collect(func(work *Work) bool {
		if work.Status != StatusPublished {
			return false
		}
		if strings.Contains(strings.ToLower(work.Title), needle) {
			return true
		}
		if strings.Contains(strings.ToLower(work.Description), needle) {
			return true
		}
		for _, tag := range work.Tags {
			if strings.Contains(strings.ToLower(tag), needle) {
				return true
			}
		}
		return false
	})

	return repository.page(matches, viewerID, limit, offset)
}

func (repository *memoryRepository) FindByID(_ context.Context, id, viewerID string) (*Work, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	work, ok := repository.works[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}

	return repository.resolve(work, viewerID), nil
}

func (repository *memoryRepository) FindBySlug(_ context.Context, slug, viewerID string) (*Work, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	for _, id := range repository.order {
		if repository.works[id].Slug == slug {
			return repository.resolve(repository.works[id], viewerID), nil
		}
	}

	return nil, dberr.ErrNotFound
}

func (repository *memoryRepository) ListByAuthor(_ context.Context, authorID, viewerID string, limit, offset int) ([]*Work, int, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	owned := repository.collect(func(work *Work) bool {
		return work.AuthorID == authorID
	})

	return repository.page(owned, viewerID, limit, offset)
}

func (repository *memoryRepository) ListFavorites(_ context.Context, viewerID string, limit, offset int) ([]*Work, int, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	type likedWork struct {
		work    *Work
		likedAt time.Time
	}

	var liked []likedWork
	for workID, viewers := range repository.favorites {
		if likedAt, ok := viewers[viewerID]; ok {
			if work, exists := repository.works[workID]; exists {
				liked = append(liked, likedWork{work: work, likedAt: likedAt})
			}
		}
	}

	// Most recently liked first.
	sort.Slice(liked, func(i, j int) bool {
		return liked[i].likedAt.After(liked[j].likedAt)
	})

	works := slice.Map(liked, func(entry likedWork) *Work { return entry.work })

	return repository.page(works, viewerID, limit, offset)
}

// # Write Operations

func (repository *memoryRepository) Create(_ context.Context, work *Work) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.works[work.ID] = cloneWork(work)
	repository.order = append([]string{work.ID}, repository.order...)

	return nil
}

func (repository *memoryRepository) Update(_ context.Context, id string, patch Update) (*Work, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	work, ok := repository.works[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}

	// Merge only the fields present in the patch.
	if patch.Title != nil {
		work.Title = *patch.Title
	}
	if patch.Description != nil {
		work.Description = *patch.Description
	}
	if patch.Content != nil {
		work.Content = *patch.Content
	}
	if patch.CoverURL != nil {
		work.CoverURL = *patch.CoverURL
	}
	if patch.Status != nil {
		work.Status = *patch.Status
	}
	if patch.Type != nil {
		work.Type = *patch.Type
	}
	if patch.Tags != nil {
		work.Tags = append([]string(nil), (*patch.Tags)...)
	}

	work.UpdatedAt = time.Now().UTC()

	return cloneWork(work), nil
}

func (repository *memoryRepository) Delete(_ context.Context, id string) (bool, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.works[id]; !ok {
		return false, nil
	}

	delete(repository.works, id)
	delete(repository.favorites, id)
	repository.order = slice.Filter(repository.order, func(existing string) bool {
		return existing != id
	})

	return true, nil
}

func (repository *memoryRepository) ToggleLike(_ context.Context, workID, viewerID string) (bool, int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	work, ok := repository.works[workID]
	if !ok {
		return false, 0, dberr.ErrNotFound
	}

	viewers := repository.favorites[workID]
	if viewers == nil {
		viewers = make(map[string]time.Time)
		repository.favorites[workID] = viewers
	}

	// Flag and counter move in lockstep: exactly one up or one down.
	if _, liked := viewers[viewerID]; liked {
		delete(viewers, viewerID)
		work.LikesCount--
		return false, work.LikesCount, nil
	}

	viewers[viewerID] = time.Now().UTC()
	work.LikesCount++
	return true, work.LikesCount, nil
}

// # Internal Helpers

// collect walks works in insertion order and returns those matching keep.
func (repository *memoryRepository) collect(keep func(*Work) bool) []*Work {
	var result []*Work
	for _, id := range repository.order {
		if work := repository.works[id]; keep(work) {
			result = append(result, work)
		}
	}
	return result
}

// page applies offset/limit and resolves the per-viewer like flag.
func (repository *memoryRepository) page(works []*Work, viewerID string, limit, offset int) ([]*Work, int, error) {
	total := len(works)

	if offset >= total {
		return []*Work{}, total, nil
	}

	end := offset + limit
	if end > total {
		end = total
	}

	result := make([]*Work, 0, end-offset)
	for _, work := range works[offset:end] {
		result = append(result, repository.resolve(work, viewerID))
	}

	return result, total, nil
}

// resolve clones a work and stamps the viewer-specific like flag.
// Callers must hold at least the read lock.
func (repository *memoryRepository) resolve(work *Work, viewerID string) *Work {
	resolved := cloneWork(work)

	if viewerID != "" {
		_, resolved.IsLiked = repository.favorites[work.ID][viewerID]
	}

	return resolved
}

// cloneWork deep-copies a work so callers can never mutate stored state.
func cloneWork(work *Work) *Work {
	clone := *work
	clone.Tags = append([]string(nil), work.Tags...)
	clone.AssetIDs = append([]string(nil), work.AssetIDs...)
	return &clone
}
