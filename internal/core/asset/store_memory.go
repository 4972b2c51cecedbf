// Copyright (c) 2026 Creata. All rights reserved.

package asset

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/creata-app/creata/internal/platform/dberr"
)

// # In-Memory Repository

// memoryRepository implements [Repository] in process memory.
// It backs the "memory" storage mode and the test suites.
type memoryRepository struct {
	mu sync.RWMutex

	assets map[string]*Asset
	order  []string // Insertion order, oldest first
}

// NewMemoryRepository constructs an in-memory asset store preloaded with
// the given seed entities.
func NewMemoryRepository(seeds []*Asset) Repository {
	repository := &memoryRepository{
		assets: make(map[string]*Asset),
	}

	for _, seed := range seeds {
		repository.assets[seed.ID] = cloneAsset(seed)
		repository.order = append(repository.order, seed.ID)
	}

	return repository
}

func (repository *memoryRepository) FindByID(_ context.Context, id string) (*Asset, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	found, ok := repository.assets[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}

	return cloneAsset(found), nil
}

func (repository *memoryRepository) FindByIDs(_ context.Context, ids []string) ([]*Asset, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	result := make([]*Asset, 0, len(ids))
	for _, id := range ids {
		if found, ok := repository.assets[id]; ok {
			result = append(result, cloneAsset(found))
		}
	}

	return result, nil
}

func (repository *memoryRepository) ListByWork(_ context.Context, workID string) ([]*Asset, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	var result []*Asset
	for _, id := range repository.order {
		entry := repository.assets[id]
		if entry.WorkID != nil && *entry.WorkID == workID {
			result = append(result, cloneAsset(entry))
		}
	}

	return result, nil
}

func (repository *memoryRepository) ListByAuthor(_ context.Context, authorID string) ([]*Asset, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	var result []*Asset
	// Walk insertion order backwards: newest first.
	for index := len(repository.order) - 1; index >= 0; index-- {
		entry := repository.assets[repository.order[index]]
		if entry.AuthorID == authorID {
			result = append(result, cloneAsset(entry))
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}

func (repository *memoryRepository) Search(_ context.Context, query, authorID string) ([]*Asset, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	needle := strings.ToLower(query)

	var result []*Asset
	for index := len(repository.order) - 1; index >= 0; index-- {
		entry := repository.assets[repository.order[index]]
		if authorID != "" && entry.AuthorID != authorID {
			continue
		}
		if matchesQuery(entry, needle) {
			result = append(result, cloneAsset(entry))
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}

func (repository *memoryRepository) Update(_ context.Context, id string, patch Update) (*Asset, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	found, ok := repository.assets[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}

	if patch.Name != nil {
		found.Name = *patch.Name
	}
	if patch.Type != nil {
		found.Type = *patch.Type
	}
	if patch.WorkID != nil {
		found.WorkID = patch.WorkID
	}
	if patch.ParentID != nil {
		found.ParentID = patch.ParentID
	}
	if patch.Content != nil {
		found.Content = *patch.Content
	}
	if patch.Metadata != nil {
		found.Metadata = patch.Metadata
	}
	if patch.RelatedAssets != nil {
		found.RelatedAssets = append([]string(nil), (*patch.RelatedAssets)...)
	}
	if patch.IsReleaseUnit != nil {
		found.IsReleaseUnit = *patch.IsReleaseUnit
	}
	if patch.ReleaseKind != nil {
		found.ReleaseKind = patch.ReleaseKind
	}
	if patch.PricingPlanID != nil {
		found.PricingPlanID = patch.PricingPlanID
	}

	found.UpdatedAt = time.Now().UTC()

	return cloneAsset(found), nil
}

// matchesQuery reports a case-insensitive substring hit on name, content,
// or metadata tags. needle is already lowercased.
func matchesQuery(entry *Asset, needle string) bool {
	if strings.Contains(strings.ToLower(entry.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(entry.Content), needle) {
		return true
	}
	if entry.Metadata != nil {
		for _, tag := range entry.Metadata.Tags {
			if strings.Contains(strings.ToLower(tag), needle) {
				return true
			}
		}
	}
	return false
}

func (repository *memoryRepository) Upsert(_ context.Context, asset *Asset) (bool, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	_, exists := repository.assets[asset.ID]

	repository.assets[asset.ID] = cloneAsset(asset)
	if !exists {
		repository.order = append(repository.order, asset.ID)
	}

	return !exists, nil
}

func (repository *memoryRepository) Delete(_ context.Context, id string) (bool, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.assets[id]; !ok {
		return false, nil
	}

	delete(repository.assets, id)
	for index, existing := range repository.order {
		if existing == id {
			repository.order = append(repository.order[:index], repository.order[index+1:]...)
			break
		}
	}

	return true, nil
}

// cloneAsset deep-copies an asset so stored state never leaks by reference.
func cloneAsset(asset *Asset) *Asset {
	clone := *asset
	clone.RelatedAssets = append([]string(nil), asset.RelatedAssets...)

	if asset.Metadata != nil {
		meta := *asset.Metadata
		meta.Tags = append([]string(nil), asset.Metadata.Tags...)
		if asset.Metadata.Extra != nil {
			meta.Extra = make(map[string]string, len(asset.Metadata.Extra))
			for key, value := range asset.Metadata.Extra {
				meta.Extra[key] = value
			}
		}
		clone.Metadata = &meta
	}

	return &clone
}
