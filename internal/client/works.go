// Copyright (c) 2026 Creata. All rights reserved.

package client

import (
	"context"
	"sync"

	"github.com/creata-app/creata/internal/core/work"
	"github.com/creata-app/creata/internal/platform/apperr"
)

// # Backend Contract

// WorksBackend is the slice of the works service the store consumes.
// *work.Service satisfies it; tests substitute controllable stubs.
type WorksBackend interface {
	ListTrending(ctx context.Context, viewerID string, limit, offset int) ([]*work.Work, int, error)
	Search(ctx context.Context, query, viewerID string, limit, offset int) ([]*work.Work, int, error)
	GetWork(ctx context.Context, identifier, viewerID string) (*work.Work, error)
	ListByAuthor(ctx context.Context, authorID, viewerID string, limit, offset int) ([]*work.Work, int, error)
	ListFavorites(ctx context.Context, viewerID string, limit, offset int) ([]*work.Work, int, error)
	CreateWork(ctx context.Context, entity *work.Work) error
	UpdateWork(ctx context.Context, id string, patch work.Update, actorID string, admin bool) (*work.Work, error)
	DeleteWork(ctx context.Context, id, actorID string, admin bool) (bool, error)
	ToggleLike(ctx context.Context, workID, viewerID string) (bool, int, error)
}

// # Collections

// workCollection names a cached collection for generation stamping.
type workCollection int

const (
	collectionTrending workCollection = iota
	collectionSearch
	collectionUserWorks
	collectionFavorites
	collectionCurrent
)

// # Store

// WorksStore caches work collections for one viewer session.
//
// Every fetch is stamped with a per-collection generation. A response
// only lands if no newer fetch for the same collection was issued while
// it was in flight; late responses are dropped on the floor. Without
// the stamp, two racing fetches would leave whichever finished last in
// the collection, regardless of which was requested last.
type WorksStore struct {
	mu      sync.Mutex
	backend WorksBackend

	viewerID string
	admin    bool

	trending      []*work.Work
	searchResults []*work.Work
	userWorks     []*work.Work
	favorites     []*work.Work
	current       *work.Work

	loading   bool
	lastError error

	generations  map[workCollection]uint64
	pendingLikes map[string]bool
}

// NewWorksStore constructs a store bound to one viewer session.
// viewerID is empty for anonymous browsing.
func NewWorksStore(backend WorksBackend, viewerID string, admin bool) *WorksStore {
	return &WorksStore{
		backend:      backend,
		viewerID:     viewerID,
		admin:        admin,
		generations:  make(map[workCollection]uint64),
		pendingLikes: make(map[string]bool),
	}
}

// # Fetch Actions

// FetchTrending loads the trending collection.
func (store *WorksStore) FetchTrending(ctx context.Context, limit, offset int) error {
	generation := store.begin(collectionTrending)

	works, _, err := store.backend.ListTrending(ctx, store.viewerID, limit, offset)

	return store.finish(collectionTrending, generation, err, func() {
		store.trending = works
	})
}

// Search loads the search results collection for the given query.
func (store *WorksStore) Search(ctx context.Context, query string, limit, offset int) error {
	generation := store.begin(collectionSearch)

	works, _, err := store.backend.Search(ctx, query, store.viewerID, limit, offset)

	return store.finish(collectionSearch, generation, err, func() {
		store.searchResults = works
	})
}

// FetchCurrent loads the detail record by UUID or slug. A missing work
// leaves Current nil without raising an error.
func (store *WorksStore) FetchCurrent(ctx context.Context, identifier string) error {
	generation := store.begin(collectionCurrent)

	entity, err := store.backend.GetWork(ctx, identifier, store.viewerID)
	if appError := apperr.As(err); appError != nil && appError.Code == "NOT_FOUND" {
		entity, err = nil, nil
	}

	return store.finish(collectionCurrent, generation, err, func() {
		store.current = entity
	})
}

// FetchUserWorks loads the session viewer's own works, drafts included.
func (store *WorksStore) FetchUserWorks(ctx context.Context, limit, offset int) error {
	generation := store.begin(collectionUserWorks)

	works, _, err := store.backend.ListByAuthor(ctx, store.viewerID, store.viewerID, limit, offset)

	return store.finish(collectionUserWorks, generation, err, func() {
		store.userWorks = works
	})
}

// FetchFavorites loads the viewer's liked works.
func (store *WorksStore) FetchFavorites(ctx context.Context, limit, offset int) error {
	generation := store.begin(collectionFavorites)

	works, _, err := store.backend.ListFavorites(ctx, store.viewerID, limit, offset)

	return store.finish(collectionFavorites, generation, err, func() {
		store.favorites = works
	})
}

// # Mutation Actions

// CreateWork persists a new work and places it at the head of the
// viewer's own works, selected as Current.
func (store *WorksStore) CreateWork(ctx context.Context, entity *work.Work) error {
	entity.AuthorID = store.viewerID

	if err := store.backend.CreateWork(ctx, entity); err != nil {
		store.setError(err)
		return err
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	store.lastError = nil
	store.userWorks = append([]*work.Work{entity}, store.userWorks...)
	store.current = entity

	return nil
}

// UpdateWork applies a partial update and propagates the merged record
// into every collection that holds it.
func (store *WorksStore) UpdateWork(ctx context.Context, id string, patch work.Update) (*work.Work, error) {
	updated, err := store.backend.UpdateWork(ctx, id, patch, store.viewerID, store.admin)
	if err != nil {
		store.setError(err)
		return nil, err
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	store.lastError = nil
	store.replaceEverywhere(updated)

	return updated, nil
}

// DeleteWork removes a work and evicts it from every collection.
func (store *WorksStore) DeleteWork(ctx context.Context, id string) (bool, error) {
	removed, err := store.backend.DeleteWork(ctx, id, store.viewerID, store.admin)
	if err != nil {
		store.setError(err)
		return false, err
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	store.lastError = nil
	store.removeEverywhere(id)

	return removed, nil
}

// ToggleLike flips the viewer's like on a work.
//
// The flip is applied optimistically to every cached copy before the
// backend call. On success the copies are reconciled with the server's
// answer; on failure the exact inverse update is applied, so a failed
// call leaves the cache as it was found.
func (store *WorksStore) ToggleLike(ctx context.Context, workID string) error {
	store.mu.Lock()

	cached, wasLiked := store.likedState(workID)
	if cached {
		store.applyLike(workID, !wasLiked)
		store.pendingLikes[workID] = true
	}
	store.mu.Unlock()

	liked, likesCount, err := store.backend.ToggleLike(ctx, workID, store.viewerID)

	store.mu.Lock()
	defer store.mu.Unlock()
	delete(store.pendingLikes, workID)

	if err != nil {
		if cached {
			// Compensate: put the flag and counter back exactly.
			store.applyLike(workID, wasLiked)
		}
		store.lastError = err
		return err
	}

	store.lastError = nil
	store.reconcileLike(workID, liked, likesCount)

	return nil
}

// # Snapshots

// Trending returns a copy of the trending collection.
func (store *WorksStore) Trending() []*work.Work { return store.snapshot(&store.trending) }

// SearchResults returns a copy of the search results collection.
func (store *WorksStore) SearchResults() []*work.Work { return store.snapshot(&store.searchResults) }

// UserWorks returns a copy of the viewer's own works.
func (store *WorksStore) UserWorks() []*work.Work { return store.snapshot(&store.userWorks) }

// Favorites returns a copy of the viewer's liked works.
func (store *WorksStore) Favorites() []*work.Work { return store.snapshot(&store.favorites) }

// Current returns a copy of the detail record, or nil.
func (store *WorksStore) Current() *work.Work {
	store.mu.Lock()
	defer store.mu.Unlock()

	if store.current == nil {
		return nil
	}
	return cloneWork(store.current)
}

// Loading reports whether any fetch is in flight.
func (store *WorksStore) Loading() bool {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.loading
}

// Err returns the error of the most recent failed action, or nil.
func (store *WorksStore) Err() error {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.lastError
}

// LikePending reports whether an optimistic like on the given work is
// still waiting for the backend.
func (store *WorksStore) LikePending(workID string) bool {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.pendingLikes[workID]
}

// # Internals

// begin stamps a new generation for the collection and enters the
// loading state.
func (store *WorksStore) begin(collection workCollection) uint64 {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.loading = true
	store.lastError = nil
	store.generations[collection]++

	return store.generations[collection]
}

// finish lands a fetch result. A response carrying a stale generation
// is discarded entirely; the newer in-flight request owns the flags.
func (store *WorksStore) finish(collection workCollection, generation uint64, err error, apply func()) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if store.generations[collection] != generation {
		return nil
	}

	store.loading = false

	if err != nil {
		store.lastError = err
		return err
	}

	apply()
	return nil
}

func (store *WorksStore) setError(err error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.lastError = err
}

// likedState scans the cached copies for the work's current like flag.
// Caller holds the lock.
func (store *WorksStore) likedState(workID string) (cached, liked bool) {
	if store.current != nil && store.current.ID == workID {
		return true, store.current.IsLiked
	}

	for _, collection := range store.collections() {
		for _, entity := range *collection {
			if entity.ID == workID {
				return true, entity.IsLiked
			}
		}
	}

	return false, false
}

// applyLike sets the like flag and moves the counter by one in the
// matching direction on every cached copy. Caller holds the lock.
func (store *WorksStore) applyLike(workID string, liked bool) {
	store.eachCopy(workID, func(entity *work.Work) {
		if entity.IsLiked == liked {
			return
		}
		entity.IsLiked = liked
		if liked {
			entity.LikesCount++
		} else if entity.LikesCount > 0 {
			entity.LikesCount--
		}
	})
}

// reconcileLike overwrites cached copies with the server's answer.
// Caller holds the lock.
func (store *WorksStore) reconcileLike(workID string, liked bool, likesCount int) {
	store.eachCopy(workID, func(entity *work.Work) {
		entity.IsLiked = liked
		entity.LikesCount = likesCount
	})
}

// replaceEverywhere swaps the stored record for the updated one in
// every collection holding it. Caller holds the lock.
func (store *WorksStore) replaceEverywhere(updated *work.Work) {
	for _, collection := range store.collections() {
		for index, entity := range *collection {
			if entity.ID == updated.ID {
				(*collection)[index] = updated
			}
		}
	}

	if store.current != nil && store.current.ID == updated.ID {
		store.current = updated
	}
}

// removeEverywhere evicts the record from every collection. Caller
// holds the lock.
func (store *WorksStore) removeEverywhere(workID string) {
	for _, collection := range store.collections() {
		kept := (*collection)[:0]
		for _, entity := range *collection {
			if entity.ID != workID {
				kept = append(kept, entity)
			}
		}
		*collection = kept
	}

	if store.current != nil && store.current.ID == workID {
		store.current = nil
	}
}

// eachCopy runs fn over every cached copy of the work. Caller holds
// the lock.
func (store *WorksStore) eachCopy(workID string, fn func(*work.Work)) {
	for _, collection := range store.collections() {
		for _, entity := range *collection {
			if entity.ID == workID {
				fn(entity)
			}
		}
	}

	if store.current != nil && store.current.ID == workID {
		fn(store.current)
	}
}

// collections lists the slice-valued caches for uniform iteration.
func (store *WorksStore) collections() []*[]*work.Work {
	return []*[]*work.Work{
		&store.trending,
		&store.searchResults,
		&store.userWorks,
		&store.favorites,
	}
}

// snapshot returns a defensive copy of a collection.
func (store *WorksStore) snapshot(collection *[]*work.Work) []*work.Work {
	store.mu.Lock()
	defer store.mu.Unlock()

	copied := make([]*work.Work, len(*collection))
	for index, entity := range *collection {
		copied[index] = cloneWork(entity)
	}
	return copied
}

// cloneWork deep-copies a work record.
func cloneWork(entity *work.Work) *work.Work {
	clone := *entity
	clone.Tags = append([]string(nil), entity.Tags...)
	clone.AssetIDs = append([]string(nil), entity.AssetIDs...)
	return &clone
}
