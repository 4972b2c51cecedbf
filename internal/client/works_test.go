// Copyright (c) 2026 Creata. All rights reserved.

package client_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creata-app/creata/internal/client"
	"github.com/creata-app/creata/internal/core/work"
)

const (
	viewerID = "0191c2f0-4a00-7000-8000-0000000000ee"
	workID   = "0191c2f0-4a00-7000-8000-00000000a001"
)

// newStore builds a works store over the real service and the demo
// fixtures, bound to a signed-in viewer.
func newStore(t *testing.T) *client.WorksStore {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := work.NewService(work.NewMemoryRepository(work.DemoWorks()), logger)

	return client.NewWorksStore(service, viewerID, false)
}

// # Fetching

/*
TestFetchTrending verifies the basic fetch state machine: the collection
is populated, loading clears, and no error is recorded.
*/
func TestFetchTrending(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.FetchTrending(context.Background(), 20, 0))

	trending := store.Trending()
	require.Len(t, trending, 3)
	assert.Equal(t, "Lantern City", trending[0].Title)
	assert.False(t, store.Loading())
	assert.NoError(t, store.Err())
}

/*
TestSearch_Empty verifies an empty query yields an empty collection
rather than the full catalogue.
*/
func TestSearch_Empty(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.Search(context.Background(), "   ", 20, 0))
	assert.Empty(t, store.SearchResults())
}

/*
TestFetchCurrent_Miss verifies a missing work leaves Current nil without
recording an error.
*/
func TestFetchCurrent_Miss(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.FetchCurrent(context.Background(), "no-such-slug"))
	assert.Nil(t, store.Current())
	assert.NoError(t, store.Err())
}

// # Stale Response Discard

// blockingBackend wraps a real backend and parks Search calls on a
// per-query gate, reporting on started when a call has entered the
// backend. The test controls both issue order and completion order.
type blockingBackend struct {
	client.WorksBackend
	mu      sync.Mutex
	started chan string
	gates   map[string]chan struct{}
}

func (backend *blockingBackend) gate(query string) chan struct{} {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	if backend.gates[query] == nil {
		backend.gates[query] = make(chan struct{})
	}
	return backend.gates[query]
}

func (backend *blockingBackend) Search(ctx context.Context, query, viewer string, limit, offset int) ([]*work.Work, int, error) {
	backend.started <- query
	<-backend.gate(query)
	return backend.WorksBackend.Search(ctx, query, viewer, limit, offset)
}

/*
TestSearch_StaleResponseDiscarded reproduces the out-of-order race: an
older search that resolves after a newer one must not clobber the newer
result.
*/
func TestSearch_StaleResponseDiscarded(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := work.NewService(work.NewMemoryRepository(work.DemoWorks()), logger)

	backend := &blockingBackend{
		WorksBackend: service,
		started:      make(chan string),
		gates:        make(map[string]chan struct{}),
	}
	store := client.NewWorksStore(backend, viewerID, false)

	ctx := context.Background()
	var waitGroup sync.WaitGroup

	// First request: "salt" matches The Salt Road. Held in flight.
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		_ = store.Search(ctx, "salt", 20, 0)
	}()
	require.Equal(t, "salt", <-backend.started)

	// Second, newer request: "lantern" matches Lantern City.
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		_ = store.Search(ctx, "lantern", 20, 0)
	}()
	require.Equal(t, "lantern", <-backend.started)

	// Resolve the newer request first, then the stale one.
	close(backend.gate("lantern"))
	close(backend.gate("salt"))
	waitGroup.Wait()

	results := store.SearchResults()
	require.Len(t, results, 1)
	assert.Equal(t, "Lantern City", results[0].Title)
	assert.False(t, store.Loading())
}

// # Optimistic Likes

/*
TestToggleLike_Optimistic verifies the flip lands on every cached copy
and is reconciled with the backend's answer.
*/
func TestToggleLike_Optimistic(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.FetchTrending(ctx, 20, 0))
	require.NoError(t, store.FetchCurrent(ctx, workID))

	before := store.Current()
	require.False(t, before.IsLiked)

	require.NoError(t, store.ToggleLike(ctx, workID))

	after := store.Current()
	assert.True(t, after.IsLiked)
	assert.Equal(t, before.LikesCount+1, after.LikesCount)

	for _, entity := range store.Trending() {
		if entity.ID == workID {
			assert.True(t, entity.IsLiked)
			assert.Equal(t, before.LikesCount+1, entity.LikesCount)
		}
	}

	assert.False(t, store.LikePending(workID))

	// Toggling back restores the original count.
	require.NoError(t, store.ToggleLike(ctx, workID))
	assert.Equal(t, before.LikesCount, store.Current().LikesCount)
	assert.False(t, store.Current().IsLiked)
}

// failingLikeBackend delegates everything except ToggleLike, which
// always fails.
type failingLikeBackend struct {
	client.WorksBackend
}

var errLikeUnavailable = errors.New("like service unavailable")

func (backend *failingLikeBackend) ToggleLike(context.Context, string, string) (bool, int, error) {
	return false, 0, errLikeUnavailable
}

/*
TestToggleLike_RollbackOnFailure verifies the compensating update: a
failed backend call leaves every cached copy exactly as it was found,
and the error is recorded.
*/
func TestToggleLike_RollbackOnFailure(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := work.NewService(work.NewMemoryRepository(work.DemoWorks()), logger)

	store := client.NewWorksStore(&failingLikeBackend{WorksBackend: service}, viewerID, false)
	ctx := context.Background()

	require.NoError(t, store.FetchTrending(ctx, 20, 0))
	require.NoError(t, store.FetchCurrent(ctx, workID))

	before := store.Current()

	err := store.ToggleLike(ctx, workID)
	require.ErrorIs(t, err, errLikeUnavailable)
	assert.ErrorIs(t, store.Err(), errLikeUnavailable)

	after := store.Current()
	assert.Equal(t, before.IsLiked, after.IsLiked)
	assert.Equal(t, before.LikesCount, after.LikesCount)

	for _, entity := range store.Trending() {
		if entity.ID == workID {
			assert.Equal(t, before.LikesCount, entity.LikesCount)
			assert.False(t, entity.IsLiked)
		}
	}

	assert.False(t, store.LikePending(workID))
}

// # Mutations

/*
TestCreateWork verifies creation lands at the head of the viewer's own
works and becomes the detail record.
*/
func TestCreateWork(t *testing.T) {
	store := newStore(t)

	entity := &work.Work{Title: "A Fresh Start"}
	require.NoError(t, store.CreateWork(context.Background(), entity))

	userWorks := store.UserWorks()
	require.NotEmpty(t, userWorks)
	assert.Equal(t, "A Fresh Start", userWorks[0].Title)

	current := store.Current()
	require.NotNil(t, current)
	assert.Equal(t, "A Fresh Start", current.Title)
	assert.Equal(t, viewerID, current.AuthorID)
}

/*
TestUpdateWork_Propagates verifies an update reaches every collection
holding the record.
*/
func TestUpdateWork_Propagates(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := work.NewService(work.NewMemoryRepository(work.DemoWorks()), logger)

	// Admin session so any record can be edited.
	store := client.NewWorksStore(service, viewerID, true)
	ctx := context.Background()

	require.NoError(t, store.FetchTrending(ctx, 20, 0))
	require.NoError(t, store.FetchCurrent(ctx, workID))

	newTitle := "The Salt Road, Revised"
	_, err := store.UpdateWork(ctx, workID, work.Update{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, newTitle, store.Current().Title)

	for _, entity := range store.Trending() {
		if entity.ID == workID {
			assert.Equal(t, newTitle, entity.Title)
		}
	}
}

/*
TestDeleteWork_Evicts verifies deletion removes the record from every
collection and clears a matching detail record.
*/
func TestDeleteWork_Evicts(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := work.NewService(work.NewMemoryRepository(work.DemoWorks()), logger)

	store := client.NewWorksStore(service, viewerID, true)
	ctx := context.Background()

	require.NoError(t, store.FetchTrending(ctx, 20, 0))
	require.NoError(t, store.FetchCurrent(ctx, workID))

	removed, err := store.DeleteWork(ctx, workID)
	require.NoError(t, err)
	assert.True(t, removed)

	assert.Nil(t, store.Current())
	for _, entity := range store.Trending() {
		assert.NotEqual(t, workID, entity.ID)
	}

	// Idempotent: a second delete reports nothing removed.
	removed, err = store.DeleteWork(ctx, workID)
	require.NoError(t, err)
	assert.False(t, removed)
}
