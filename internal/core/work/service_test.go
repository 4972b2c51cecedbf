// Copyright (c) 2026 Creata. All rights reserved.

package work_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creata-app/creata/internal/core/work"
	"github.com/creata-app/creata/internal/platform/apperr"
)

const (
	viewerID = "0191c2f0-4a00-7000-8000-0000000000ee"
	authorID = "0191c2f0-4a00-7000-8000-000000000002"
)

func newService(t *testing.T) *work.Service {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := work.NewMemoryRepository(work.DemoWorks())

	return work.NewService(repo, logger)
}

/*
TestListTrending verifies that only published works appear, ordered by
like count descending.
*/
func TestListTrending(t *testing.T) {
	service := newService(t)

	works, total, err := service.ListTrending(context.Background(), "", 20, 0)
	require.NoError(t, err)

	// The seeded draft must never appear in the feed.
	assert.Equal(t, 3, total)
	require.Len(t, works, 3)

	for i := 1; i < len(works); i++ {
		assert.GreaterOrEqual(t, works[i-1].LikesCount, works[i].LikesCount)
	}

	assert.Equal(t, "Lantern City", works[0].Title)
}

/*
TestSearch covers the free-text discovery rules: empty queries short-circuit,
matching is case-insensitive across title, description, and tags, and drafts
stay hidden.
*/
func TestSearch(t *testing.T) {
	service := newService(t)

	tests := []struct {
		name      string
		query     string
		wantCount int
		wantTitle string
	}{
		{"empty_query", "", 0, ""},
		{"whitespace_query", "   ", 0, ""},
		{"title_substring", "salt", 1, "The Salt Road"},
		{"title_case_insensitive", "LANTERN", 1, "Lantern City"},
		{"description_match", "ring station", 1, "Orbital Gardens"},
		{"tag_match", "worldbuilding", 1, "Orbital Gardens"},
		{"draft_hidden", "second act", 0, ""},
		{"no_match", "zzz-nothing", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			works, total, err := service.Search(context.Background(), tt.query, "", 20, 0)
			require.NoError(t, err)

			assert.Equal(t, tt.wantCount, total)
			assert.Len(t, works, tt.wantCount)

			if tt.wantTitle != "" {
				assert.Equal(t, tt.wantTitle, works[0].Title)
			}
		})
	}
}

/*
TestSearch_ExactID verifies that pasting a work's UUID into the search box
resolves the work directly.
*/
func TestSearch_ExactID(t *testing.T) {
	service := newService(t)

	works, total, err := service.Search(context.Background(), "0191c2f0-4a00-7000-8000-00000000a001", "", 20, 0)
	require.NoError(t, err)

	assert.Equal(t, 1, total)
	require.Len(t, works, 1)
	assert.Equal(t, "The Salt Road", works[0].Title)
}

/*
TestGetWork checks UUID and slug lookup strategies.
*/
func TestGetWork(t *testing.T) {
	service := newService(t)

	byID, err := service.GetWork(context.Background(), "0191c2f0-4a00-7000-8000-00000000a002", "")
	require.NoError(t, err)
	assert.Equal(t, "Lantern City", byID.Title)

	bySlug, err := service.GetWork(context.Background(), "lantern-city", "")
	require.NoError(t, err)
	assert.Equal(t, byID.ID, bySlug.ID)

	_, err = service.GetWork(context.Background(), "no-such-slug", "")
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
}

/*
TestCreateWork verifies the creation defaults: generated identity, draft
status, article type, placeholder cover, zero likes, and equal timestamps.
*/
func TestCreateWork(t *testing.T) {
	service := newService(t)

	created := &work.Work{
		Title:    "New Piece",
		AuthorID: authorID,
		Author:   "Alex Rivera",
	}

	require.NoError(t, service.CreateWork(context.Background(), created))

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "new-piece", created.Slug)
	assert.Equal(t, work.StatusDraft, created.Status)
	assert.Equal(t, work.TypeArticle, created.Type)
	assert.Equal(t, work.DefaultCoverURL, created.CoverURL)
	assert.Zero(t, created.LikesCount)
	assert.False(t, created.IsLiked)
	assert.True(t, created.CreatedAt.Equal(created.UpdatedAt))

	// The new work is immediately retrievable.
	fetched, err := service.GetWork(context.Background(), created.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "New Piece", fetched.Title)
}

/*
TestCreateWork_Validation rejects missing titles and unknown enums.
*/
func TestCreateWork_Validation(t *testing.T) {
	service := newService(t)

	tests := []struct {
		name string
		work *work.Work
	}{
		{"missing_title", &work.Work{AuthorID: authorID}},
		{"bad_status", &work.Work{Title: "x", Status: "archived", AuthorID: authorID}},
		{"bad_type", &work.Work{Title: "x", Type: "podcast", AuthorID: authorID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.CreateWork(context.Background(), tt.work)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
		})
	}
}

/*
TestUpdateWork verifies partial merge semantics: present fields overwrite,
absent fields survive, and UpdatedAt moves forward.
*/
func TestUpdateWork(t *testing.T) {
	service := newService(t)

	before, err := service.GetWork(context.Background(), "0191c2f0-4a00-7000-8000-00000000a001", "")
	require.NoError(t, err)

	newTitle := "The Salt Road, Revised"
	updated, err := service.UpdateWork(context.Background(), before.ID, work.Update{Title: &newTitle}, authorID, false)
	require.NoError(t, err)

	assert.Equal(t, newTitle, updated.Title)
	// Untouched fields are preserved.
	assert.Equal(t, before.Description, updated.Description)
	assert.Equal(t, before.Tags, updated.Tags)
	assert.Equal(t, before.LikesCount, updated.LikesCount)
	assert.True(t, updated.UpdatedAt.After(before.UpdatedAt))
}

/*
TestUpdateWork_Authorization rejects callers who do not own the work,
while admins may edit anything.
*/
func TestUpdateWork_Authorization(t *testing.T) {
	service := newService(t)

	title := "Hijacked"

	_, err := service.UpdateWork(context.Background(), "0191c2f0-4a00-7000-8000-00000000a001", work.Update{Title: &title}, viewerID, false)
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)

	_, err = service.UpdateWork(context.Background(), "0191c2f0-4a00-7000-8000-00000000a001", work.Update{Title: &title}, viewerID, true)
	require.NoError(t, err)
}

/*
TestUpdateWork_NotFound surfaces a 404 for a missing target.
*/
func TestUpdateWork_NotFound(t *testing.T) {
	service := newService(t)

	title := "Ghost"
	_, err := service.UpdateWork(context.Background(), "0191c2f0-4a00-7000-8000-00000000ffff", work.Update{Title: &title}, authorID, true)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

/*
TestDeleteWork verifies idempotent deletion: the first call removes and
reports true, repeat calls succeed and report false.
*/
func TestDeleteWork(t *testing.T) {
	service := newService(t)
	id := "0191c2f0-4a00-7000-8000-00000000a003"

	removed, err := service.DeleteWork(context.Background(), id, authorID, true)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = service.DeleteWork(context.Background(), id, authorID, true)
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = service.GetWork(context.Background(), id, "")
	require.Error(t, err)
}

/*
TestToggleLike verifies the lockstep invariant: the flag and the counter
always move together, and toggling twice restores the original state.
*/
func TestToggleLike(t *testing.T) {
	service := newService(t)
	id := "0191c2f0-4a00-7000-8000-00000000a001"

	before, err := service.GetWork(context.Background(), id, viewerID)
	require.NoError(t, err)
	require.False(t, before.IsLiked)

	liked, count, err := service.ToggleLike(context.Background(), id, viewerID)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, before.LikesCount+1, count)

	// The per-viewer flag is visible on subsequent reads.
	after, err := service.GetWork(context.Background(), id, viewerID)
	require.NoError(t, err)
	assert.True(t, after.IsLiked)

	// A different viewer still sees the work as not liked.
	other, err := service.GetWork(context.Background(), id, authorID)
	require.NoError(t, err)
	assert.False(t, other.IsLiked)

	// Toggling again restores the exact prior state.
	liked, count, err = service.ToggleLike(context.Background(), id, viewerID)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, before.LikesCount, count)
}

/*
TestToggleLike_NotFound rejects likes on missing works.
*/
func TestToggleLike_NotFound(t *testing.T) {
	service := newService(t)

	_, _, err := service.ToggleLike(context.Background(), "0191c2f0-4a00-7000-8000-00000000ffff", viewerID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

/*
TestListFavorites returns liked works, most recently liked first.
*/
func TestListFavorites(t *testing.T) {
	service := newService(t)

	first := "0191c2f0-4a00-7000-8000-00000000a001"
	second := "0191c2f0-4a00-7000-8000-00000000a002"

	_, _, err := service.ToggleLike(context.Background(), first, viewerID)
	require.NoError(t, err)
	_, _, err = service.ToggleLike(context.Background(), second, viewerID)
	require.NoError(t, err)

	favorites, total, err := service.ListFavorites(context.Background(), viewerID, 20, 0)
	require.NoError(t, err)

	assert.Equal(t, 2, total)
	require.Len(t, favorites, 2)
	assert.Equal(t, second, favorites[0].ID)
	assert.Equal(t, first, favorites[1].ID)

	for _, favorite := range favorites {
		assert.True(t, favorite.IsLiked)
	}
}

/*
TestListByAuthor includes drafts for the author's own listing.
*/
func TestListByAuthor(t *testing.T) {
	service := newService(t)

	works, total, err := service.ListByAuthor(context.Background(), authorID, "", 20, 0)
	require.NoError(t, err)

	assert.Equal(t, 3, total)
	require.Len(t, works, 3)

	var foundDraft bool
	for _, entry := range works {
		if entry.Status == work.StatusDraft {
			foundDraft = true
		}
	}
	assert.True(t, foundDraft)
}
