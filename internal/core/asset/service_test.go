// Copyright (c) 2026 Creata. All rights reserved.

package asset_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creata-app/creata/internal/core/asset"
	"github.com/creata-app/creata/internal/platform/apperr"
	"github.com/creata-app/creata/pkg/pointer"
)

const (
	assetA    = "0191c2f0-4a00-7000-8000-00000000b001"
	assetB    = "0191c2f0-4a00-7000-8000-00000000b002"
	assetC    = "0191c2f0-4a00-7000-8000-00000000b003"
	workID    = "0191c2f0-4a00-7000-8000-00000000a001"
	authorOne = "0191c2f0-4a00-7000-8000-000000000002"
	authorTwo = "0191c2f0-4a00-7000-8000-000000000003"
)

// graphSeeds builds a small cyclic asset graph: A -> B -> C -> A, with C
// also pointing at itself. A and B belong to authorOne, C to authorTwo.
func graphSeeds() []*asset.Asset {
	seededAt := time.Date(2026, time.January, 12, 10, 0, 0, 0, time.UTC)

	return []*asset.Asset{
		{
			ID:            assetA,
			AuthorID:      authorOne,
			Name:          "Protagonist",
			Type:          asset.TypeCharacter,
			WorkID:        pointer.To(workID),
			RelatedAssets: []string{assetB},
			Metadata: &asset.Metadata{
				Age:    "27",
				Gender: "female",
				Tags:   []string{"lead"},
				Extra:  map[string]string{"voice": "alto"},
			},
			CreatedAt: seededAt,
			UpdatedAt: seededAt,
		},
		{
			ID:            assetB,
			AuthorID:      authorOne,
			Name:          "Harbor District",
			Type:          asset.TypeSetting,
			WorkID:        pointer.To(workID),
			Content:       "The drowned quarter where the caravans resupply.",
			RelatedAssets: []string{assetC},
			CreatedAt:     seededAt.Add(time.Hour),
			UpdatedAt:     seededAt.Add(time.Hour),
		},
		{
			ID:            assetC,
			AuthorID:      authorTwo,
			Name:          "Opening Scene",
			Type:          asset.TypeText,
			Content:       "The brine wind came in before dawn.",
			RelatedAssets: []string{assetA, assetC},
			CreatedAt:     seededAt.Add(2 * time.Hour),
			UpdatedAt:     seededAt.Add(2 * time.Hour),
		},
	}
}

func newService(t *testing.T) *asset.Service {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := asset.NewMemoryRepository(graphSeeds())

	return asset.NewService(repo, logger)
}

/*
TestGetAsset verifies single lookups including the structured metadata.
*/
func TestGetAsset(t *testing.T) {
	service := newService(t)

	found, err := service.GetAsset(context.Background(), assetA)
	require.NoError(t, err)

	assert.Equal(t, "Protagonist", found.Name)
	require.NotNil(t, found.Metadata)
	assert.Equal(t, "27", found.Metadata.Age)
	assert.Equal(t, "alto", found.Metadata.Extra["voice"])

	_, err = service.GetAsset(context.Background(), "0191c2f0-4a00-7000-8000-00000000ffff")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

/*
TestGetAssets verifies batch lookup order and silent skipping of unknown IDs.
*/
func TestGetAssets(t *testing.T) {
	service := newService(t)

	assets, err := service.GetAssets(context.Background(), []string{assetC, "0191c2f0-4a00-7000-8000-00000000ffff", assetA})
	require.NoError(t, err)

	require.Len(t, assets, 2)
	assert.Equal(t, assetC, assets[0].ID)
	assert.Equal(t, assetA, assets[1].ID)

	empty, err := service.GetAssets(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

/*
TestListByWork returns only assets attached to the given work.
*/
func TestListByWork(t *testing.T) {
	service := newService(t)

	assets, err := service.ListByWork(context.Background(), workID)
	require.NoError(t, err)

	require.Len(t, assets, 2)
	assert.Equal(t, assetA, assets[0].ID)
	assert.Equal(t, assetB, assets[1].ID)
}

/*
TestListRelated walks the cyclic graph and terminates, returning each
reachable asset exactly once and excluding the starting asset.
*/
func TestListRelated(t *testing.T) {
	service := newService(t)

	related, err := service.ListRelated(context.Background(), assetA)
	require.NoError(t, err)

	require.Len(t, related, 2)

	ids := []string{related[0].ID, related[1].ID}
	assert.Contains(t, ids, assetB)
	assert.Contains(t, ids, assetC)
	assert.NotContains(t, ids, assetA)
}

/*
TestUpsertAsset_Create verifies identity generation and timestamps for
new assets.
*/
func TestUpsertAsset_Create(t *testing.T) {
	service := newService(t)

	fresh := &asset.Asset{
		Name: "Theme Sketch",
		Type: asset.TypeIdea,
	}

	created, err := service.UpsertAsset(context.Background(), fresh)
	require.NoError(t, err)

	assert.True(t, created)
	assert.NotEmpty(t, fresh.ID)
	assert.False(t, fresh.CreatedAt.IsZero())
	assert.True(t, fresh.CreatedAt.Equal(fresh.UpdatedAt))

	fetched, err := service.GetAsset(context.Background(), fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, "Theme Sketch", fetched.Name)
}

/*
TestUpsertAsset_Replace verifies that a known ID replaces the stored asset
and bumps UpdatedAt.
*/
func TestUpsertAsset_Replace(t *testing.T) {
	service := newService(t)

	before, err := service.GetAsset(context.Background(), assetB)
	require.NoError(t, err)

	replacement := &asset.Asset{
		ID:        assetB,
		Name:      "Harbor District at Dusk",
		Type:      asset.TypeSetting,
		CreatedAt: before.CreatedAt,
	}

	created, err := service.UpsertAsset(context.Background(), replacement)
	require.NoError(t, err)
	assert.False(t, created)

	after, err := service.GetAsset(context.Background(), assetB)
	require.NoError(t, err)
	assert.Equal(t, "Harbor District at Dusk", after.Name)
	// Replacement is wholesale: the old related edges are gone.
	assert.Empty(t, after.RelatedAssets)
}

/*
TestUpsertAsset_Validation rejects unknown types, malformed release kinds,
and malformed IDs.
*/
func TestUpsertAsset_Validation(t *testing.T) {
	service := newService(t)

	badKind := asset.ReleaseKind("season")

	tests := []struct {
		name  string
		asset *asset.Asset
	}{
		{"bad_type", &asset.Asset{Name: "x", Type: "video"}},
		{"bad_release_kind", &asset.Asset{Name: "x", Type: asset.TypeText, ReleaseKind: &badKind}},
		{"bad_id", &asset.Asset{ID: "not-a-uuid", Name: "x", Type: asset.TypeText}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.UpsertAsset(context.Background(), tt.asset)
			require.Error(t, err)
			assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
		})
	}
}

/*
TestCreateAsset_Defaults verifies that an empty submission becomes an
untitled idea with the chapter release kind.
*/
func TestCreateAsset_Defaults(t *testing.T) {
	service := newService(t)

	blank := &asset.Asset{AuthorID: authorOne}

	err := service.CreateAsset(context.Background(), blank)
	require.NoError(t, err)

	require.NotEmpty(t, blank.ID)

	fetched, err := service.GetAsset(context.Background(), blank.ID)
	require.NoError(t, err)

	assert.Equal(t, asset.DefaultName, fetched.Name)
	assert.Equal(t, asset.TypeIdea, fetched.Type)
	require.NotNil(t, fetched.ReleaseKind)
	assert.Equal(t, asset.ReleaseChapter, *fetched.ReleaseKind)
	assert.Nil(t, fetched.Metadata)
	assert.False(t, fetched.CreatedAt.IsZero())
}

/*
TestListByAuthor returns an author's assets newest first and nothing else.
*/
func TestListByAuthor(t *testing.T) {
	service := newService(t)

	assets, err := service.ListByAuthor(context.Background(), authorOne)
	require.NoError(t, err)

	require.Len(t, assets, 2)
	assert.Equal(t, assetB, assets[0].ID)
	assert.Equal(t, assetA, assets[1].ID)

	none, err := service.ListByAuthor(context.Background(), "0191c2f0-4a00-7000-8000-00000000ffff")
	require.NoError(t, err)
	assert.Empty(t, none)
}

/*
TestSearch covers name, content, and metadata tag matching plus author
scoping. A blank query returns an empty list without touching the store.
*/
func TestSearch(t *testing.T) {
	service := newService(t)

	tests := []struct {
		name     string
		query    string
		authorID string
		wantIDs  []string
	}{
		{"by_name", "harbor", "", []string{assetB}},
		{"by_content", "brine wind", "", []string{assetC}},
		{"by_metadata_tag", "lead", "", []string{assetA}},
		{"author_scoped_hit", "harbor", authorOne, []string{assetB}},
		{"author_scoped_miss", "brine", authorOne, nil},
		{"blank_query", "   ", "", nil},
		{"no_match", "volcano", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assets, err := service.Search(context.Background(), tt.query, tt.authorID)
			require.NoError(t, err)

			require.Len(t, assets, len(tt.wantIDs))
			for index, wantID := range tt.wantIDs {
				assert.Equal(t, wantID, assets[index].ID)
			}
		})
	}
}

/*
TestUpdateAsset verifies the partial merge: provided fields change, absent
fields survive, and UpdatedAt moves forward.
*/
func TestUpdateAsset(t *testing.T) {
	service := newService(t)

	newName := "Mara Voss"
	newContent := "Caravan navigator. Reads salt currents like star charts."

	updated, err := service.UpdateAsset(context.Background(), assetA, asset.Update{
		Name:    &newName,
		Content: &newContent,
	})
	require.NoError(t, err)

	assert.Equal(t, "Mara Voss", updated.Name)
	assert.Equal(t, newContent, updated.Content)
	// Untouched fields survive the merge.
	assert.Equal(t, asset.TypeCharacter, updated.Type)
	require.NotNil(t, updated.Metadata)
	assert.Equal(t, "27", updated.Metadata.Age)
	assert.Equal(t, []string{assetB}, updated.RelatedAssets)
}

/*
TestUpdateAsset_Validation rejects blank names, unknown types, and unknown
release kinds on the patch itself; a well-formed patch for a missing asset
yields NotFound.
*/
func TestUpdateAsset_Validation(t *testing.T) {
	service := newService(t)

	blankName := "  "
	badType := asset.Type("video")
	badKind := asset.ReleaseKind("season")

	tests := []struct {
		name     string
		id       string
		patch    asset.Update
		wantCode string
	}{
		{"blank_name", assetA, asset.Update{Name: &blankName}, "VALIDATION_ERROR"},
		{"bad_type", assetA, asset.Update{Type: &badType}, "VALIDATION_ERROR"},
		{"bad_release_kind", assetA, asset.Update{ReleaseKind: &badKind}, "VALIDATION_ERROR"},
		{"missing_asset", "0191c2f0-4a00-7000-8000-00000000ffff", asset.Update{}, "NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.UpdateAsset(context.Background(), tt.id, tt.patch)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, apperr.As(err).Code)
		})
	}
}

/*
TestDeleteAsset verifies idempotent deletion.
*/
func TestDeleteAsset(t *testing.T) {
	service := newService(t)

	removed, err := service.DeleteAsset(context.Background(), assetC)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = service.DeleteAsset(context.Background(), assetC)
	require.NoError(t, err)
	assert.False(t, removed)
}
