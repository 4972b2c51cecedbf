// Copyright (c) 2026 Creata. All rights reserved.

package asset

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/creata-app/creata/internal/platform/validate"
	"github.com/creata-app/creata/pkg/uuidv7"
)

// # Service Layer

// Service orchestrates the business logic for asset management.
type Service struct {
	assetRepo Repository
	logger    *slog.Logger
}

// NewService constructs a new [Service].
func NewService(assetRepo Repository, logger *slog.Logger) *Service {
	return &Service{
		assetRepo: assetRepo,
		logger:    logger,
	}
}

// # Lookups

// GetAsset fetches a single asset by ID.
func (service *Service) GetAsset(context context.Context, id string) (*Asset, error) {
	return service.assetRepo.FindByID(context, id)
}

// GetAssets fetches a batch of assets. Unknown IDs are skipped silently,
// so the result may be shorter than the input.
func (service *Service) GetAssets(context context.Context, ids []string) ([]*Asset, error) {
	if len(ids) == 0 {
		return []*Asset{}, nil
	}

	return service.assetRepo.FindByIDs(context, ids)
}

// ListByWork returns every asset attached to a work, oldest first.
func (service *Service) ListByWork(context context.Context, workID string) ([]*Asset, error) {
	return service.assetRepo.ListByWork(context, workID)
}

// ListByAuthor returns every asset owned by an author, newest first.
func (service *Service) ListByAuthor(context context.Context, authorID string) ([]*Asset, error) {
	assets, err := service.assetRepo.ListByAuthor(context, authorID)
	if err != nil {
		return nil, err
	}
	if assets == nil {
		assets = []*Asset{}
	}
	return assets, nil
}

// Search matches assets by name, content, or metadata tags. A blank
// query returns an empty result; a non-empty authorID scopes the search.
func (service *Service) Search(context context.Context, query, authorID string) ([]*Asset, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return []*Asset{}, nil
	}

	assets, err := service.assetRepo.Search(context, trimmed, authorID)
	if err != nil {
		return nil, err
	}
	if assets == nil {
		assets = []*Asset{}
	}
	return assets, nil
}

/*
ListRelated walks the asset graph from a starting asset and returns every
reachable asset.

Description: RelatedAssets edges form an unconstrained directed graph,
so cycles and self-references are legal. A breadth-first walk with a
visited set guarantees termination and returns each asset at most once.
The starting asset itself is excluded from the result.

Parameters:
  - context: context.Context
  - id: string (UUID of the starting asset)

Returns:
  - []*Asset: Reachable assets in breadth-first discovery order
  - error: NotFound if the starting asset is missing
*/
func (service *Service) ListRelated(context context.Context, id string) ([]*Asset, error) {
	start, err := service.assetRepo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	visited := map[string]bool{start.ID: true}
	frontier := append([]string(nil), start.RelatedAssets...)

	var related []*Asset

	for len(frontier) > 0 {
		var next []string
		for _, edgeID := range frontier {
			if visited[edgeID] {
				continue
			}
			visited[edgeID] = true
			next = append(next, edgeID)
		}

		if len(next) == 0 {
			break
		}

		batch, err := service.assetRepo.FindByIDs(context, next)
		if err != nil {
			return nil, err
		}

		frontier = frontier[:0]
		for _, entry := range batch {
			related = append(related, entry)
			frontier = append(frontier, entry.RelatedAssets...)
		}
	}

	if related == nil {
		related = []*Asset{}
	}

	return related, nil
}

// # Mutations

// applyCreationDefaults fills the fields a caller may legally omit.
func applyCreationDefaults(asset *Asset) {
	if strings.TrimSpace(asset.Name) == "" {
		asset.Name = DefaultName
	}
	if asset.Type == "" {
		asset.Type = DefaultType
	}
	if asset.ReleaseKind == nil {
		kind := DefaultReleaseKind
		asset.ReleaseKind = &kind
	}
}

/*
CreateAsset persists a brand new asset with the creation defaults.

Description: Omitted fields receive defaults: the untitled name, the
idea type, and the chapter release kind. Metadata stays empty unless
provided. The ID is always generated server side.

Parameters:
  - context: context.Context
  - asset: *Asset (ID ignored; AuthorID set by the caller's identity)

Returns:
  - error: Validation or persistence errors
*/
func (service *Service) CreateAsset(context context.Context, asset *Asset) error {

	applyCreationDefaults(asset)

	validator := validate.New()
	validator.MaxLen(FieldName, asset.Name, 200)
	validator.Custom(FieldType, !asset.Type.IsValid(), "Unknown asset type")
	if asset.ReleaseKind != nil {
		validator.Custom(FieldReleaseKind, !asset.ReleaseKind.IsValid(), "Unknown release kind")
	}
	if err := validator.Err(); err != nil {
		return err
	}

	now := time.Now().UTC()
	asset.ID = uuidv7.Must()
	asset.CreatedAt = now
	asset.UpdatedAt = now

	if _, err := service.assetRepo.Upsert(context, asset); err != nil {
		return err
	}

	service.logger.Info("asset_created",
		slog.String("asset_id", asset.ID),
		slog.String("type", string(asset.Type)),
	)

	return nil
}

/*
UpdateAsset applies a partial modification to an asset.

Parameters:
  - context: context.Context
  - id: string (UUID)
  - patch: Update (Only non-nil fields are touched)

Returns:
  - *Asset: The entity after the merge
  - error: NotFound, validation, or persistence errors
*/
func (service *Service) UpdateAsset(context context.Context, id string, patch Update) (*Asset, error) {

	validator := validate.New()
	validator.UUID(FieldID, id)
	if patch.Name != nil {
		validator.Required(FieldName, *patch.Name).MaxLen(FieldName, *patch.Name, 200)
	}
	if patch.Type != nil {
		validator.Custom(FieldType, !patch.Type.IsValid(), "Unknown asset type")
	}
	if patch.ReleaseKind != nil {
		validator.Custom(FieldReleaseKind, !patch.ReleaseKind.IsValid(), "Unknown release kind")
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	updated, err := service.assetRepo.Update(context, id, patch)
	if err != nil {
		return nil, err
	}

	service.logger.Info("asset_updated", slog.String("asset_id", id))

	return updated, nil
}

/*
UpsertAsset creates or replaces an asset.

Description: An empty ID means "create": a UUID v7 identity is generated
and both timestamps are set to now. A known ID replaces the stored asset
wholesale and bumps UpdatedAt; an unknown non-empty ID is treated as a
create with the caller's identity.

Parameters:
  - context: context.Context
  - asset: *Asset

Returns:
  - bool: True when a new asset was created
  - error: Validation or persistence errors
*/
func (service *Service) UpsertAsset(context context.Context, asset *Asset) (bool, error) {

	applyCreationDefaults(asset)

	validator := validate.New()
	validator.MaxLen(FieldName, asset.Name, 200)
	validator.Custom(FieldType, !asset.Type.IsValid(), "Unknown asset type")
	validator.Custom(FieldReleaseKind, !asset.ReleaseKind.IsValid(), "Unknown release kind")
	if asset.ID != "" {
		validator.UUID(FieldID, asset.ID)
	}

	if err := validator.Err(); err != nil {
		return false, err
	}

	now := time.Now().UTC()

	if asset.ID == "" {
		asset.ID = uuidv7.Must()
		asset.CreatedAt = now
	}
	if asset.CreatedAt.IsZero() {
		asset.CreatedAt = now
	}
	asset.UpdatedAt = now

	created, err := service.assetRepo.Upsert(context, asset)
	if err != nil {
		return false, err
	}

	event := "asset_updated"
	if created {
		event = "asset_created"
	}
	service.logger.Info(event,
		slog.String("asset_id", asset.ID),
		slog.String("type", string(asset.Type)),
	)

	return created, nil
}

// DeleteAsset removes an asset. Removing a missing asset succeeds and
// reports false.
func (service *Service) DeleteAsset(context context.Context, id string) (bool, error) {
	removed, err := service.assetRepo.Delete(context, id)
	if err != nil {
		return false, err
	}

	if removed {
		service.logger.Warn("asset_deleted", slog.String("asset_id", id))
	}

	return removed, nil
}
