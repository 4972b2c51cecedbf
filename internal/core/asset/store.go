// Copyright (c) 2026 Creata. All rights reserved.

package asset

import "context"

// # Asset Data Access

// Repository defines the data access contract for the asset domain.
type Repository interface {

	/*
		FindByID returns the asset with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *Asset: The hydrated domain entity
		  - error: dberr.ErrNotFound if missing
	*/
	FindByID(context context.Context, id string) (*Asset, error)

	/*
		FindByIDs returns the assets matching the given IDs.
		Unknown IDs are silently skipped; order follows the input slice.

		Parameters:
		  - context: context.Context
		  - ids: []string (UUIDs)

		Returns:
		  - []*Asset: Matching assets, input order preserved
		  - error: Database retrieval failures
	*/
	FindByIDs(context context.Context, ids []string) ([]*Asset, error)

	/*
		ListByWork returns every asset attached to a work, oldest first.

		Parameters:
		  - context: context.Context
		  - workID: string (UUID)

		Returns:
		  - []*Asset: The work's assets
		  - error: Database retrieval failures
	*/
	ListByWork(context context.Context, workID string) ([]*Asset, error)

	/*
		ListByAuthor returns every asset owned by an author, newest first.

		Parameters:
		  - context: context.Context
		  - authorID: string (UUID)

		Returns:
		  - []*Asset: The author's assets
		  - error: Database retrieval failures
	*/
	ListByAuthor(context context.Context, authorID string) ([]*Asset, error)

	/*
		Search returns assets matching the query with a case-insensitive
		substring match over name, content, and metadata tags. A non-empty
		authorID scopes the search to that author's assets.

		Parameters:
		  - context: context.Context
		  - query: string (Non-empty; the service short-circuits blanks)
		  - authorID: string (UUID, or empty for unscoped)

		Returns:
		  - []*Asset: Matching assets, newest first
		  - error: Database retrieval failures
	*/
	Search(context context.Context, query, authorID string) ([]*Asset, error)

	/*
		Update applies a partial modification and bumps UpdatedAt.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)
		  - patch: Update

		Returns:
		  - *Asset: The entity after the merge
		  - error: dberr.ErrNotFound if missing
	*/
	Update(context context.Context, id string, patch Update) (*Asset, error)

	/*
		Upsert inserts the asset if its ID is new and replaces it otherwise.

		Parameters:
		  - context: context.Context
		  - asset: *Asset (ID and timestamps set by caller)

		Returns:
		  - bool: True when a new row was created, false on replace
		  - error: Storage or constraint failures
	*/
	Upsert(context context.Context, asset *Asset) (bool, error)

	/*
		Delete removes an asset permanently. Deleting a missing asset is
		not an error.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - bool: True if a row was removed
		  - error: Storage failures only
	*/
	Delete(context context.Context, id string) (bool, error)
}
