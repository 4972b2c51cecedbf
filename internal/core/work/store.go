// Copyright (c) 2026 Creata. All rights reserved.

package work

import "context"

// # Work Data Access

// Repository defines the data access contract for the work domain.
//
// Every read operation accepts a viewerID so that the per-viewer IsLiked
// flag can be resolved in the same round-trip. An empty viewerID denotes
// an anonymous request and always yields IsLiked = false.
type Repository interface {

	/*
		ListTrending returns published works ordered by like count, descending.

		Parameters:
		  - context: context.Context
		  - viewerID: string (Empty for anonymous viewers)
		  - limit: int
		  - offset: int

		Returns:
		  - []*Work: Slice of published works, most liked first
		  - int: Total count of published works
		  - error: Database retrieval failures
	*/
	ListTrending(context context.Context, viewerID string, limit, offset int) ([]*Work, int, error)

	/*
		Search returns published works whose title, description, or tags
		contain the query as a case-insensitive substring.

		Parameters:
		  - context: context.Context
		  - query: string (Raw search term; never empty, callers short-circuit)
		  - viewerID: string
		  - limit: int
		  - offset: int

		Returns:
		  - []*Work: Matching published works
		  - int: Total count of matches
		  - error: Database retrieval failures
	*/
	Search(context context.Context, query, viewerID string, limit, offset int) ([]*Work, int, error)

	/*
		FindByID returns the work with the given ID, regardless of status.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)
		  - viewerID: string

		Returns:
		  - *Work: The hydrated domain entity
		  - error: dberr.ErrNotFound if missing
	*/
	FindByID(context context.Context, id, viewerID string) (*Work, error)

	/*
		FindBySlug returns the work matching the unique SEO identifier.

		Parameters:
		  - context: context.Context
		  - slug: string
		  - viewerID: string

		Returns:
		  - *Work: The hydrated domain entity
		  - error: dberr.ErrNotFound if missing
	*/
	FindBySlug(context context.Context, slug, viewerID string) (*Work, error)

	/*
		ListByAuthor returns every work owned by an author, drafts included,
		newest first.

		Parameters:
		  - context: context.Context
		  - authorID: string (UUID)
		  - viewerID: string
		  - limit: int
		  - offset: int

		Returns:
		  - []*Work: The author's works
		  - int: Total count
		  - error: Database retrieval failures
	*/
	ListByAuthor(context context.Context, authorID, viewerID string, limit, offset int) ([]*Work, int, error)

	/*
		ListFavorites returns the works a viewer has liked, most recently
		liked first.

		Parameters:
		  - context: context.Context
		  - viewerID: string (UUID, never empty)
		  - limit: int
		  - offset: int

		Returns:
		  - []*Work: Liked works with IsLiked always true
		  - int: Total count
		  - error: Database retrieval failures
	*/
	ListFavorites(context context.Context, viewerID string, limit, offset int) ([]*Work, int, error)

	/*
		Create persists a new work to the store.

		Parameters:
		  - context: context.Context
		  - work: *Work (Fully defaulted entity; ID and timestamps set by caller)

		Returns:
		  - error: Storage or constraint failures
	*/
	Create(context context.Context, work *Work) error

	/*
		Update applies a partial modification and bumps UpdatedAt.
		Nil fields in the patch are left untouched.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)
		  - patch: Update

		Returns:
		  - *Work: The entity after the merge
		  - error: dberr.ErrNotFound if the target row does not exist
	*/
	Update(context context.Context, id string, patch Update) (*Work, error)

	/*
		Delete removes a work permanently. Deleting a missing work is not
		an error.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - bool: True if a row was removed, false if nothing existed
		  - error: Storage failures only
	*/
	Delete(context context.Context, id string) (bool, error)

	/*
		ToggleLike atomically flips the viewer's like on a work.
		The like count and the per-viewer flag always move in lockstep:
		liking adds exactly one, unliking removes exactly one.

		Parameters:
		  - context: context.Context
		  - workID: string (UUID)
		  - viewerID: string (UUID, never empty)

		Returns:
		  - bool: The new liked state
		  - int: The new total like count
		  - error: dberr.ErrNotFound if the work does not exist
	*/
	ToggleLike(context context.Context, workID, viewerID string) (bool, int, error)
}
