// Copyright (c) 2026 Creata. All rights reserved.

package work

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/creata-app/creata/internal/platform/apperr"
	"github.com/creata-app/creata/internal/platform/validate"
	"github.com/creata-app/creata/pkg/slug"
	"github.com/creata-app/creata/pkg/uuidv7"
)

// # Service Layer

// Service orchestrates the business logic for the work catalogue.
// It acts as the primary entry point for browsing and authoring works.
type Service struct {
	workRepo Repository
	logger   *slog.Logger
}

// NewService constructs a new [Service] with its required repositories.
func NewService(workRepo Repository, logger *slog.Logger) *Service {
	return &Service{
		workRepo: workRepo,
		logger:   logger,
	}
}

// # Discovery

/*
ListTrending retrieves the most liked published works.

Description: The canonical landing feed. Only published works participate,
ordered strictly by like count so the ranking is stable and explainable.

Parameters:
  - context: context.Context
  - viewerID: string (Empty for anonymous viewers)
  - limit: int
  - offset: int

Returns:
  - []*Work: Slice of published works, most liked first
  - int: Total count for pagination metadata
  - error: Repository level errors
*/
func (service *Service) ListTrending(context context.Context, viewerID string, limit, offset int) ([]*Work, int, error) {
	return service.workRepo.ListTrending(context, viewerID, limit, offset)
}

/*
Search performs free-text discovery over the published catalogue.

Description: Matches the query as a case-insensitive substring against
titles, descriptions, and tags. An empty or whitespace-only query returns
an empty result without touching the store.

Parameters:
  - context: context.Context
  - query: string (Raw user input)
  - viewerID: string
  - limit: int
  - offset: int

Returns:
  - []*Work: Matching published works
  - int: Total match count
  - error: Repository level errors
*/
func (service *Service) Search(context context.Context, query, viewerID string, limit, offset int) ([]*Work, int, error) {
	if strings.TrimSpace(query) == "" {
		return []*Work{}, 0, nil
	}

	return service.workRepo.Search(context, query, viewerID, limit, offset)
}

/*
GetWork fetches a single work by UUID or SEO slug.

Description: The service determines the lookup strategy from the identifier
format. UUID-shaped identifiers use a primary key lookup; everything else
resolves via the unique URL slug.

Parameters:
  - context: context.Context
  - identifier: string (UUID or slug)
  - viewerID: string

Returns:
  - *Work: The hydrated domain entity
  - error: NotFound if no match exists
*/
func (service *Service) GetWork(context context.Context, identifier, viewerID string) (*Work, error) {
	if isUUID(identifier) {
		return service.workRepo.FindByID(context, identifier, viewerID)
	}

	return service.workRepo.FindBySlug(context, identifier, viewerID)
}

/*
ListByAuthor retrieves every work owned by an author, drafts included.

Parameters:
  - context: context.Context
  - authorID: string (UUID)
  - viewerID: string
  - limit: int
  - offset: int

Returns:
  - []*Work: The author's works, newest first
  - int: Total count
  - error: Repository level errors
*/
func (service *Service) ListByAuthor(context context.Context, authorID, viewerID string, limit, offset int) ([]*Work, int, error) {
	return service.workRepo.ListByAuthor(context, authorID, viewerID, limit, offset)
}

/*
ListFavorites retrieves the works a viewer has liked.

Parameters:
  - context: context.Context
  - viewerID: string (UUID)
  - limit: int
  - offset: int

Returns:
  - []*Work: Liked works, most recently liked first
  - int: Total count
  - error: Repository level errors
*/
func (service *Service) ListFavorites(context context.Context, viewerID string, limit, offset int) ([]*Work, int, error) {
	return service.workRepo.ListFavorites(context, viewerID, limit, offset)
}

// # Authoring

/*
CreateWork initialises a new work in the catalogue.

Description: Applies the creation defaults before persisting: a UUID v7
identity, a slug derived from the title, draft status, the placeholder
cover, the article type, a zero like count, and equal creation and update
timestamps.

Parameters:
  - context: context.Context
  - work: *Work (Title plus any explicitly provided attributes)

Returns:
  - error: Validation or persistence errors
*/
func (service *Service) CreateWork(context context.Context, work *Work) error {

	validator := validate.New()
	validator.Required(FieldTitle, work.Title).MaxLen(FieldTitle, work.Title, 200)
	validator.MaxLen(FieldDescription, work.Description, 2000)

	if work.Status != "" {
		validator.OneOf(FieldStatus, string(work.Status), string(StatusDraft), string(StatusPublished))
	}
	if work.Type != "" {
		validator.Custom(FieldType, !work.Type.IsValid(), "Unknown work type")
	}

	if err := validator.Err(); err != nil {
		return err
	}

	// Creation defaults
	now := time.Now().UTC()

	if work.ID == "" {
		work.ID = uuidv7.Must()
	}
	if work.Slug == "" {
		work.Slug = slug.From(work.Title)
	}
	if work.Status == "" {
		work.Status = StatusDraft
	}
	if work.Type == "" {
		work.Type = DefaultType
	}
	if work.CoverURL == "" {
		work.CoverURL = DefaultCoverURL
	}

	work.LikesCount = 0
	work.IsLiked = false
	work.CreatedAt = now
	work.UpdatedAt = now

	if err := service.workRepo.Create(context, work); err != nil {
		return err
	}

	service.logger.Info("work_created",
		slog.String("work_id", work.ID),
		slog.String("author_id", work.AuthorID),
		slog.String("title", work.Title),
	)

	return nil
}

/*
UpdateWork applies a partial modification to an existing work.

Description: Only the author or an admin may modify a work. Fields absent
from the patch are left untouched; UpdatedAt is always bumped by the store.

Parameters:
  - context: context.Context
  - id: string (UUID)
  - patch: Update
  - actorID: string (The authenticated caller)
  - admin: bool (True when the caller holds the admin role)

Returns:
  - *Work: The entity after the merge
  - error: NotFound, Forbidden, validation, or persistence errors
*/
func (service *Service) UpdateWork(context context.Context, id string, patch Update, actorID string, admin bool) (*Work, error) {

	validator := validate.New()
	if patch.Title != nil {
		validator.Required(FieldTitle, *patch.Title).MaxLen(FieldTitle, *patch.Title, 200)
	}
	if patch.Description != nil {
		validator.MaxLen(FieldDescription, *patch.Description, 2000)
	}
	if patch.Status != nil {
		validator.OneOf(FieldStatus, string(*patch.Status), string(StatusDraft), string(StatusPublished))
	}
	if patch.Type != nil {
		validator.Custom(FieldType, !patch.Type.IsValid(), "Unknown work type")
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.authorize(context, id, actorID, admin); err != nil {
		return nil, err
	}

	updated, err := service.workRepo.Update(context, id, patch)
	if err != nil {
		return nil, err
	}

	service.logger.Info("work_updated", slog.String("work_id", id))

	return updated, nil
}

/*
DeleteWork removes a work permanently.

Description: Deletion is idempotent. Removing a work that does not exist
succeeds and reports false; ownership is only enforced when the work exists.

Parameters:
  - context: context.Context
  - id: string (UUID)
  - actorID: string
  - admin: bool

Returns:
  - bool: True if a work was actually removed
  - error: Forbidden or persistence errors
*/
func (service *Service) DeleteWork(context context.Context, id, actorID string, admin bool) (bool, error) {

	if err := service.authorize(context, id, actorID, admin); err != nil {
		if apperr.As(err) != nil && apperr.As(err).HTTPStatus == 404 {
			// Idempotent: deleting a missing work is a no-op, not a failure.
			return false, nil
		}
		return false, err
	}

	removed, err := service.workRepo.Delete(context, id)
	if err != nil {
		return false, err
	}

	if removed {
		service.logger.Warn("work_deleted", slog.String("work_id", id))
	}

	return removed, nil
}

/*
ToggleLike flips the viewer's like on a work.

Description: The like count and the viewer's flag always move together.
Toggling twice restores the exact prior state.

Parameters:
  - context: context.Context
  - workID: string (UUID)
  - viewerID: string (UUID)

Returns:
  - bool: The new liked state
  - int: The new total like count
  - error: NotFound or persistence errors
*/
func (service *Service) ToggleLike(context context.Context, workID, viewerID string) (bool, int, error) {
	liked, likesCount, err := service.workRepo.ToggleLike(context, workID, viewerID)
	if err != nil {
		return false, 0, err
	}

	service.logger.Info("work_like_toggled",
		slog.String("work_id", workID),
		slog.String("viewer_id", viewerID),
		slog.Bool("liked", liked),
	)

	return liked, likesCount, nil
}

// # Internal Helpers

// authorize verifies that the actor owns the work or is an admin.
func (service *Service) authorize(context context.Context, workID, actorID string, admin bool) error {
	if admin {
		return nil
	}

	existing, err := service.workRepo.FindByID(context, workID, "")
	if err != nil {
		return err
	}

	if existing.AuthorID != actorID {
		return apperr.Forbidden("You do not own this work")
	}

	return nil
}

// isUUID returns true if the string matches the standard UUID length.
func isUUID(s string) bool {
	return len(s) == 36
}
