// Copyright (c) 2026 Creata. All rights reserved.

/*
Package work provides the HTTP interface for discovery and authoring of the catalogue.

It exposes endpoints for browsing trending works, free-text search, favorites,
and full lifecycle management of a user's own works.

# Routing Strategy

  - Discovery (Public): Trending, search, and single-work lookups accept
    anonymous traffic; a valid token enriches results with per-viewer flags.
  - Authoring (Protected): Creation, modification, deletion, and likes
    require an authenticated caller.

The handler translates between the web/JSON layer and the internal domain [Service].
*/
package work

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/creata-app/creata/internal/platform/middleware"
	requestutil "github.com/creata-app/creata/internal/platform/request"
	"github.com/creata-app/creata/internal/platform/respond"
	"github.com/creata-app/creata/internal/platform/sec"
	"github.com/creata-app/creata/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for work discovery and authoring.
type Handler struct {
	service  *Service
	verifier middleware.TokenVerifier
}

// NewHandler constructs a new work [Handler].
func NewHandler(service *Service, verifier middleware.TokenVerifier) *Handler {
	return &Handler{service: service, verifier: verifier}
}

// Routes returns a [chi.Router] configured with the work domain's endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Public Discovery Endpoints
	router.Group(func(public chi.Router) {
		public.Use(middleware.MaybeAuthenticate(handler.verifier))

		public.Get("/trending", handler.listTrending)
		public.Get("/search", handler.search)
		public.Get("/author/{authorID}", handler.listByAuthor)
		public.Get("/{identifier}", handler.getWork)
	})

	// ## Authoring Endpoints (Authenticated)
	router.Group(func(private chi.Router) {
		private.Use(middleware.Authenticate(handler.verifier))

		private.Get("/favorites", handler.listFavorites)
		private.Post("/", handler.createWork)
		private.Patch("/{id}", handler.updateWork)
		private.Delete("/{id}", handler.deleteWork)
		private.Post("/{id}/like", handler.toggleLike)
	})

	return router
}

// # Discovery Endpoints

/*
GET /api/v1/works/trending.

Description: Returns published works ordered by like count. The hottest
endpoint in the API; anonymous responses are served from the Redis cache.

Request:
  - page: int
  - limit: int

Response:
  - 200: []Work: Paginated trending list
*/
func (handler *Handler) listTrending(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	works, total, err := handler.service.ListTrending(request.Context(), viewerID(request), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, emptyIfNil(works), pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
GET /api/v1/works/search.

Description: Case-insensitive substring search over title, description, and
tags of published works. An empty query yields an empty result set.

Request:
  - q: string (Search term)
  - page: int
  - limit: int

Response:
  - 200: []Work: Paginated matches
*/
func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	query := request.URL.Query().Get(FieldQuery)

	works, total, err := handler.service.Search(request.Context(), query, viewerID(request), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, emptyIfNil(works), pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
GET /api/v1/works/author/{authorID}.

Description: Lists every work owned by an author, drafts included.

Request:
  - authorID: string (UUID)

Response:
  - 200: []Work: Paginated author works
  - 400: ErrValidation: Malformed author ID
*/
func (handler *Handler) listByAuthor(writer http.ResponseWriter, request *http.Request) {
	authorID, err := requestutil.ID(request, "authorID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)

	works, total, err := handler.service.ListByAuthor(request.Context(), authorID, viewerID(request), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, emptyIfNil(works), pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
GET /api/v1/works/{identifier}.

Description: Retrieves a single work using either its UUID or unique slug.

Request:
  - identifier: string (UUID or Slug)

Response:
  - 200: Work: Success
  - 404: ErrNotFound: Work not found
*/
func (handler *Handler) getWork(writer http.ResponseWriter, request *http.Request) {
	identifier := requestutil.Param(request, "identifier")

	result, err := handler.service.GetWork(request.Context(), identifier, viewerID(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

/*
GET /api/v1/works/favorites.

Description: Lists the works the authenticated viewer has liked, most
recently liked first.

Response:
  - 200: []Work: Paginated favorites
  - 401: ErrUnauthorized: Missing or invalid token
*/
func (handler *Handler) listFavorites(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)

	works, total, err := handler.service.ListFavorites(request.Context(), claims.UserID, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, emptyIfNil(works), pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

// # Request Payloads

// createWorkRequest defines the inbound JSON schema for work creation.
type createWorkRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	CoverURL    string   `json:"cover_url"`
	Status      Status   `json:"status"`
	Type        Type     `json:"type"`
	Tags        []string `json:"tags"`
}

// # Authoring Endpoints

/*
POST /api/v1/works.

Description: Creates a new work owned by the authenticated caller. Omitted
fields receive the standard creation defaults (draft status, article type,
placeholder cover).

Request (Body):
  - createWorkRequest: JSON object

Response:
  - 201: Work: Created work object
  - 400: ErrInvalidJSON/Validation: Invalid input data
  - 401: ErrUnauthorized: Missing or invalid token
*/
func (handler *Handler) createWork(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createWorkRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	workDto := &Work{
		Title:       input.Title,
		Description: input.Description,
		Content:     input.Content,
		CoverURL:    input.CoverURL,
		Status:      input.Status,
		Type:        input.Type,
		Tags:        input.Tags,
		AuthorID:    claims.UserID,
		Author:      claims.Name,
	}

	if err := handler.service.CreateWork(request.Context(), workDto); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, workDto)
}

/*
PATCH /api/v1/works/{id}.

Description: Applies a partial update to a work. Only fields present in the
body are changed; the caller must own the work or be an admin.

Request:
  - id: string (UUID)
  - body: Update (Partial JSON)

Response:
  - 200: Work: Updated work object
  - 403: ErrForbidden: Caller does not own the work
  - 404: ErrNotFound: Work not found
*/
func (handler *Handler) updateWork(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	workID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var patch Update
	if err := requestutil.DecodeJSON(writer, request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateWork(request.Context(), workID, patch, claims.UserID, isAdmin(claims))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated)
}

/*
DELETE /api/v1/works/{id}.

Description: Permanently removes a work. Deletion is idempotent: removing a
missing work succeeds and reports deleted=false.

Request:
  - id: string (UUID)

Response:
  - 200: {deleted: bool}: Whether a work was actually removed
  - 403: ErrForbidden: Caller does not own the work
*/
func (handler *Handler) deleteWork(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	workID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	removed, err := handler.service.DeleteWork(request.Context(), workID, claims.UserID, isAdmin(claims))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]bool{"deleted": removed})
}

/*
POST /api/v1/works/{id}/like.

Description: Toggles the caller's like on a work. The response carries the
new state so clients can reconcile optimistic updates.

Request:
  - id: string (UUID)

Response:
  - 200: {liked: bool, likes_count: int}: New like state
  - 404: ErrNotFound: Work not found
*/
func (handler *Handler) toggleLike(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	workID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	liked, likesCount, err := handler.service.ToggleLike(request.Context(), workID, claims.UserID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"liked":       liked,
		"likes_count": likesCount,
	})
}

// # Helpers

// viewerID returns the authenticated user's ID, or empty for anonymous requests.
func viewerID(request *http.Request) string {
	if claims := requestutil.Claims(request); claims != nil {
		return claims.UserID
	}
	return ""
}

// isAdmin reports whether the claims carry the admin role.
func isAdmin(claims *sec.AuthClaims) bool {
	return sec.UserRole(claims.Role) == sec.RoleAdmin
}

// emptyIfNil normalizes a nil slice to an empty JSON array.
func emptyIfNil(works []*Work) []*Work {
	if works == nil {
		return []*Work{}
	}
	return works
}
