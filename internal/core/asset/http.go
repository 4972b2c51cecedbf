// Copyright (c) 2026 Creata. All rights reserved.

/*
Package asset provides the HTTP interface for managing the building blocks
of works.

All asset endpoints require authentication: assets are authoring material,
never public catalogue content.
*/
package asset

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/creata-app/creata/internal/platform/middleware"
	requestutil "github.com/creata-app/creata/internal/platform/request"
	"github.com/creata-app/creata/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for asset management.
type Handler struct {
	service  *Service
	verifier middleware.TokenVerifier
}

// NewHandler constructs a new asset [Handler].
func NewHandler(service *Service, verifier middleware.TokenVerifier) *Handler {
	return &Handler{service: service, verifier: verifier}
}

// Routes returns a [chi.Router] configured with the asset domain's endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.Authenticate(handler.verifier))

	router.Post("/", handler.upsertAsset)
	router.Post("/batch", handler.getAssets)
	router.Get("/search", handler.search)
	router.Get("/work/{workID}", handler.listByWork)
	router.Get("/author/{authorID}", handler.listByAuthor)
	router.Get("/{id}", handler.getAsset)
	router.Get("/{id}/related", handler.listRelated)
	router.Patch("/{id}", handler.updateAsset)
	router.Delete("/{id}", handler.deleteAsset)

	return router
}

// # Endpoints

/*
GET /api/v1/assets/{id}.

Response:
  - 200: Asset: Success
  - 404: ErrNotFound: Asset not found
*/
func (handler *Handler) getAsset(writer http.ResponseWriter, request *http.Request) {
	assetID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	found, err := handler.service.GetAsset(request.Context(), assetID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, found)
}

// batchRequest carries the ID list for a batch asset lookup.
type batchRequest struct {
	IDs []string `json:"ids"`
}

/*
POST /api/v1/assets/batch.

Description: Resolves a list of asset IDs in one round-trip. Unknown IDs
are skipped, so the response may be shorter than the request.

Request (Body):
  - ids: []string (UUIDs)

Response:
  - 200: []Asset: Matching assets in request order
*/
func (handler *Handler) getAssets(writer http.ResponseWriter, request *http.Request) {
	var input batchRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	assets, err := handler.service.GetAssets(request.Context(), input.IDs)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, assets)
}

/*
GET /api/v1/assets/work/{workID}.

Response:
  - 200: []Asset: Every asset attached to the work, oldest first
*/
func (handler *Handler) listByWork(writer http.ResponseWriter, request *http.Request) {
	workID, err := requestutil.ID(request, "workID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	assets, err := handler.service.ListByWork(request.Context(), workID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if assets == nil {
		assets = []*Asset{}
	}

	respond.OK(writer, assets)
}

/*
GET /api/v1/assets/search?q=dragon&author_id={uuid}.

Description: Case-insensitive substring search over asset names, content,
and metadata tags. An empty query returns an empty list; the optional
author_id parameter scopes the search to one author's material.

Response:
  - 200: []Asset: Matching assets, newest first
*/
func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query().Get(FieldQuery)
	authorID := request.URL.Query().Get("author_id")

	assets, err := handler.service.Search(request.Context(), query, authorID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, assets)
}

/*
GET /api/v1/assets/author/{authorID}.

Response:
  - 200: []Asset: Every asset owned by the author, newest first
*/
func (handler *Handler) listByAuthor(writer http.ResponseWriter, request *http.Request) {
	authorID, err := requestutil.ID(request, "authorID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	assets, err := handler.service.ListByAuthor(request.Context(), authorID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, assets)
}

/*
GET /api/v1/assets/{id}/related.

Description: Walks the related-asset graph breadth-first and returns every
reachable asset. Safe on cyclic graphs.

Response:
  - 200: []Asset: Reachable assets
  - 404: ErrNotFound: Starting asset not found
*/
func (handler *Handler) listRelated(writer http.ResponseWriter, request *http.Request) {
	assetID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	related, err := handler.service.ListRelated(request.Context(), assetID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, related)
}

/*
POST /api/v1/assets.

Description: Creates or replaces an asset. Omit the ID to create; provide
an existing ID to replace the stored asset wholesale.

Request (Body):
  - Asset: JSON object

Response:
  - 201: Asset: A new asset was created
  - 200: Asset: An existing asset was replaced
  - 400: ErrInvalidJSON/Validation: Invalid input data
*/
func (handler *Handler) upsertAsset(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Asset
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Ownership always comes from the token, never the payload.
	input.AuthorID = claims.UserID

	created, err := handler.service.UpsertAsset(request.Context(), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if created {
		respond.Created(writer, &input)
		return
	}

	respond.OK(writer, &input)
}

/*
PATCH /api/v1/assets/{id}.

Description: Applies a partial modification. Absent fields stay untouched.

Request (Body):
  - Update: JSON object of optional fields

Response:
  - 200: Asset: The asset after the merge
  - 404: ErrNotFound: Asset not found
*/
func (handler *Handler) updateAsset(writer http.ResponseWriter, request *http.Request) {
	assetID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var patch Update
	if err := requestutil.DecodeJSON(writer, request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateAsset(request.Context(), assetID, patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated)
}

/*
DELETE /api/v1/assets/{id}.

Response:
  - 200: {deleted: bool}: Whether an asset was actually removed
*/
func (handler *Handler) deleteAsset(writer http.ResponseWriter, request *http.Request) {
	assetID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	removed, err := handler.service.DeleteAsset(request.Context(), assetID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]bool{"deleted": removed})
}
