// Copyright (c) 2026 Creata. All rights reserved.

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/creata-app/creata/internal/platform/middleware"
	requestutil "github.com/creata-app/creata/internal/platform/request"
	"github.com/creata-app/creata/internal/platform/respond"
	"github.com/creata-app/creata/internal/platform/sec"
	"github.com/creata-app/creata/internal/users/auth"
	"github.com/creata-app/creata/pkg/pagination"
)

// # HTTP Transport

// Handler exposes profile and admin endpoints over HTTP.
type Handler struct {
	service  *Service
	verifier middleware.TokenVerifier
}

// NewHandler constructs the account HTTP handler.
func NewHandler(service *Service, verifier middleware.TokenVerifier) *Handler {
	return &Handler{service: service, verifier: verifier}
}

// Routes wires the account endpoints. Everything here requires a token;
// the admin subtree additionally requires the admin role.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.Authenticate(handler.verifier))

	router.Get("/profile", handler.getProfile)
	router.Patch("/profile", handler.updateProfile)

	// ## Admin Surface
	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))

		admin.Get("/users", handler.listUsers)
		admin.Delete("/users/{id}", handler.deleteUser)
	})

	return router
}

// # Profile Endpoints

/*
GET /api/v1/account/profile.

Description: Returns the authenticated caller's own profile.

Response:
  - 200: auth.User: The profile
  - 401: ErrUnauthorized: Missing or invalid token
*/
func (handler *Handler) getProfile(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.GetProfile(request.Context(), claims.UserID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

/*
PATCH /api/v1/account/profile.

Description: Applies a partial update to the caller's own profile. Only
fields present in the body are changed.

Request (Body):
  - auth.ProfileUpdate: Partial JSON

Response:
  - 200: auth.User: Profile after the merge
  - 400: ErrValidation: Invalid input data
*/
func (handler *Handler) updateProfile(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var patch auth.ProfileUpdate
	if err := requestutil.DecodeJSON(writer, request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.UpdateProfile(request.Context(), claims.UserID, patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

// # Admin Endpoints

/*
GET /api/v1/account/users.

Description: Lists every account, newest first. Admin only.

Request:
  - page: int
  - limit: int

Response:
  - 200: []auth.User: Paginated accounts
  - 403: ErrForbidden: Caller is not an admin
*/
func (handler *Handler) listUsers(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	users, total, err := handler.service.ListUsers(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if users == nil {
		users = []*auth.User{}
	}

	respond.Paginated(writer, users, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
DELETE /api/v1/account/users/{id}.

Description: Permanently removes an account. Admin only; self-deletion is
rejected. Removing a missing account reports deleted=false.

Request:
  - id: string (UUID)

Response:
  - 200: {deleted: bool}: Whether an account was removed
  - 403: ErrForbidden: Caller is not an admin, or targets themselves
*/
func (handler *Handler) deleteUser(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	targetID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	removed, err := handler.service.DeleteUser(request.Context(), targetID, claims.UserID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]bool{"deleted": removed})
}
