// Copyright (c) 2026 Creata. All rights reserved.

/*
Package account implements profile management and the administrative
user surface.

It builds on the auth package's user store: auth owns identity and
credentials, account owns everything a signed-in member can see and
change about themselves, plus the admin-only listing and removal
endpoints.
*/
package account

import (
	"context"
	"log/slog"

	"github.com/creata-app/creata/internal/platform/apperr"
	"github.com/creata-app/creata/internal/platform/validate"
	"github.com/creata-app/creata/internal/users/auth"
)

// themePreferences enumerates the accepted UI theme slugs.
var themePreferences = []string{"light", "dark", "system"}

// Service implements profile and administration use cases.
type Service struct {
	userRepository auth.UserRepository
	logger         *slog.Logger
}

// NewService constructs the account [Service].
func NewService(userRepo auth.UserRepository, logger *slog.Logger) *Service {
	return &Service{
		userRepository: userRepo,
		logger:         logger,
	}
}

// # Profile

/*
GetProfile loads the profile of the given user.

Parameters:
  - context: context.Context
  - userID: string (UUID)

Returns:
  - *auth.User: The account entity
  - error: NotFound if the account no longer exists
*/
func (service *Service) GetProfile(context context.Context, userID string) (*auth.User, error) {
	return service.userRepository.FindByID(context, userID)
}

/*
UpdateProfile applies a partial profile change for the given user.

Description: Only the fields present in the patch are touched. Email and
role are immutable through this surface.

Parameters:
  - context: context.Context
  - userID: string (UUID)
  - patch: auth.ProfileUpdate

Returns:
  - *auth.User: The entity after the merge
  - error: Validation failures or NotFound
*/
func (service *Service) UpdateProfile(context context.Context, userID string, patch auth.ProfileUpdate) (*auth.User, error) {

	validator := validate.New()
	if patch.Name != nil {
		validator.Required(auth.FieldName, *patch.Name).MaxLen(auth.FieldName, *patch.Name, auth.MaxNameLength)
	}
	if patch.Bio != nil {
		validator.MaxLen(auth.FieldBio, *patch.Bio, auth.MaxBioLength)
	}
	if patch.ThemePreference != nil {
		validator.OneOf(auth.FieldTheme, *patch.ThemePreference, themePreferences...)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	user, err := service.userRepository.UpdateProfile(context, userID, patch)
	if err != nil {
		return nil, err
	}

	service.logger.Info("profile_updated", slog.String("user_id", userID))

	return user, nil
}

// # Administration

/*
ListUsers returns a page of all accounts, newest first. Admin only; the
role check happens at the transport layer.

Parameters:
  - context: context.Context
  - limit: int
  - offset: int

Returns:
  - []*auth.User: Page of accounts
  - int: Total account count
  - error: Storage failures
*/
func (service *Service) ListUsers(context context.Context, limit, offset int) ([]*auth.User, int, error) {
	return service.userRepository.List(context, limit, offset)
}

/*
DeleteUser removes an account permanently.

Description: Self-deletion by an admin is rejected so an instance cannot
lock itself out of its last administrator.

Parameters:
  - context: context.Context
  - targetID: string (UUID of the account to remove)
  - actorID: string (UUID of the acting admin)

Returns:
  - bool: True if an account was removed
  - error: Validation or storage failures
*/
func (service *Service) DeleteUser(context context.Context, targetID, actorID string) (bool, error) {

	if targetID == actorID {
		return false, apperr.Forbidden("Admins cannot delete their own account")
	}

	deleted, err := service.userRepository.Delete(context, targetID)
	if err != nil {
		return false, err
	}

	if deleted {
		service.logger.Warn("user_deleted",
			slog.String("user_id", targetID),
			slog.String("actor_id", actorID),
		)
	}

	return deleted, nil
}
