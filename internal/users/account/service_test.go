// Copyright (c) 2026 Creata. All rights reserved.

package account_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creata-app/creata/internal/platform/apperr"
	"github.com/creata-app/creata/internal/users/account"
	"github.com/creata-app/creata/internal/users/auth"
	"github.com/creata-app/creata/pkg/pointer"
)

func newService(t *testing.T) *account.Service {
	t.Helper()

	seeds, err := auth.DemoUsers()
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return account.NewService(auth.NewMemoryUserRepository(seeds), logger)
}

/*
TestGetProfile verifies the basic profile lookup.
*/
func TestGetProfile(t *testing.T) {
	service := newService(t)

	user, err := service.GetProfile(context.Background(), auth.SeedAuthorID)
	require.NoError(t, err)

	assert.Equal(t, "Alex Rivera", user.Name)
	assert.Equal(t, "dark", user.ThemePreference)
}

/*
TestUpdateProfile verifies partial merges: touched fields change,
untouched fields survive.
*/
func TestUpdateProfile(t *testing.T) {
	service := newService(t)

	updated, err := service.UpdateProfile(context.Background(), auth.SeedAuthorID, auth.ProfileUpdate{
		Bio:             pointer.To("New bio."),
		ThemePreference: pointer.To("light"),
	})
	require.NoError(t, err)

	assert.Equal(t, "New bio.", updated.Bio)
	assert.Equal(t, "light", updated.ThemePreference)
	assert.Equal(t, "Alex Rivera", updated.Name)
}

/*
TestUpdateProfile_Validation exercises the rejection table for profile
patches.
*/
func TestUpdateProfile_Validation(t *testing.T) {
	service := newService(t)

	testCases := []struct {
		name  string
		patch auth.ProfileUpdate
	}{
		{
			name:  "blank name",
			patch: auth.ProfileUpdate{Name: pointer.To("  ")},
		},
		{
			name:  "unknown theme",
			patch: auth.ProfileUpdate{ThemePreference: pointer.To("solarized")},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := service.UpdateProfile(context.Background(), auth.SeedAuthorID, testCase.patch)
			require.Error(t, err)
			assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
		})
	}
}

/*
TestListUsers verifies the admin listing is ordered newest first.
*/
func TestListUsers(t *testing.T) {
	service := newService(t)

	users, total, err := service.ListUsers(context.Background(), 10, 0)
	require.NoError(t, err)

	assert.Equal(t, 2, total)
	require.Len(t, users, 2)
	assert.Equal(t, "Alex Rivera", users[0].Name)
	assert.Equal(t, "creata", users[1].Name)
}

/*
TestDeleteUser verifies idempotent removal and the self-deletion guard.
*/
func TestDeleteUser(t *testing.T) {
	service := newService(t)
	ctx := context.Background()

	removed, err := service.DeleteUser(ctx, auth.SeedAuthorID, auth.SeedAdminID)
	require.NoError(t, err)
	assert.True(t, removed)

	// Second pass is a no-op, not an error.
	removed, err = service.DeleteUser(ctx, auth.SeedAuthorID, auth.SeedAdminID)
	require.NoError(t, err)
	assert.False(t, removed)

	// Admins cannot remove themselves.
	_, err = service.DeleteUser(ctx, auth.SeedAdminID, auth.SeedAdminID)
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)
}
