// Copyright (c) 2026 Creata. All rights reserved.

package client_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creata-app/creata/internal/client"
	"github.com/creata-app/creata/internal/users/account"
	"github.com/creata-app/creata/internal/users/auth"
	"github.com/creata-app/creata/pkg/pointer"
)

type staticTokenProvider struct{}

func (staticTokenProvider) GenerateAccessToken(userID, _, _ string, _ time.Duration) (string, error) {
	return "session-" + userID, nil
}

func newUserStore(t *testing.T) *client.UserStore {
	t.Helper()

	seeds, err := auth.DemoUsers()
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	userRepo := auth.NewMemoryUserRepository(seeds)

	authService := auth.NewService(userRepo, auth.NewMemoryResetTokenRepository(), staticTokenProvider{}, logger)
	accountService := account.NewService(userRepo, logger)

	return client.NewUserStore(authService, accountService)
}

/*
TestUserStore_LoginLogout verifies the session lifecycle and that a
failed login records the error without establishing a session.
*/
func TestUserStore_LoginLogout(t *testing.T) {
	store := newUserStore(t)
	ctx := context.Background()

	err := store.Login(ctx, auth.SeedAuthorEmail, "wrong-password")
	require.Error(t, err)
	assert.ErrorIs(t, store.Err(), err)
	assert.Nil(t, store.Current())

	require.NoError(t, store.Login(ctx, auth.SeedAuthorEmail, auth.SeedAuthorPassword))
	require.NotNil(t, store.Current())
	assert.Equal(t, "Alex Rivera", store.Current().Name)
	assert.Equal(t, "session-"+auth.SeedAuthorID, store.AccessToken())
	assert.NoError(t, store.Err())

	store.Logout()
	assert.Nil(t, store.Current())
	assert.Empty(t, store.AccessToken())
}

/*
TestUserStore_Register verifies registration signs the new account in.
*/
func TestUserStore_Register(t *testing.T) {
	store := newUserStore(t)

	require.NoError(t, store.Register(context.Background(), "Morgan Lee", "morgan@example.com", "a long password"))

	current := store.Current()
	require.NotNil(t, current)
	assert.Equal(t, "Morgan Lee", current.Name)
	assert.NotEmpty(t, store.AccessToken())
}

/*
TestUserStore_UpdateProfile verifies the cached session user follows a
profile patch, and that a signed-out store rejects the action.
*/
func TestUserStore_UpdateProfile(t *testing.T) {
	store := newUserStore(t)
	ctx := context.Background()

	err := store.UpdateProfile(ctx, auth.ProfileUpdate{Bio: pointer.To("new")})
	require.ErrorIs(t, err, client.ErrNotSignedIn)

	require.NoError(t, store.Login(ctx, auth.SeedAuthorEmail, auth.SeedAuthorPassword))
	require.NoError(t, store.UpdateProfile(ctx, auth.ProfileUpdate{Bio: pointer.To("Updated bio.")}))

	assert.Equal(t, "Updated bio.", store.Current().Bio)
	assert.Equal(t, "Alex Rivera", store.Current().Name)
}

/*
TestUserStore_AdminList verifies the admin list loads and deletion
evicts from the cached list.
*/
func TestUserStore_AdminList(t *testing.T) {
	store := newUserStore(t)
	ctx := context.Background()

	require.NoError(t, store.Login(ctx, auth.SeedAdminEmail, auth.SeedAdminPassword))
	require.NoError(t, store.FetchUsers(ctx, 10, 0))
	assert.Len(t, store.Users(), 2)

	removed, err := store.DeleteUser(ctx, auth.SeedAuthorID)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Len(t, store.Users(), 1)

	// Self-deletion is refused and leaves the list alone.
	_, err = store.DeleteUser(ctx, auth.SeedAdminID)
	require.Error(t, err)
	assert.Len(t, store.Users(), 1)
}
