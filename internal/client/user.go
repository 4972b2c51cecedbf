// Copyright (c) 2026 Creata. All rights reserved.

package client

import (
	"context"
	"sync"

	"github.com/creata-app/creata/internal/platform/apperr"
	"github.com/creata-app/creata/internal/users/auth"
)

// ErrNotSignedIn is returned by session-bound actions on a signed-out store.
var ErrNotSignedIn = apperr.Unauthorized("Not signed in")

// # Backend Contracts

// AuthBackend is the slice of the auth service the user store consumes.
// *auth.Service satisfies it.
type AuthBackend interface {
	Register(ctx context.Context, input auth.RegisterInput) (*auth.User, error)
	Login(ctx context.Context, input auth.LoginInput) (*auth.LoginSession, error)
	GetUser(ctx context.Context, id string) (*auth.User, error)
}

// AccountBackend is the slice of the account service the user store
// consumes. *account.Service satisfies it.
type AccountBackend interface {
	UpdateProfile(ctx context.Context, userID string, patch auth.ProfileUpdate) (*auth.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]*auth.User, int, error)
	DeleteUser(ctx context.Context, targetID, actorID string) (bool, error)
}

// # Store

// UserStore holds the current session user and, for admins, the cached
// account list.
type UserStore struct {
	mu sync.Mutex

	authBackend    AuthBackend
	accountBackend AccountBackend

	current     *auth.User
	accessToken string
	users       []*auth.User

	loading   bool
	lastError error
}

// NewUserStore constructs an empty, signed-out user store.
func NewUserStore(authBackend AuthBackend, accountBackend AccountBackend) *UserStore {
	return &UserStore{
		authBackend:    authBackend,
		accountBackend: accountBackend,
	}
}

// # Session Actions

// Login authenticates and establishes the session.
func (store *UserStore) Login(ctx context.Context, email, password string) error {
	store.setLoading(true)

	session, err := store.authBackend.Login(ctx, auth.LoginInput{
		Email:    email,
		Password: password,
	})

	store.mu.Lock()
	defer store.mu.Unlock()
	store.loading = false

	if err != nil {
		store.lastError = err
		return err
	}

	store.lastError = nil
	store.current = session.User
	store.accessToken = session.AccessToken

	return nil
}

// Register creates an account and signs it in.
func (store *UserStore) Register(ctx context.Context, name, email, password string) error {
	store.setLoading(true)

	_, err := store.authBackend.Register(ctx, auth.RegisterInput{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		store.mu.Lock()
		defer store.mu.Unlock()
		store.loading = false
		store.lastError = err
		return err
	}

	return store.Login(ctx, email, password)
}

// Logout drops the session state. Purely local; tokens are stateless.
func (store *UserStore) Logout() {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.current = nil
	store.accessToken = ""
	store.users = nil
	store.lastError = nil
}

// UpdateProfile patches the signed-in user's profile and refreshes the
// cached session user.
func (store *UserStore) UpdateProfile(ctx context.Context, patch auth.ProfileUpdate) error {
	store.mu.Lock()
	if store.current == nil {
		store.mu.Unlock()
		return ErrNotSignedIn
	}
	userID := store.current.ID
	store.mu.Unlock()

	store.setLoading(true)

	updated, err := store.accountBackend.UpdateProfile(ctx, userID, patch)

	store.mu.Lock()
	defer store.mu.Unlock()
	store.loading = false

	if err != nil {
		store.lastError = err
		return err
	}

	store.lastError = nil
	store.current = updated

	return nil
}

// # Admin Actions

// FetchUsers loads the account list. Admin sessions only; the backend
// enforces the role.
func (store *UserStore) FetchUsers(ctx context.Context, limit, offset int) error {
	store.setLoading(true)

	users, _, err := store.accountBackend.ListUsers(ctx, limit, offset)

	store.mu.Lock()
	defer store.mu.Unlock()
	store.loading = false

	if err != nil {
		store.lastError = err
		return err
	}

	store.lastError = nil
	store.users = users

	return nil
}

// DeleteUser removes an account and evicts it from the cached list.
func (store *UserStore) DeleteUser(ctx context.Context, targetID string) (bool, error) {
	store.mu.Lock()
	if store.current == nil {
		store.mu.Unlock()
		return false, ErrNotSignedIn
	}
	actorID := store.current.ID
	store.mu.Unlock()

	removed, err := store.accountBackend.DeleteUser(ctx, targetID, actorID)

	store.mu.Lock()
	defer store.mu.Unlock()

	if err != nil {
		store.lastError = err
		return false, err
	}

	store.lastError = nil

	kept := store.users[:0]
	for _, existing := range store.users {
		if existing.ID != targetID {
			kept = append(kept, existing)
		}
	}
	store.users = kept

	return removed, nil
}

// # Snapshots

// Current returns a copy of the signed-in user, or nil.
func (store *UserStore) Current() *auth.User {
	store.mu.Lock()
	defer store.mu.Unlock()

	if store.current == nil {
		return nil
	}
	clone := *store.current
	return &clone
}

// AccessToken returns the session's bearer token, empty when signed out.
func (store *UserStore) AccessToken() string {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.accessToken
}

// Users returns a copy of the cached admin account list.
func (store *UserStore) Users() []*auth.User {
	store.mu.Lock()
	defer store.mu.Unlock()

	copied := make([]*auth.User, len(store.users))
	for index, existing := range store.users {
		clone := *existing
		copied[index] = &clone
	}
	return copied
}

// Loading reports whether an action is in flight.
func (store *UserStore) Loading() bool {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.loading
}

// Err returns the error of the most recent failed action, or nil.
func (store *UserStore) Err() error {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.lastError
}

func (store *UserStore) setLoading(loading bool) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.loading = loading
	if loading {
		store.lastError = nil
	}
}
