// Copyright (c) 2026 Creata. All rights reserved.

package auth

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/creata-app/creata/internal/platform/apperr"
	"github.com/creata-app/creata/internal/platform/dberr"
)

// # In-Memory User Repository

// memoryUserRepository implements [UserRepository] in process memory for
// the "memory" storage mode and the test suites.
type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]*User
}

// NewMemoryUserRepository constructs an in-memory user store preloaded
// with the given seed accounts.
func NewMemoryUserRepository(seeds []*User) UserRepository {
	repository := &memoryUserRepository{
		users: make(map[string]*User),
	}

	for _, seed := range seeds {
		clone := *seed
		repository.users[seed.ID] = &clone
	}

	return repository
}

func (repository *memoryUserRepository) FindByID(_ context.Context, id string) (*User, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	found, ok := repository.users[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}

	clone := *found
	return &clone, nil
}

func (repository *memoryUserRepository) FindByEmail(_ context.Context, email string) (*User, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	needle := strings.ToLower(email)
	for _, existing := range repository.users {
		if strings.ToLower(existing.Email) == needle {
			clone := *existing
			return &clone, nil
		}
	}

	return nil, dberr.ErrNotFound
}

func (repository *memoryUserRepository) Create(_ context.Context, user *User) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	needle := strings.ToLower(user.Email)
	for _, existing := range repository.users {
		if strings.ToLower(existing.Email) == needle {
			return apperr.Conflict("Email is already registered")
		}
	}

	clone := *user
	repository.users[user.ID] = &clone

	return nil
}

func (repository *memoryUserRepository) UpdateProfile(_ context.Context, id string, patch ProfileUpdate) (*User, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	found, ok := repository.users[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}

	if patch.Name != nil {
		found.Name = *patch.Name
	}
	if patch.AvatarURL != nil {
		found.AvatarURL = *patch.AvatarURL
	}
	if patch.Bio != nil {
		found.Bio = *patch.Bio
	}
	if patch.ThemePreference != nil {
		found.ThemePreference = *patch.ThemePreference
	}

	found.UpdatedAt = time.Now().UTC()

	clone := *found
	return &clone, nil
}

func (repository *memoryUserRepository) UpdatePassword(_ context.Context, id, passwordHash string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	found, ok := repository.users[id]
	if !ok {
		return dberr.ErrNotFound
	}

	found.PasswordHash = passwordHash
	found.UpdatedAt = time.Now().UTC()

	return nil
}

func (repository *memoryUserRepository) List(_ context.Context, limit, offset int) ([]*User, int, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	all := make([]*User, 0, len(repository.users))
	for _, existing := range repository.users {
		clone := *existing
		all = append(all, &clone)
	}

	// Newest accounts first.
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	total := len(all)
	if offset >= total {
		return []*User{}, total, nil
	}

	end := offset + limit
	if end > total {
		end = total
	}

	return all[offset:end], total, nil
}

func (repository *memoryUserRepository) Delete(_ context.Context, id string) (bool, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.users[id]; !ok {
		return false, nil
	}

	delete(repository.users, id)
	return true, nil
}

// # In-Memory Reset Token Repository

// memoryResetTokenRepository keeps reset tokens in a TTL-aware map. It
// substitutes for Redis when running on the memory backend.
type memoryResetTokenRepository struct {
	mu     sync.Mutex
	tokens map[string]resetEntry
}

type resetEntry struct {
	userID    string
	expiresAt time.Time
}

// NewMemoryResetTokenRepository constructs an in-memory reset token store.
func NewMemoryResetTokenRepository() ResetTokenRepository {
	return &memoryResetTokenRepository{
		tokens: make(map[string]resetEntry),
	}
}

func (repository *memoryResetTokenRepository) Set(_ context.Context, tokenHash, userID string, ttl time.Duration) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.tokens[tokenHash] = resetEntry{
		userID:    userID,
		expiresAt: time.Now().Add(ttl),
	}

	return nil
}

func (repository *memoryResetTokenRepository) Get(_ context.Context, tokenHash string) (string, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	entry, ok := repository.tokens[tokenHash]
	if !ok || time.Now().After(entry.expiresAt) {
		delete(repository.tokens, tokenHash)
		return "", apperr.Unauthorized("Invalid or expired reset token")
	}

	return entry.userID, nil
}

func (repository *memoryResetTokenRepository) Delete(_ context.Context, tokenHash string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	delete(repository.tokens, tokenHash)
	return nil
}
