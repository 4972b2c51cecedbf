// Copyright (c) 2026 Creata. All rights reserved.

package auth

import (
	"context"
	"time"
)

// # User Data Access

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {

	/*
		FindByID retrieves a user record by their unique ID.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *User: Loaded account entity
		  - error: dberr.ErrNotFound if missing
	*/
	FindByID(context context.Context, id string) (*User, error)

	/*
		FindByEmail retrieves a user record by their email address.
		Matching is case-insensitive.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *User: Loaded account entity
		  - error: dberr.ErrNotFound if missing
	*/
	FindByEmail(context context.Context, email string) (*User, error)

	/*
		Create persists a new user account.

		Parameters:
		  - context: context.Context
		  - user: *User (Fully hydrated entity; password already hashed)

		Returns:
		  - error: Conflict on duplicate email, or storage failures
	*/
	Create(context context.Context, user *User) error

	/*
		UpdateProfile applies a partial profile modification and bumps
		UpdatedAt.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)
		  - patch: ProfileUpdate

		Returns:
		  - *User: The entity after the merge
		  - error: dberr.ErrNotFound if missing
	*/
	UpdateProfile(context context.Context, id string, patch ProfileUpdate) (*User, error)

	/*
		UpdatePassword replaces the stored password hash.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)
		  - passwordHash: string (bcrypt digest, never plaintext)

		Returns:
		  - error: dberr.ErrNotFound if missing
	*/
	UpdatePassword(context context.Context, id, passwordHash string) error

	/*
		List returns a paginated slice of all accounts, newest first.
		Admin surface only.

		Parameters:
		  - context: context.Context
		  - limit: int
		  - offset: int

		Returns:
		  - []*User: Page of accounts
		  - int: Total account count
		  - error: Storage failures
	*/
	List(context context.Context, limit, offset int) ([]*User, int, error)

	/*
		Delete removes an account permanently. Removing a missing account
		is not an error.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - bool: True if a row was removed
		  - error: Storage failures only
	*/
	Delete(context context.Context, id string) (bool, error)
}

// # Reset Token Data Access

// ResetTokenRepository stores single-use password reset tokens with a TTL.
// Tokens are stored hashed; possession of the store never yields a usable
// token.
type ResetTokenRepository interface {

	/*
		Set stores a reset token for a user.

		Parameters:
		  - context: context.Context
		  - tokenHash: string (SHA-256 of the raw token)
		  - userID: string (UUID)
		  - ttl: time.Duration

		Returns:
		  - error: Storage failures
	*/
	Set(context context.Context, tokenHash, userID string, ttl time.Duration) error

	/*
		Get resolves a reset token to its user ID.

		Parameters:
		  - context: context.Context
		  - tokenHash: string

		Returns:
		  - string: The owning user's ID
		  - error: Unauthorized if the token is unknown or expired
	*/
	Get(context context.Context, tokenHash string) (string, error)

	/*
		Delete invalidates a reset token after use.

		Parameters:
		  - context: context.Context
		  - tokenHash: string

		Returns:
		  - error: Storage failures
	*/
	Delete(context context.Context, tokenHash string) error
}
