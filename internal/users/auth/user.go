// Copyright (c) 2026 Creata. All rights reserved.

package auth

import (
	"time"

	"github.com/creata-app/creata/internal/platform/sec"
)

// # Domain Entities

// User represents a registered Creata account.
//
// # Security
//
// PasswordHash is the bcrypt digest of the user's password. The plaintext
// password is never stored anywhere, and the hash is excluded from every
// JSON payload.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`

	PasswordHash string `json:"-"`

	AvatarURL string       `json:"avatar_url,omitempty"`
	Bio       string       `json:"bio,omitempty"`
	Role      sec.UserRole `json:"role"`

	// ThemePreference is the UI theme slug chosen by the user ("light",
	// "dark", "system").
	ThemePreference string `json:"theme_preference"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfileUpdate carries a partial modification of a user's profile.
// Nil pointers mean "leave unchanged".
type ProfileUpdate struct {
	Name            *string `json:"name,omitempty"`
	AvatarURL       *string `json:"avatar_url,omitempty"`
	Bio             *string `json:"bio,omitempty"`
	ThemePreference *string `json:"theme_preference,omitempty"`
}

// # Field Identifiers

const (
	FieldID       = "id"
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldBio      = "bio"
	FieldTheme    = "theme_preference"
)
