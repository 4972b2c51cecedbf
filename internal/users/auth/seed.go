// Copyright (c) 2026 Creata. All rights reserved.

package auth

import (
	"time"

	"github.com/creata-app/creata/internal/platform/sec"
)

// # Demo Data

// Demo account identifiers, shared with the seeded works so authorship
// lines up across the memory backend.
const (
	SeedAdminID  = "0191c2f0-4a00-7000-8000-000000000001"
	SeedAuthorID = "0191c2f0-4a00-7000-8000-000000000002"
)

// Demo credentials for the memory backend. Never enabled in production.
const (
	SeedAdminEmail     = "admin@creata.com"
	SeedAdminPassword  = "creata-admin"
	SeedAuthorEmail    = "alex@creata.com"
	SeedAuthorPassword = "creata-demo"
)

var seededAt = time.Date(2026, time.January, 12, 9, 0, 0, 0, time.UTC)

// DemoUsers returns the fixture accounts used by the memory backend.
// Passwords are hashed at startup; plaintext never reaches the store.
func DemoUsers() ([]*User, error) {
	adminHash, err := sec.HashPassword(SeedAdminPassword)
	if err != nil {
		return nil, err
	}

	authorHash, err := sec.HashPassword(SeedAuthorPassword)
	if err != nil {
		return nil, err
	}

	return []*User{
		{
			ID:              SeedAdminID,
			Name:            "creata",
			Email:           SeedAdminEmail,
			PasswordHash:    adminHash,
			AvatarURL:       "/images/avatars/creata.png",
			Bio:             "Official Creata account.",
			Role:            sec.RoleAdmin,
			ThemePreference: "system",
			CreatedAt:       seededAt,
			UpdatedAt:       seededAt,
		},
		{
			ID:              SeedAuthorID,
			Name:            "Alex Rivera",
			Email:           SeedAuthorEmail,
			PasswordHash:    authorHash,
			AvatarURL:       "/images/avatars/alex.png",
			Bio:             "Writes long stories and short comics.",
			Role:            sec.RoleUser,
			ThemePreference: "dark",
			CreatedAt:       seededAt.Add(2 * time.Hour),
			UpdatedAt:       seededAt.Add(2 * time.Hour),
		},
	}, nil
}
