// Copyright (c) 2026 Creata. All rights reserved.

package auth

import "time"

// # Token Lifetimes & Sizes

const (
	// AccessTokenTTL is the lifetime of a signed access token.
	AccessTokenTTL = 24 * time.Hour

	// ResetTokenTTL bounds how long a password reset link stays valid.
	ResetTokenTTL = 30 * time.Minute

	// ResetTokenLength is the entropy of a reset token in raw bytes.
	ResetTokenLength = 32
)

// # Validation Bounds

const (
	MinPasswordLength = 8
	MaxNameLength     = 80
	MaxBioLength      = 500
)
