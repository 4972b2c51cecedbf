// Copyright (c) 2026 Creata. All rights reserved.

/*
Package auth implements identity and access management for Creata.

It handles user registration, secure password hashing, credential login,
and the forgot-password flow backed by single-use Redis tokens.

Architecture:

  - Service: Orchestrates business logic (Register, Login, Reset).
  - Repository: Abstracted interfaces for Postgres (Users) and Redis (Reset tokens).
  - Security: Bcrypt password digests and RSA-signed JWTs issued through
    an injected [TokenProvider].
*/
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/creata-app/creata/internal/platform/apperr"
	"github.com/creata-app/creata/internal/platform/sec"
	"github.com/creata-app/creata/internal/platform/validate"
	"github.com/creata-app/creata/pkg/uuidv7"
)

// # Contracts & Types

// TokenProvider defines the contract for issuing access tokens.
// The concrete signer lives in the sec package and is injected at the
// composition root, keeping key material out of the domain layer.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given user.
	GenerateAccessToken(userID, name, role string, timeToLive time.Duration) (string, error)
}

// Service implements user authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing,
// registration, or login logic must be reviewed carefully.
type Service struct {
	userRepository       UserRepository
	resetTokenRepository ResetTokenRepository
	tokenProvider        TokenProvider
	logger               *slog.Logger
}

// NewService constructs a new auth [Service] with its dependencies.
func NewService(
	userRepo UserRepository,
	resetRepo ResetTokenRepository,
	tokenProvider TokenProvider,
	logger *slog.Logger,
) *Service {
	return &Service{
		userRepository:       userRepo,
		resetTokenRepository: resetRepo,
		tokenProvider:        tokenProvider,
		logger:               logger,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

/*
Register validates, hashes, and persists a brand new user account.

Description: The plaintext password exists only for the duration of this
call; only its bcrypt digest is ever stored.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *User: Created entity
  - error: Conflict if the email is taken, validation or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {

	validator := validate.New()
	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, MaxNameLength)
	validator.Required(FieldEmail, input.Email).Email(FieldEmail, input.Email)
	validator.MinLen(FieldPassword, input.Password, MinPasswordLength)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Email uniqueness. Client-safe Conflict on duplicates.
	if _, err := service.userRepository.FindByEmail(context, input.Email); err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}

	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth: password hash failed: %w", err)
	}

	now := time.Now().UTC()
	user := &User{
		ID:              uuidv7.Must(),
		Name:            input.Name,
		Email:           input.Email,
		PasswordHash:    hashedPassword,
		Role:            sec.RoleUser,
		ThemePreference: "system",
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := service.userRepository.Create(context, user); err != nil {
		return nil, err
	}

	service.logger.Info("user_registered",
		slog.String("user_id", user.ID),
		slog.String("email", user.Email),
	)

	return user, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

// LoginSession represents a successfully authenticated session.
type LoginSession struct {
	AccessToken string `json:"access_token"`
	User        *User  `json:"user"`
}

/*
Login validates credentials and issues a signed access token.

Description: Performs a constant-time bcrypt comparison. Unknown emails
and wrong passwords produce the same generic error to prevent account
enumeration.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: Transport-ready session with the signed token
  - error: Unauthorized or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {

	user, err := service.userRepository.FindByEmail(context, input.Email)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	accessToken, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Name, string(user.Role), AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth: token generation failed: %w", err)
	}

	service.logger.Info("user_logged_in", slog.String("user_id", user.ID))

	return &LoginSession{
		AccessToken: accessToken,
		User:        user,
	}, nil
}

// # Password Recovery

/*
RequestPasswordReset initiates the forgot-password flow.

Description: Generates a high-entropy token, stores only its SHA-256 hash
in Redis with a short TTL, and returns the raw token for delivery to the
user. Unknown emails succeed silently to prevent enumeration.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - string: Raw reset token, empty when the email is unknown
  - error: Generation or storage errors
*/
func (service *Service) RequestPasswordReset(context context.Context, email string) (string, error) {

	user, err := service.userRepository.FindByEmail(context, email)
	if err != nil {
		// Indistinguishable from success for the caller.
		return "", nil
	}

	token, err := sec.GenerateSecureToken(ResetTokenLength)
	if err != nil {
		return "", fmt.Errorf("auth: reset token generation failed: %w", err)
	}

	if err := service.resetTokenRepository.Set(context, sec.HashToken(token), user.ID, ResetTokenTTL); err != nil {
		return "", fmt.Errorf("auth: reset token storage failed: %w", err)
	}

	service.logger.Info("password_reset_requested", slog.String("user_id", user.ID))

	return token, nil
}

/*
ResetPassword completes the forgot-password flow.

Description: Resolves the single-use token, replaces the stored password
digest, and invalidates the token.

Parameters:
  - context: context.Context
  - token: string (Raw token from the reset link)
  - newPassword: string

Returns:
  - error: Unauthorized for bad tokens, validation or update failures
*/
func (service *Service) ResetPassword(context context.Context, token, newPassword string) error {

	validator := validate.New()
	validator.MinLen(FieldPassword, newPassword, MinPasswordLength)
	if err := validator.Err(); err != nil {
		return err
	}

	tokenHash := sec.HashToken(token)

	userID, err := service.resetTokenRepository.Get(context, tokenHash)
	if err != nil {
		return err
	}

	hashedPassword, err := sec.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("auth: password hash failed: %w", err)
	}

	if err := service.userRepository.UpdatePassword(context, userID, hashedPassword); err != nil {
		return err
	}

	// Single use: the token dies with the reset.
	_ = service.resetTokenRepository.Delete(context, tokenHash)

	service.logger.Info("password_reset_completed", slog.String("user_id", userID))

	return nil
}

// # Lookup

// GetUser fetches a user by ID.
func (service *Service) GetUser(context context.Context, id string) (*User, error) {
	return service.userRepository.FindByID(context, id)
}
