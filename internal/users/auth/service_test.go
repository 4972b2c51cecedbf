// Copyright (c) 2026 Creata. All rights reserved.

package auth_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creata-app/creata/internal/platform/apperr"
	"github.com/creata-app/creata/internal/platform/sec"
	"github.com/creata-app/creata/internal/users/auth"
)

// # Test Fixtures

// stubTokenProvider issues predictable tokens without touching key material.
type stubTokenProvider struct {
	issued int
}

func (provider *stubTokenProvider) GenerateAccessToken(userID, _, _ string, _ time.Duration) (string, error) {
	provider.issued++
	return "token-for-" + userID, nil
}

func newService(t *testing.T) (*auth.Service, *stubTokenProvider) {
	t.Helper()

	seeds, err := auth.DemoUsers()
	require.NoError(t, err)

	provider := &stubTokenProvider{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := auth.NewService(
		auth.NewMemoryUserRepository(seeds),
		auth.NewMemoryResetTokenRepository(),
		provider,
		logger,
	)

	return service, provider
}

// # Registration

/*
TestRegister verifies that a new account is created with a hashed
password, the default member role, and server-generated timestamps.
*/
func TestRegister(t *testing.T) {
	service, _ := newService(t)

	user, err := service.Register(context.Background(), auth.RegisterInput{
		Name:     "Morgan Lee",
		Email:    "morgan@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Morgan Lee", user.Name)
	assert.Equal(t, sec.RoleUser, user.Role)
	assert.False(t, user.CreatedAt.IsZero())

	// Only the bcrypt digest is stored.
	assert.NotEqual(t, "correct horse battery", user.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("correct horse battery", user.PasswordHash))
}

/*
TestRegister_DuplicateEmail verifies that re-registering an existing
email yields a conflict, regardless of letter case.
*/
func TestRegister_DuplicateEmail(t *testing.T) {
	service, _ := newService(t)

	_, err := service.Register(context.Background(), auth.RegisterInput{
		Name:     "Impostor",
		Email:    "ALEX@creata.com",
		Password: "not-the-real-alex",
	})
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "CONFLICT", appError.Code)
}

/*
TestRegister_Validation exercises the input validation table.
*/
func TestRegister_Validation(t *testing.T) {
	service, _ := newService(t)

	testCases := []struct {
		name  string
		input auth.RegisterInput
	}{
		{
			name:  "missing name",
			input: auth.RegisterInput{Email: "a@b.com", Password: "long enough"},
		},
		{
			name:  "invalid email",
			input: auth.RegisterInput{Name: "A", Email: "not-an-email", Password: "long enough"},
		},
		{
			name:  "short password",
			input: auth.RegisterInput{Name: "A", Email: "a@b.com", Password: "short"},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := service.Register(context.Background(), testCase.input)
			require.Error(t, err)

			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, "VALIDATION_ERROR", appError.Code)
		})
	}
}

// # Login

/*
TestLogin verifies that valid credentials produce a session holding a
signed token and the account entity.
*/
func TestLogin(t *testing.T) {
	service, provider := newService(t)

	session, err := service.Login(context.Background(), auth.LoginInput{
		Email:    auth.SeedAuthorEmail,
		Password: auth.SeedAuthorPassword,
	})
	require.NoError(t, err)

	assert.Equal(t, "token-for-"+auth.SeedAuthorID, session.AccessToken)
	assert.Equal(t, "Alex Rivera", session.User.Name)
	assert.Equal(t, 1, provider.issued)
}

/*
TestLogin_InvalidCredentials verifies that wrong passwords and unknown
emails produce the same generic error, so callers cannot probe for
registered addresses.
*/
func TestLogin_InvalidCredentials(t *testing.T) {
	service, _ := newService(t)

	_, wrongPasswordErr := service.Login(context.Background(), auth.LoginInput{
		Email:    auth.SeedAuthorEmail,
		Password: "wrong-password",
	})
	require.Error(t, wrongPasswordErr)

	_, unknownEmailErr := service.Login(context.Background(), auth.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever-here",
	})
	require.Error(t, unknownEmailErr)

	assert.Equal(t, wrongPasswordErr.Error(), unknownEmailErr.Error())

	appError := apperr.As(wrongPasswordErr)
	require.NotNil(t, appError)
	assert.Equal(t, "UNAUTHORIZED", appError.Code)
}

// # Password Recovery

/*
TestPasswordResetFlow walks the full forgot-password path: request a
token, redeem it once, log in with the new password, and confirm the
token cannot be replayed.
*/
func TestPasswordResetFlow(t *testing.T) {
	service, _ := newService(t)
	ctx := context.Background()

	token, err := service.RequestPasswordReset(ctx, auth.SeedAuthorEmail)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	err = service.ResetPassword(ctx, token, "a brand new password")
	require.NoError(t, err)

	// Old password is dead, new one works.
	_, err = service.Login(ctx, auth.LoginInput{
		Email:    auth.SeedAuthorEmail,
		Password: auth.SeedAuthorPassword,
	})
	require.Error(t, err)

	_, err = service.Login(ctx, auth.LoginInput{
		Email:    auth.SeedAuthorEmail,
		Password: "a brand new password",
	})
	require.NoError(t, err)

	// Tokens are single use.
	err = service.ResetPassword(ctx, token, "yet another password")
	require.Error(t, err)
}

/*
TestRequestPasswordReset_UnknownEmail verifies the silent success for
unregistered addresses.
*/
func TestRequestPasswordReset_UnknownEmail(t *testing.T) {
	service, _ := newService(t)

	token, err := service.RequestPasswordReset(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, token)
}

/*
TestResetPassword_BadToken verifies that a fabricated token is rejected
before any account is touched.
*/
func TestResetPassword_BadToken(t *testing.T) {
	service, _ := newService(t)

	err := service.ResetPassword(context.Background(), "made-up-token", "a valid password")
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "UNAUTHORIZED", appError.Code)
}

/*
TestResetPassword_WeakPassword verifies the new password is validated
before the token is consumed.
*/
func TestResetPassword_WeakPassword(t *testing.T) {
	service, _ := newService(t)
	ctx := context.Background()

	token, err := service.RequestPasswordReset(ctx, auth.SeedAuthorEmail)
	require.NoError(t, err)

	err = service.ResetPassword(ctx, token, "tiny")
	require.Error(t, err)

	// The rejected attempt must not have burned the token.
	err = service.ResetPassword(ctx, token, "a proper replacement")
	require.NoError(t, err)
}
