// Copyright (c) 2026 Creata. All rights reserved.

package middleware

import (
	"net/http"
	"strings"

	"github.com/creata-app/creata/internal/platform/ctxutil"
	"github.com/creata-app/creata/internal/platform/sec"
)

// TokenVerifier validates a raw bearer token and returns its claims.
// The concrete implementation lives in the sec package.
type TokenVerifier interface {
	VerifyToken(tokenString string) (*sec.AuthClaims, error)
}

// Authenticate validates the Bearer token and injects claims into context.
//
// Requests without a valid token are rejected with 401 before reaching the
// handler. Use [MaybeAuthenticate] for routes that serve both anonymous and
// signed-in viewers.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			claims, ok := claimsFromRequest(verifier, request)
			if !ok {
				writeError(writer, http.StatusUnauthorized, "UNAUTHORIZED", "Missing or invalid credentials")
				return
			}

			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// MaybeAuthenticate injects claims when a valid token is present but lets
// anonymous requests through untouched.
//
// Browse endpoints use this so that per-viewer fields (like favorite flags)
// can be resolved without forcing a login.
func MaybeAuthenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			if claims, ok := claimsFromRequest(verifier, request); ok {
				ctx := ctxutil.WithAuthUser(request.Context(), claims)
				request = request.WithContext(ctx)
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// RequireRole enforces a minimum role for the route.
// Must be mounted after [Authenticate].
func RequireRole(minimum sec.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			claims := ctxutil.GetAuthUser(request.Context())
			if claims == nil {
				writeError(writer, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
				return
			}

			role := sec.UserRole(claims.Role)
			if !role.AtLeast(minimum) {
				writeError(writer, http.StatusForbidden, "FORBIDDEN", "Insufficient permissions")
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// claimsFromRequest extracts and verifies the Bearer token from the
// Authorization header.
func claimsFromRequest(verifier TokenVerifier, request *http.Request) (*sec.AuthClaims, bool) {
	authHeader := request.Header.Get("Authorization")
	if authHeader == "" {
		return nil, false
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return nil, false
	}

	tokenString := strings.TrimSpace(authHeader[len(bearerPrefix):])
	if tokenString == "" {
		return nil, false
	}

	claims, err := verifier.VerifyToken(tokenString)
	if err != nil {
		return nil, false
	}

	return claims, true
}
