// Copyright (c) 2026 Creata. All rights reserved.

// Package request provides helpers for decoding and validating incoming
// HTTP requests.
package request

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/creata-app/creata/internal/platform/apperr"
	"github.com/creata-app/creata/internal/platform/ctxutil"
	"github.com/creata-app/creata/internal/platform/sec"
	"github.com/creata-app/creata/internal/platform/validate"
)

// maxBodyBytes caps request payloads at 1 MiB to guard against abuse.
const maxBodyBytes = 1 << 20

// DecodeJSON reads and decodes a JSON request body into destination.
//
// # Returns
//   - error: [validate.ErrInvalidJSON] wrapped in an [apperr.AppError] when
//     the body is malformed, missing, or exceeds the size limit.
func DecodeJSON(writer http.ResponseWriter, httpRequest *http.Request, destination any) error {
	httpRequest.Body = http.MaxBytesReader(writer, httpRequest.Body, maxBodyBytes)

	decoder := json.NewDecoder(httpRequest.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(destination); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.ValidationError("Request body is required")
		}
		return apperr.ValidationError(validate.ErrInvalidJSON.Error())
	}

	// Reject trailing garbage after the JSON document.
	if decoder.More() {
		return apperr.ValidationError(validate.ErrInvalidJSON.Error())
	}

	return nil
}

// ID extracts and validates a UUID path parameter.
func ID(httpRequest *http.Request, name string) (string, error) {
	raw := chi.URLParam(httpRequest, name)

	validator := validate.New().UUID(name, raw)
	if validator.HasErrors() {
		return "", validator.Err()
	}

	return raw, nil
}

// Param extracts a raw string path parameter without validation.
func Param(httpRequest *http.Request, name string) string {
	return chi.URLParam(httpRequest, name)
}

// Claims returns the authenticated user's claims, or nil for anonymous
// requests.
func Claims(httpRequest *http.Request) *sec.AuthClaims {
	return ctxutil.GetAuthUser(httpRequest.Context())
}

// RequiredClaims returns the authenticated user's claims or an
// Unauthorized error when the request is anonymous.
func RequiredClaims(httpRequest *http.Request) (*sec.AuthClaims, error) {
	claims := ctxutil.GetAuthUser(httpRequest.Context())
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}
	return claims, nil
}
