// Copyright (c) 2026 Creata. All rights reserved.

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/creata-app/creata/internal/platform/middleware"
	"github.com/creata-app/creata/internal/platform/request"
	"github.com/creata-app/creata/internal/platform/respond"
)

// # HTTP Transport

// Handler exposes authentication endpoints over HTTP.
type Handler struct {
	service  *Service
	verifier middleware.TokenVerifier
}

// NewHandler constructs the auth HTTP handler.
func NewHandler(service *Service, verifier middleware.TokenVerifier) *Handler {
	return &Handler{service: service, verifier: verifier}
}

// Routes wires the authentication endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/register", handler.register)
	router.Post("/login", handler.login)
	router.Post("/password/forgot", handler.forgotPassword)
	router.Post("/password/reset", handler.resetPassword)

	router.Group(func(protected chi.Router) {
		protected.Use(middleware.Authenticate(handler.verifier))
		protected.Get("/me", handler.me)
	})

	return router
}

// # Request Payloads

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// # Endpoint Handlers

func (handler *Handler) register(writer http.ResponseWriter, httpRequest *http.Request) {
	var payload registerRequest
	if err := request.DecodeJSON(writer, httpRequest, &payload); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	user, err := handler.service.Register(httpRequest.Context(), RegisterInput{
		Name:     payload.Name,
		Email:    payload.Email,
		Password: payload.Password,
	})
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	respond.Created(writer, user)
}

func (handler *Handler) login(writer http.ResponseWriter, httpRequest *http.Request) {
	var payload loginRequest
	if err := request.DecodeJSON(writer, httpRequest, &payload); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	session, err := handler.service.Login(httpRequest.Context(), LoginInput{
		Email:    payload.Email,
		Password: payload.Password,
	})
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	respond.OK(writer, session)
}

func (handler *Handler) forgotPassword(writer http.ResponseWriter, httpRequest *http.Request) {
	var payload forgotPasswordRequest
	if err := request.DecodeJSON(writer, httpRequest, &payload); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	// The raw token would be delivered out of band (email). The response
	// never reveals whether the address exists.
	if _, err := handler.service.RequestPasswordReset(httpRequest.Context(), payload.Email); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	respond.OK(writer, map[string]string{
		"message": "If the email exists, a reset link has been sent",
	})
}

func (handler *Handler) resetPassword(writer http.ResponseWriter, httpRequest *http.Request) {
	var payload resetPasswordRequest
	if err := request.DecodeJSON(writer, httpRequest, &payload); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	if err := handler.service.ResetPassword(httpRequest.Context(), payload.Token, payload.NewPassword); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	respond.OK(writer, map[string]string{
		"message": "Password has been reset",
	})
}

func (handler *Handler) me(writer http.ResponseWriter, httpRequest *http.Request) {
	claims, err := request.RequiredClaims(httpRequest)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	user, err := handler.service.GetUser(httpRequest.Context(), claims.UserID)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	respond.OK(writer, user)
}
