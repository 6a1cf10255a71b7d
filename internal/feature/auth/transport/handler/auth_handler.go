// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"trackapp/internal/feature/auth/domain/entity"
	"trackapp/internal/feature/auth/transport/http/dto"
	"trackapp/internal/feature/auth/usecase"
	jwtmw "trackapp/internal/platform/jwt"
)

// invalidCredentialsMsg is returned for both unknown email and wrong
// password; only the status code distinguishes the two cases.
const invalidCredentialsMsg = "Invalid password or email."

// AuthUsecase defines the usecase for authentication operations.
// Following Go convention, the interface is defined by the consumer (handler),
// not the provider (usecase).
type AuthUsecase interface {
	// Signup registers a new user and returns a token for the new account.
	Signup(ctx context.Context, email, password string) (string, error)
	// Signin authenticates a user and returns a token on success.
	Signin(ctx context.Context, email, password string) (string, error)
}

// AuthHandler processes HTTP requests for authentication operations.
// It depends on the AuthUsecase interface and handles JSON requests/responses.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler instance.
// Constructor for dependency injection.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup handles the user registration endpoint.
// - Binds the request JSON to SignupReq
// - Returns 422 when a required field is missing
// - Returns 422 with the store's message on creation failure (duplicate email)
// - Returns 200 with a bearer token on success
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})
		return
	}
	token, err := h.auth.Signup(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("signup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})
		return
	}
	slog.Info("user signup successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}

// Signin handles the user login endpoint.
// - Binds the request JSON to SigninReq; 422 when a field is missing
// - Returns 404 for an unknown email, 422 for a wrong password,
//   both with the same body
// - Returns 200 with a bearer token on success
func (h *AuthHandler) Signin(c *gin.Context) {
	var req dto.SigninReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signin validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})
		return
	}
	token, err := h.auth.Signin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("signin failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: invalidCredentialsMsg})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: invalidCredentialsMsg})
		return
	}
	slog.Info("user signin successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}

// Whoami answers the authenticated diagnostic endpoint with the caller's
// email as plain text. The auth middleware lets a token for a since-deleted
// user through without a resolved record; that case surfaces here as a 500.
func (h *AuthHandler) Whoami(c *gin.Context) {
	v, ok := c.Get(jwtmw.ContextUser)
	if !ok {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "user not resolved"})
		return
	}
	user, ok := v.(*entity.User)
	if !ok || user == nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "user not resolved"})
		return
	}
	c.String(http.StatusOK, user.Email)
}
