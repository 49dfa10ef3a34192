package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"siakad/backend/internal/dto"
	"siakad/backend/internal/service"
	"siakad/backend/pkg/jwt"
	"siakad/backend/pkg/response"
)

// AuthHandler serves the authentication endpoints.
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login exchanges email + password for a token pair.
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Validasi parameter gagal")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, 11001, "Email atau password salah")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Refresh rotates a refresh token into a new token pair.
// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Validasi parameter gagal")
		return
	}

	result, err := h.authSvc.Refresh(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			response.Unauthorized(c, 11002, "Refresh token sudah kedaluwarsa")
		case errors.Is(err, jwt.ErrTokenInvalid):
			response.Unauthorized(c, 11003, "Refresh token tidak valid")
		case errors.Is(err, service.ErrUserNotFound):
			response.Unauthorized(c, 11003, "Refresh token tidak valid")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Logout revokes the current access token.
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := MustGetClaims(c)
	if !ok {
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), claims); err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// ChangePassword rotates the caller's own password.
// POST /api/v1/auth/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Validasi parameter gagal")
		return
	}

	if err := h.authSvc.ChangePassword(c.Request.Context(), userID, &req); err != nil {
		switch {
		case errors.Is(err, service.ErrWrongPassword):
			response.BadRequest(c, 11004, "Password lama salah")
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 12001, "User tidak ditemukan")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, nil)
}

// Me returns the caller's own account.
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	user, err := h.authSvc.Me(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 12001, "User tidak ditemukan")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, user)
}
