package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"siakad/backend/internal/dto"
	"siakad/backend/internal/service"
	"siakad/backend/pkg/response"
)

// UserHandler serves account management (admin only).
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// Create registers an account directly.
// POST /api/v1/users
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Validasi parameter gagal")
		return
	}

	user, err := h.userSvc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailExists) {
			response.BadRequest(c, 12002, "Email sudah terdaftar")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, user)
}

// GetByID returns one account.
// GET /api/v1/users/:id
func (h *UserHandler) GetByID(c *gin.Context) {
	user, err := h.userSvc.GetByID(c.Request.Context(), c.Param("id"))
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

// List pages through accounts.
// GET /api/v1/users
func (h *UserHandler) List(c *gin.Context) {
	var req dto.UserListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "Validasi parameter gagal")
		return
	}

	users, total, err := h.userSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, users, total, req.GetPage(), req.GetPageSize())
}

// Update patches an account.
// PATCH /api/v1/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Validasi parameter gagal")
		return
	}

	user, err := h.userSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 12001, "User tidak ditemukan")
		case errors.Is(err, service.ErrEmailExists):
			response.BadRequest(c, 12002, "Email sudah terdaftar")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, user)
}

// Delete removes an account. Self-deletion is refused.
// DELETE /api/v1/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.userSvc.Delete(c.Request.Context(), actorID, c.Param("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 12001, "User tidak ditemukan")
		case errors.Is(err, service.ErrUserSelfDelete):
			response.BadRequest(c, 12003, "Tidak dapat menghapus akun sendiri")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, nil)
}

// ResetPassword issues a temporary password for an account.
// POST /api/v1/users/:id/reset-password
func (h *UserHandler) ResetPassword(c *gin.Context) {
	result, err := h.userSvc.ResetPassword(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 12001, "User tidak ditemukan")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}
