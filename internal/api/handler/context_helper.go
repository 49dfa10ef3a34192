package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"siakad/backend/internal/model"
	"siakad/backend/internal/service"
	"siakad/backend/pkg/jwt"
	"siakad/backend/pkg/response"
)

// MustGetUserID pulls user_id out of the Gin context. Returns false and
// writes a 401 when the auth middleware did not inject it; callers
// should return immediately on ok=false.
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "Tidak terautentikasi")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "Tidak terautentikasi")
		return "", false
	}
	return s, true
}

// MustGetRole pulls role out of the Gin context.
func MustGetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get("role")
	if !exists {
		response.Unauthorized(c, 10002, "Tidak terautentikasi")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "Tidak terautentikasi")
		return "", false
	}
	return s, true
}

// MustGetClaims pulls the parsed token claims out of the Gin context.
func MustGetClaims(c *gin.Context) (*jwt.Claims, bool) {
	v, exists := c.Get("claims")
	if !exists {
		response.Unauthorized(c, 10002, "Tidak terautentikasi")
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	if !ok {
		response.Unauthorized(c, 10002, "Tidak terautentikasi")
		return nil, false
	}
	return claims, true
}

// resolveTeacherID maps the logged-in account to its teacher record.
// Admins get an empty teacher id, which services treat as an override.
func resolveTeacherID(c *gin.Context, teacherSvc service.TeacherService) (string, bool) {
	role, ok := MustGetRole(c)
	if !ok {
		return "", false
	}
	if role == model.RoleAdmin {
		return "", true
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return "", false
	}

	teacher, err := teacherSvc.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrTeacherNotFound) {
			response.Forbidden(c, 10003, "Akun tidak terhubung dengan data guru")
			return "", false
		}
		response.InternalError(c)
		return "", false
	}
	return teacher.ID, true
}
