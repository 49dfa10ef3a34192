package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"siakad/backend/pkg/jwt"
	"siakad/backend/pkg/redis"
	"siakad/backend/pkg/response"
)

// JWTAuth validates the Bearer access token and injects the caller's
// identity into the context. Revoked tokens (logged-out JTIs) are
// rejected when Redis is available; without Redis the signature and
// expiry checks still apply.
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10001, "Token tidak ditemukan")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Unauthorized(c, 10001, "Format token tidak valid")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			if err == jwt.ErrTokenExpired {
				response.Unauthorized(c, 10002, "Token sudah kedaluwarsa")
			} else {
				response.Unauthorized(c, 10002, "Token tidak valid")
			}
			c.Abort()
			return
		}

		if claims.TokenType != "access" {
			response.Unauthorized(c, 10002, "Token tidak valid")
			c.Abort()
			return
		}

		if rdb != nil {
			revoked, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && revoked {
				response.Unauthorized(c, 10002, "Token sudah dicabut")
				c.Abort()
				return
			}
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("class_id", claims.ClassID)
		c.Set("claims", claims)

		c.Next()
	}
}

// RoleAuth allows only the listed roles past. Must run after JWTAuth.
func RoleAuth(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Unauthorized(c, 10002, "Tidak terautentikasi")
			c.Abort()
			return
		}

		roleStr, _ := role.(string)
		for _, allowed := range allowedRoles {
			if roleStr == allowed {
				c.Next()
				return
			}
		}

		response.Forbidden(c, 10003, "Tidak memiliki akses")
		c.Abort()
	}
}
