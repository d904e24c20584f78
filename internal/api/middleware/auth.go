package middleware

import (
	"Atrium/internal/pkg/redis"
	"Atrium/internal/pkg/response"
	"Atrium/internal/pkg/security"
	"Atrium/internal/repository"
	"Atrium/internal/service"
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 验证 JWT 并将用户身份注入 Context。
// Token 对应的用户必须仍然存在，已删除账号的 Token 立即失效。
func AuthMiddleware(userRepo repository.UserRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, http.StatusUnauthorized, service.ErrTokenMissing.Error())
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		if redis.Enabled() {
			signature, err := security.ExtractSignature(tokenString)
			if err != nil {
				response.Fail(c, http.StatusUnauthorized, service.ErrTokenMissing.Error())
				c.Abort()
				return
			}

			value, err := redis.GetValue(c.Request.Context(), "token:deny:"+signature)
			if err != nil {
				response.Fail(c, http.StatusInternalServerError, service.UnExpectedError.Error())
				c.Abort()
				return
			}
			if value != "" {
				response.Fail(c, http.StatusUnauthorized, service.ErrTokenInvalid.Error())
				c.Abort()
				return
			}
		}

		claims, err := security.ValidateToken(tokenString)
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, service.ErrTokenInvalid.Error())
			c.Abort()
			return
		}

		user, err := userRepo.GetUserById(c.Request.Context(), claims.UserID)
		if err != nil {
			response.Fail(c, http.StatusInternalServerError, service.UnExpectedError.Error())
			c.Abort()
			return
		}
		if user == nil {
			response.Fail(c, http.StatusUnauthorized, service.ErrTokenInvalid.Error())
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Set("user_email", user.Email)
		c.Set("user_name", user.Name)

		newCtx := context.WithValue(c.Request.Context(), "user_id", user.ID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}
