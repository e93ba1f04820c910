package middleware

import (
	"WithTheLake/internal/pkg/consts"
	"WithTheLake/internal/pkg/redis"
	"WithTheLake/internal/pkg/response"
	"WithTheLake/internal/pkg/security"
	"context"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 负责验证 JWT 并将用户身份信息注入 Context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, response.Unauthorized, "로그인이 필요합니다")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		signature, err := security.ExtractSignature(tokenString)
		if err != nil {
			response.Fail(c, response.Unauthorized, "로그인이 필요합니다")
			c.Abort()
			return
		}

		// 登出后的 Token 签名进入黑名单
		value, err := redis.GetValue(c.Request.Context(), consts.AuthCheckedKey+signature)
		if err != nil {
			response.Fail(c, response.InternalServerError, "일시적인 오류가 발생했습니다")
			c.Abort()
			return
		}
		if value != "" {
			response.Fail(c, response.Unauthorized, "로그인이 만료되었습니다")
			c.Abort()
			return
		}

		claims, err := security.ValidateToken(tokenString)
		if err != nil {
			response.Fail(c, response.Unauthorized, "로그인이 만료되었습니다")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("roles", claims.Roles)

		newCtx := context.WithValue(c.Request.Context(), "user_id", claims.UserID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}
