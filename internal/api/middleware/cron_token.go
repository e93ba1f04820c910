package middleware

import (
	"WithTheLake/internal/api/config"
	"WithTheLake/internal/pkg/response"
	log "log/slog"
	"strings"

	"github.com/gin-gonic/gin"
)

// CronTokenMiddleware 外部调度器触发的维护接口鉴权。
// 只在 production 环境强制校验，其他环境放行以便联调。
func CronTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.Cfg.Server.Env != "production" {
			c.Next()
			return
		}

		expected := config.Cfg.Cleanup.Token
		if expected == "" {
			log.Warn("cleanup token not configured, rejecting request")
			response.Fail(c, response.Unauthorized, "권한이 없습니다")
			c.Abort()
			return
		}

		authHeader := c.GetHeader("Authorization")
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") || token != expected {
			response.Fail(c, response.Unauthorized, "권한이 없습니다")
			c.Abort()
			return
		}

		c.Next()
	}
}
