package middleware

import (
	"WithTheLake/internal/pkg/logger"
	"WithTheLake/internal/pkg/mongo"
	"context"
	log "log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

var auditActions = map[string]string{
	http.MethodPost:   "create",
	http.MethodPut:    "update",
	http.MethodPatch:  "update",
	http.MethodDelete: "delete",
}

// AdminAuditMiddleware 后台写操作留痕，异步落 Mongo，失败只记日志
func AdminAuditMiddleware(auditRepo mongo.AuditLogRepo, resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		action, ok := auditActions[c.Request.Method]
		if !ok || c.Writer.Status() != http.StatusOK {
			return
		}

		entry := &mongo.AuditLogModel{
			OperatorID: c.GetUint64("user_id"),
			Action:     action,
			Resource:   resource,
			ResourceID: c.Param("id"),
			Detail:     c.Request.URL.Path,
			TraceID:    c.GetString(logger.TraceIDKey),
			CreatedAt:  time.Now(),
		}

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			if err := auditRepo.Append(ctx, entry); err != nil {
				log.Error("admin audit append failed", "resource", resource, "err", err)
			}
		}()
	}
}
