package handler

import (
	"WithTheLake/internal/api/config"
	"WithTheLake/internal/pkg/response"
	"WithTheLake/internal/service"

	"github.com/gin-gonic/gin"
)

type CleanupHandler struct {
	cleanupSvc service.CleanupService
}

func NewCleanupHandler(cleanupSvc service.CleanupService) *CleanupHandler {
	return &CleanupHandler{
		cleanupSvc: cleanupSvc,
	}
}

// Cleanup 外部调度器触发的软删内容物理清理
func (s *CleanupHandler) Cleanup(c *gin.Context) {
	result, err := s.cleanupSvc.PurgeExpired(c.Request.Context(), config.Cfg.Cleanup.RetentionDays)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
