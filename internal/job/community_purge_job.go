package job

import (
	"WithTheLake/internal/api/config"
	"WithTheLake/internal/pkg/logger"
	"WithTheLake/internal/service"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// CommunityPurgeJob 软删超期的社区内容每日物理清理，
// 与外部调度器触发的清理接口互为兜底
type CommunityPurgeJob struct {
	cleanupSvc service.CleanupService
}

func NewCommunityPurgeJob(cleanupSvc service.CleanupService) *CommunityPurgeJob {
	return &CommunityPurgeJob{
		cleanupSvc: cleanupSvc,
	}
}

func (s *CommunityPurgeJob) Run() {
	traceID := "job-purge-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	result, err := s.cleanupSvc.PurgeExpired(ctx, config.Cfg.Cleanup.RetentionDays)
	if err != nil {
		log.ErrorContext(ctx, "community purge failed", "err", err)
		return
	}

	log.InfoContext(ctx, "community purge finished",
		"deleted_comments", result.DeletedComments,
		"deleted_posts", result.DeletedPosts,
		"errors", len(result.Errors))
}
