package job

import (
	"WithTheLake/internal/pkg/logger"
	"WithTheLake/internal/pkg/util"
	"WithTheLake/internal/repository"
	"WithTheLake/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// WeeklyReportJob 每周一为上周有记录的登录用户预生成周报。
// 生成是幂等的，用户主动触发过的周不会重复入库。
type WeeklyReportJob struct {
	recordRepo repository.EmotionRecordRepo
	reportSvc  service.ReportService
}

func NewWeeklyReportJob(recordRepo repository.EmotionRecordRepo, reportSvc service.ReportService) *WeeklyReportJob {
	return &WeeklyReportJob{
		recordRepo: recordRepo,
		reportSvc:  reportSvc,
	}
}

func (s *WeeklyReportJob) Run() {
	traceID := "job-report-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	prevWeek := util.PrevWeek(time.Now())
	weekKey := util.ISOWeekKey(prevWeek)
	start, end := util.WeekRange(prevWeek)

	userIDs, err := s.recordRepo.GetActiveUserIDsBetween(ctx, start, end)
	if err != nil {
		log.ErrorContext(ctx, "scan active users error", "week", weekKey, "err", err)
		return
	}

	log.InfoContext(ctx, "start generating weekly reports", "week", weekKey, "user_count", len(userIDs))

	successCount := 0
	for _, uid := range userIDs {
		if _, err := s.reportSvc.GenerateReport(ctx, uid, weekKey); err != nil {
			log.ErrorContext(ctx, "generate weekly report error", "uid", uid, "week", weekKey, "err", err)
			continue
		}
		successCount++
	}

	log.InfoContext(ctx, "weekly reports generated",
		"week", weekKey,
		"total_count", len(userIDs),
		"success_count", successCount)
}
