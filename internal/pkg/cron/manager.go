package cron

import (
	"WithTheLake/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine          *cron.Cron
	postViewJob     *job.PostViewJob
	communityPurge  *job.CommunityPurgeJob
	weeklyReportJob *job.WeeklyReportJob
}

func NewCronManager(
	postViewJob *job.PostViewJob,
	communityPurge *job.CommunityPurgeJob,
	weeklyReportJob *job.WeeklyReportJob,
) *Manager {
	return &Manager{
		engine:          cron.New(cron.WithSeconds()),
		postViewJob:     postViewJob,
		communityPurge:  communityPurge,
		weeklyReportJob: weeklyReportJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	// 浏览量增量每分钟刷库
	if _, err := s.engine.AddJob("0 * * * * *", s.postViewJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob("@daily", s.communityPurge); err != nil {
		return err
	}
	// 周一凌晨生成上周周报
	if _, err := s.engine.AddJob("0 0 4 * * 1", s.weeklyReportJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
