package cron

import (
	"SocialPulse/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine            *cron.Cron
	contentMetricsJob *job.ContentMetricsJob
	hashtagTrendJob   *job.HashtagTrendJob
	userProfileJob    *job.UserProfileJob
}

func NewCronManager(
	contentMetricsJob *job.ContentMetricsJob,
	hashtagTrendJob *job.HashtagTrendJob,
	userProfileJob *job.UserProfileJob,
) *Manager {
	return &Manager{
		engine:            cron.New(cron.WithSeconds()),
		contentMetricsJob: contentMetricsJob,
		hashtagTrendJob:   hashtagTrendJob,
		userProfileJob:    userProfileJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("@hourly", s.contentMetricsJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob("@daily", s.hashtagTrendJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob("@daily", s.userProfileJob); err != nil {
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
