package cron

import (
	"ReplyKing/internal/api/config"
	"ReplyKing/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

const defaultPollSpec = "0 */5 * * * *"

type Manager struct {
	engine         *cron.Cron
	commentPollJob *job.CommentPollJob
}

func NewCronManager(commentPollJob *job.CommentPollJob) *Manager {
	return &Manager{
		engine:         cron.New(cron.WithSeconds()),
		commentPollJob: commentPollJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	spec := config.Cfg.Scheduler.PollSpec
	if spec == "" {
		spec = defaultPollSpec
	}
	if _, err := s.engine.AddJob(spec, s.commentPollJob); err != nil {
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
