package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"golang-stock-briefing/internal/briefing/config"
	"golang-stock-briefing/internal/entity"
	"golang-stock-briefing/pkg/logger"
	"golang-stock-briefing/pkg/utils"
)

// SchedulerService triggers the daily briefing pipeline on a cron
// schedule, or once on demand.
type SchedulerService interface {
	Start(ctx context.Context) error
	RunOnce(ctx context.Context) *entity.PipelineRun
}

type schedulerService struct {
	workflow *Workflow
	cfg      *config.Config
	logger   *logger.Logger
}

// NewSchedulerService creates a new SchedulerService.
func NewSchedulerService(workflow *Workflow, cfg *config.Config, log *logger.Logger) SchedulerService {
	return &schedulerService{workflow: workflow, cfg: cfg, logger: log}
}

// Start registers the cron entry and blocks until ctx is cancelled.
// Entries run in the configured timezone so the briefing goes out at
// local morning time regardless of the host clock.
func (s *schedulerService) Start(ctx context.Context) error {
	spec := s.cfg.Scheduler.Cron
	if spec == "" {
		spec = "0 7 * * *"
	}
	timezone := s.cfg.Scheduler.Timezone
	if timezone == "" {
		timezone = "Asia/Seoul"
	}
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return fmt.Errorf("invalid scheduler timezone %q: %w", timezone, err)
	}

	c := cron.New(cron.WithLocation(location))
	_, err = c.AddFunc(spec, func() {
		utils.GoSafe(func() {
			run := s.RunOnce(context.Background())
			s.logger.Info("Scheduled briefing run finished",
				logger.StringField("run_id", run.ID),
				logger.StringField("status", string(run.Status())),
			)
		})
	})
	if err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", spec, err)
	}

	c.Start()
	s.logger.Info("Briefing scheduler started",
		logger.StringField("cron", spec),
		logger.StringField("timezone", timezone),
	)

	<-ctx.Done()
	stopCtx := c.Stop()
	<-stopCtx.Done()
	s.logger.Info("Briefing scheduler stopped")
	return nil
}

// RunOnce executes a single pipeline run with the configured defaults.
func (s *schedulerService) RunOnce(ctx context.Context) *entity.PipelineRun {
	return s.workflow.Run(ctx, DefaultRunOptions(s.cfg))
}
