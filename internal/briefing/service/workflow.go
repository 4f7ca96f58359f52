package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang-stock-briefing/internal/briefing/repository"
	"golang-stock-briefing/internal/entity"
	"golang-stock-briefing/pkg/common"
	"golang-stock-briefing/pkg/logger"
	"golang-stock-briefing/pkg/utils"
)

// RunOptions parameterizes one pipeline run. API requests and the
// scheduler both reduce to this shape.
type RunOptions struct {
	Categories       []entity.ScreenerCategory
	LimitPerCategory int
	NewsWindowDays   int
	NewsLimit        int
	Language         string
	Channels         []entity.ChannelSpec
}

// Workflow orchestrates the selection, enrichment, composition and
// dispatch stages of one briefing run.
type Workflow struct {
	selector   *Selector
	enricher   *Enricher
	composer   *Composer
	dispatcher *Dispatcher
	runRepo    repository.RunRepository
	logger     *logger.Logger
}

// NewWorkflow creates a new Workflow.
func NewWorkflow(
	selector *Selector,
	enricher *Enricher,
	composer *Composer,
	dispatcher *Dispatcher,
	runRepo repository.RunRepository,
	log *logger.Logger,
) *Workflow {
	return &Workflow{
		selector:   selector,
		enricher:   enricher,
		composer:   composer,
		dispatcher: dispatcher,
		runRepo:    runRepo,
		logger:     log,
	}
}

// Run executes one full pipeline run. It always returns a terminal
// PipelineRun: selection failure aborts the run, enrichment degrades,
// composition cannot fail, and dispatch failures are recorded per
// channel without failing the run.
func (w *Workflow) Run(ctx context.Context, opts RunOptions) *entity.PipelineRun {
	started := time.Now()
	run := &entity.PipelineRun{
		StepsCompleted: []string{},
		StepsFailed:    []string{},
		CreatedAt:      utils.TimeNowKST(),
	}

	stage := common.StageSelecting
	defer func() {
		if r := recover(); r != nil {
			run.StepsFailed = append(run.StepsFailed, stage)
			run.Success = false
			run.Error = fmt.Sprintf("panic during %s: %v", stage, r)
			w.logger.ErrorContext(ctx, "Pipeline run aborted by panic",
				logger.StringField("stage", stage),
				logger.Field("panic", r),
			)
		}
	}()

	w.logger.InfoContext(ctx, "Starting briefing pipeline run",
		logger.Field("categories", opts.Categories),
		logger.StringField("language", opts.Language),
		logger.IntField("channels", len(opts.Channels)),
	)

	selected, err := w.selector.Select(ctx, opts.Categories, opts.LimitPerCategory)
	if err != nil {
		run.StepsFailed = append(run.StepsFailed, common.StageSelecting)
		run.Success = false
		if errors.Is(err, ErrNoCandidates) {
			run.Error = "no trending security found"
			w.logger.InfoContext(ctx, "Pipeline run finished without a candidate")
		} else {
			run.Error = err.Error()
			w.logger.ErrorContext(ctx, "Selection stage failed", logger.ErrorField(err))
		}
		w.persist(ctx, run)
		return run
	}
	run.StepsCompleted = append(run.StepsCompleted, common.StageSelecting)

	stage = common.StageEnriching
	enriched, degradations := w.enricher.Enrich(ctx, selected, opts.NewsWindowDays, opts.NewsLimit, opts.Language)
	run.Security = enriched
	run.StepsCompleted = append(run.StepsCompleted, common.StageEnriching)
	if len(degradations) > 0 {
		w.logger.WarnContext(ctx, "Enrichment completed with degradations",
			logger.StringField("symbol", enriched.Symbol),
			logger.IntField("degraded_steps", len(degradations)),
		)
	}

	stage = common.StageComposing
	run.Briefing = w.composer.Compose(ctx, enriched, opts.Language)
	run.StepsCompleted = append(run.StepsCompleted, common.StageComposing)

	// Snapshot before dispatch so delivery failures cannot lose the briefing.
	w.persist(ctx, run)

	stage = common.StageDispatching
	report := w.dispatcher.Dispatch(ctx, run.Briefing, opts.Channels)
	run.Dispatch = report
	run.StepsCompleted = append(run.StepsCompleted, common.StageDispatching)

	run.Success = true
	// Re-save under the same id so the snapshot carries the send results.
	w.persist(ctx, run)
	w.logger.InfoContext(ctx, "Briefing pipeline run finished",
		logger.StringField("run_id", run.ID),
		logger.StringField("symbol", enriched.Symbol),
		logger.IntField("sent", report.TotalSent),
		logger.IntField("failed", report.TotalFailed),
		logger.Field("duration", time.Since(started).String()),
	)
	return run
}

func (w *Workflow) persist(ctx context.Context, run *entity.PipelineRun) {
	if w.runRepo == nil {
		return
	}
	if _, err := w.runRepo.Save(ctx, run); err != nil {
		w.logger.ErrorContext(ctx, "Failed to persist run snapshot",
			logger.StringField("symbol", run.Symbol()),
			logger.ErrorField(err),
		)
	}
}
