package service

import (
	"context"
	"fmt"

	"golang-stock-briefing/internal/briefing/config"
	"golang-stock-briefing/internal/briefing/dto"
	"golang-stock-briefing/internal/briefing/repository"
	"golang-stock-briefing/internal/entity"
	"golang-stock-briefing/pkg/logger"
)

// ValidationError marks a request that failed input validation so the
// HTTP layer can map it to a 400 instead of a 500.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// BriefingService is the API-facing use case layer on top of the
// pipeline workflow and the run snapshot store.
type BriefingService interface {
	Create(ctx context.Context, req *dto.CreateBriefingRequest) (*entity.PipelineRun, error)
	List(ctx context.Context, filter *dto.RunFilter) (*dto.RunListResponse, error)
	Get(ctx context.Context, id string) (*entity.PipelineRun, error)
	Resend(ctx context.Context, id string, req *dto.SendBriefingRequest) (*entity.DispatchReport, error)
	Trending(ctx context.Context, categories []string, count int) (map[entity.ScreenerCategory][]entity.Candidate, error)
	News(ctx context.Context, symbol string, windowDays, limit int) ([]entity.NewsItem, error)
}

type briefingService struct {
	workflow   *Workflow
	dispatcher *Dispatcher
	runRepo    repository.RunRepository
	quoteRepo  repository.QuoteRepository
	newsRepo   repository.NewsRepository
	cfg        *config.Config
	logger     *logger.Logger
}

// NewBriefingService creates a new BriefingService.
func NewBriefingService(
	workflow *Workflow,
	dispatcher *Dispatcher,
	runRepo repository.RunRepository,
	quoteRepo repository.QuoteRepository,
	newsRepo repository.NewsRepository,
	cfg *config.Config,
	log *logger.Logger,
) BriefingService {
	return &briefingService{
		workflow:   workflow,
		dispatcher: dispatcher,
		runRepo:    runRepo,
		quoteRepo:  quoteRepo,
		newsRepo:   newsRepo,
		cfg:        cfg,
		logger:     log,
	}
}

// Create runs the pipeline synchronously with request overrides on top
// of the configured defaults and returns the finished run.
func (s *briefingService) Create(ctx context.Context, req *dto.CreateBriefingRequest) (*entity.PipelineRun, error) {
	opts := DefaultRunOptions(s.cfg)

	if len(req.Categories) > 0 {
		categories, err := ParseCategories(req.Categories)
		if err != nil {
			return nil, NewValidationError("%s", err.Error())
		}
		opts.Categories = categories
	}
	if req.Count > 0 {
		if req.Count > 100 {
			return nil, NewValidationError("count must be at most 100")
		}
		opts.LimitPerCategory = req.Count
	}
	if req.Language != "" {
		if req.Language != "ko" && req.Language != "en" {
			return nil, NewValidationError("unsupported language %q", req.Language)
		}
		opts.Language = req.Language
	}
	if req.Channels != nil {
		specs := make([]entity.ChannelSpec, 0, len(req.Channels))
		for _, channelReq := range req.Channels {
			spec, err := channelReq.ToEntity()
			if err != nil {
				return nil, NewValidationError("%s", err.Error())
			}
			specs = append(specs, spec)
		}
		opts.Channels = specs
	}

	return s.workflow.Run(ctx, opts), nil
}

// List returns a filtered page of stored run snapshots.
func (s *briefingService) List(ctx context.Context, filter *dto.RunFilter) (*dto.RunListResponse, error) {
	filter.Normalize()
	summaries, total, err := s.runRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &dto.RunListResponse{
		Briefings: summaries,
		Page:      filter.Page,
		Limit:     filter.Limit,
		Total:     total,
	}, nil
}

// Get loads one stored run snapshot.
func (s *briefingService) Get(ctx context.Context, id string) (*entity.PipelineRun, error) {
	return s.runRepo.Get(ctx, id)
}

// Resend re-dispatches a stored briefing to the requested channels. The
// stored snapshot is not modified.
func (s *briefingService) Resend(ctx context.Context, id string, req *dto.SendBriefingRequest) (*entity.DispatchReport, error) {
	if len(req.Channels) == 0 {
		return nil, NewValidationError("at least one channel is required")
	}
	specs := make([]entity.ChannelSpec, 0, len(req.Channels))
	for _, channelReq := range req.Channels {
		spec, err := channelReq.ToEntity()
		if err != nil {
			return nil, NewValidationError("%s", err.Error())
		}
		specs = append(specs, spec)
	}

	run, err := s.runRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if run.Briefing == nil {
		return nil, NewValidationError("run %s has no briefing to send", id)
	}

	return s.dispatcher.Dispatch(ctx, run.Briefing, specs), nil
}

// Trending fetches the current candidates per category without running
// the pipeline.
func (s *briefingService) Trending(ctx context.Context, categories []string, count int) (map[entity.ScreenerCategory][]entity.Candidate, error) {
	if len(categories) == 0 {
		categories = s.cfg.Screener.Categories
	}
	parsed, err := ParseCategories(categories)
	if err != nil {
		return nil, NewValidationError("%s", err.Error())
	}
	if count <= 0 {
		count = s.cfg.Screener.CountPerCategory
	}
	if count <= 0 {
		count = 10
	}

	result := make(map[entity.ScreenerCategory][]entity.Candidate, len(parsed))
	for _, category := range parsed {
		candidates, err := s.quoteRepo.Fetch(ctx, category, count)
		if err != nil {
			s.logger.WarnContext(ctx, "Screener category unavailable",
				logger.StringField("category", string(category)),
				logger.ErrorField(err),
			)
			result[category] = []entity.Candidate{}
			continue
		}
		result[category] = candidates
	}
	return result, nil
}

// News searches recent articles for one symbol.
func (s *briefingService) News(ctx context.Context, symbol string, windowDays, limit int) ([]entity.NewsItem, error) {
	if symbol == "" {
		return nil, NewValidationError("symbol is required")
	}
	if windowDays <= 0 {
		windowDays = s.cfg.News.WindowDays
	}
	if windowDays <= 0 {
		windowDays = 7
	}
	if limit <= 0 {
		limit = s.cfg.News.Limit
	}
	if limit <= 0 {
		limit = 5
	}
	return s.newsRepo.Search(ctx, symbol, symbol, windowDays, limit)
}
