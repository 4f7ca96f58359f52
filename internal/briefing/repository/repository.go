package repository

import (
	"context"
	"errors"

	"golang-stock-briefing/internal/briefing/dto"
	"golang-stock-briefing/internal/entity"
)

// ErrRunNotFound is returned when a run snapshot id does not exist.
var ErrRunNotFound = errors.New("briefing run not found")

// QuoteRepository fetches ranked candidates from a screener category.
// Results keep the provider's native ranking. Any error means the
// category yielded no usable candidates.
type QuoteRepository interface {
	Fetch(ctx context.Context, category entity.ScreenerCategory, limit int) ([]entity.Candidate, error)
}

// NewsRepository searches recent news for a security.
type NewsRepository interface {
	Search(ctx context.Context, symbol, name string, windowDays, limit int) ([]entity.NewsItem, error)
}

// AIRepository generates the three briefing commentary texts.
type AIRepository interface {
	SummarizeNews(ctx context.Context, symbol string, news []entity.NewsItem, language string) (string, error)
	AnalyzeStock(ctx context.Context, security *entity.SelectedSecurity, language string) (string, error)
	ExplainTrending(ctx context.Context, security *entity.SelectedSecurity, news []entity.NewsItem, language string) (string, error)
}

// RunRepository persists and lists pipeline run snapshots.
type RunRepository interface {
	Save(ctx context.Context, run *entity.PipelineRun) (string, error)
	List(ctx context.Context, filter *dto.RunFilter) ([]entity.RunSummary, int, error)
	Get(ctx context.Context, id string) (*entity.PipelineRun, error)
}
