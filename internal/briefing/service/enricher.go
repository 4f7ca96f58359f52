package service

import (
	"context"
	"fmt"

	"golang-stock-briefing/internal/briefing/repository"
	"golang-stock-briefing/internal/entity"
	"golang-stock-briefing/pkg/logger"
)

// Degradation records one enrichment step that fell back to a default
// instead of its provider output. Enrichment never aborts the pipeline;
// every failure is reported through this list.
type Degradation struct {
	Step   string `json:"step"`
	Reason string `json:"reason"`
}

// Enricher attaches news articles and AI-generated narrative text to a
// selected security. Providers are optional: a nil repository degrades
// that step rather than failing construction.
type Enricher struct {
	newsRepo repository.NewsRepository
	aiRepo   repository.AIRepository
	logger   *logger.Logger
}

// NewEnricher creates a new Enricher. newsRepo and aiRepo may be nil
// when the corresponding provider is not configured.
func NewEnricher(newsRepo repository.NewsRepository, aiRepo repository.AIRepository, log *logger.Logger) *Enricher {
	return &Enricher{newsRepo: newsRepo, aiRepo: aiRepo, logger: log}
}

// Enrich runs news retrieval and the three AI generation steps. Each
// step is independent: one failure never prevents the others from
// running, and every text field is guaranteed non-empty on return.
func (e *Enricher) Enrich(ctx context.Context, sec *entity.SelectedSecurity, windowDays, newsLimit int, language string) (*entity.EnrichedSecurity, []Degradation) {
	enriched := &entity.EnrichedSecurity{
		SelectedSecurity: *sec,
		News:             []entity.NewsItem{},
	}
	var degradations []Degradation
	degrade := func(step, reason string) {
		degradations = append(degradations, Degradation{Step: step, Reason: reason})
		e.logger.WarnContext(ctx, "Enrichment step degraded",
			logger.StringField("symbol", sec.Symbol),
			logger.StringField("step", step),
			logger.StringField("reason", reason),
		)
	}

	if e.newsRepo == nil {
		degrade("news", "news provider not configured")
	} else {
		items, err := e.newsRepo.Search(ctx, sec.Symbol, sec.Name, windowDays, newsLimit)
		if err != nil {
			degrade("news", err.Error())
		} else {
			enriched.News = items
		}
	}

	if e.aiRepo == nil {
		degrade("news_summary", "ai provider not configured")
		degrade("analysis", "ai provider not configured")
		degrade("why_trending", "ai provider not configured")
		enriched.NewsSummary = fallbackNewsSummary(language, sec.Symbol, len(enriched.News) == 0)
		enriched.Analysis = fallbackAnalysis(language, sec.Symbol)
		enriched.WhyTrending = fallbackWhyTrending(language, sec.Symbol)
		return enriched, degradations
	}

	if len(enriched.News) == 0 {
		enriched.NewsSummary = fallbackNewsSummary(language, sec.Symbol, true)
	} else {
		summary, err := e.aiRepo.SummarizeNews(ctx, sec.Symbol, enriched.News, language)
		if err != nil {
			degrade("news_summary", err.Error())
			enriched.NewsSummary = fallbackNewsSummary(language, sec.Symbol, false)
		} else {
			enriched.NewsSummary = summary
		}
	}

	analysis, err := e.aiRepo.AnalyzeStock(ctx, sec, language)
	if err != nil {
		degrade("analysis", err.Error())
		enriched.Analysis = fallbackAnalysis(language, sec.Symbol)
	} else {
		enriched.Analysis = analysis
	}

	whyTrending, err := e.aiRepo.ExplainTrending(ctx, sec, enriched.News, language)
	if err != nil {
		degrade("why_trending", err.Error())
		enriched.WhyTrending = fallbackWhyTrending(language, sec.Symbol)
	} else {
		enriched.WhyTrending = whyTrending
	}

	return enriched, degradations
}

func fallbackNewsSummary(language, symbol string, noNews bool) string {
	if language == "ko" {
		if noNews {
			return fmt.Sprintf("%s 관련 최근 뉴스가 없습니다.", symbol)
		}
		return fmt.Sprintf("%s 관련 뉴스 요약을 생성할 수 없습니다.", symbol)
	}
	if noNews {
		return fmt.Sprintf("No recent news found for %s.", symbol)
	}
	return fmt.Sprintf("News summary unavailable for %s.", symbol)
}

func fallbackAnalysis(language, symbol string) string {
	if language == "ko" {
		return fmt.Sprintf("%s에 대한 분석을 생성할 수 없습니다.", symbol)
	}
	return fmt.Sprintf("Analysis unavailable for %s.", symbol)
}

func fallbackWhyTrending(language, symbol string) string {
	if language == "ko" {
		return fmt.Sprintf("%s이(가) 화제가 된 이유를 분석할 수 없습니다.", symbol)
	}
	return fmt.Sprintf("No explanation available for why %s is trending.", symbol)
}
