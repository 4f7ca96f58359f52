package service

import (
	"context"
	"fmt"
	"time"

	"golang-stock-briefing/internal/briefing/renderer"
	"golang-stock-briefing/internal/entity"
	"golang-stock-briefing/pkg/logger"
	"golang-stock-briefing/pkg/utils"
)

// Composer assembles the final briefing document from an enriched
// security and optionally renders it to an artifact on disk.
type Composer struct {
	renderer renderer.Renderer
	logger   *logger.Logger

	now func() time.Time
}

// NewComposer creates a new Composer. r may be nil when no artifact
// rendering is configured.
func NewComposer(r renderer.Renderer, log *logger.Logger) *Composer {
	return &Composer{
		renderer: r,
		logger:   log,
		now:      utils.TimeNowKST,
	}
}

// Compose builds the briefing document. Composition is deterministic
// for a given enriched security and calendar day; rendering failures
// leave ImagePath empty and never fail composition.
func (c *Composer) Compose(ctx context.Context, enriched *entity.EnrichedSecurity, language string) *entity.BriefingDocument {
	generatedAt := c.now()

	doc := &entity.BriefingDocument{
		Title:       briefingTitle(language, enriched.Symbol, generatedAt),
		Summary:     enriched.Analysis,
		GeneratedAt: generatedAt,
	}

	analysisHeading := fmt.Sprintf("%s (%s)", enriched.Name, enriched.Symbol)
	if enriched.Name == "" {
		analysisHeading = enriched.Symbol
	}
	doc.Sections = append(doc.Sections, entity.BriefingSection{
		TopicKey: enriched.Symbol,
		Heading:  analysisHeading,
		Body:     enriched.Analysis,
	})

	if len(enriched.News) > 0 {
		doc.Sections = append(doc.Sections, entity.BriefingSection{
			TopicKey: enriched.Symbol,
			Heading:  newsHeading(language),
			Body:     enriched.NewsSummary,
		})
	}

	// The trending explanation closes every briefing, fallback text included.
	doc.Sections = append(doc.Sections, entity.BriefingSection{
		TopicKey: enriched.Symbol,
		Heading:  whyTrendingHeading(language, enriched.Symbol),
		Body:     enriched.WhyTrending,
	})

	if c.renderer != nil {
		path, err := c.renderer.Render(ctx, doc, enriched)
		if err != nil {
			c.logger.WarnContext(ctx, "Briefing artifact rendering failed",
				logger.StringField("symbol", enriched.Symbol),
				logger.ErrorField(err),
			)
		} else {
			doc.ImagePath = path
		}
	}

	return doc
}

func briefingTitle(language, symbol string, t time.Time) string {
	if language == "ko" {
		return fmt.Sprintf("오늘의 화제 종목 브리핑: %s (%s)", symbol, t.Format("2006년 01월 02일"))
	}
	return fmt.Sprintf("Daily Trending Stock Briefing: %s (%s)", symbol, t.Format("January 2, 2006"))
}

func newsHeading(language string) string {
	if language == "ko" {
		return "주요 뉴스 요약"
	}
	return "News Summary"
}

func whyTrendingHeading(language, symbol string) string {
	if language == "ko" {
		return fmt.Sprintf("%s이(가) 화제가 된 이유", symbol)
	}
	return fmt.Sprintf("Why %s Is Trending", symbol)
}
