package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang-stock-briefing/internal/entity"
	"golang-stock-briefing/pkg/logger"
)

type fakeRenderer struct {
	path string
	err  error
}

func (f *fakeRenderer) Render(context.Context, *entity.BriefingDocument, *entity.EnrichedSecurity) (string, error) {
	return f.path, f.err
}

func enrichedSecurity(symbol string, withNews bool) *entity.EnrichedSecurity {
	enriched := &entity.EnrichedSecurity{
		SelectedSecurity: *selectedSecurity(symbol),
		News:             []entity.NewsItem{},
		NewsSummary:      "Coverage centered on earnings.",
		Analysis:         "Revenue growth accelerated this quarter.",
		WhyTrending:      "Earnings surprise.",
	}
	if withNews {
		published := time.Now()
		enriched.News = []entity.NewsItem{{Title: "headline", URL: "https://example.com", PublishedAt: &published}}
	}
	return enriched
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestComposer_SectionOrder(t *testing.T) {
	composer := NewComposer(nil, logger.NewNop())
	composer.now = fixedClock(time.Date(2026, 8, 31, 7, 0, 0, 0, time.UTC))

	doc := composer.Compose(context.Background(), enrichedSecurity("NVDA", true), "en")

	require.Len(t, doc.Sections, 3)
	assert.Equal(t, "NVDA Inc. (NVDA)", doc.Sections[0].Heading)
	assert.Equal(t, "News Summary", doc.Sections[1].Heading)
	assert.Equal(t, "Why NVDA Is Trending", doc.Sections[2].Heading)
	for _, section := range doc.Sections {
		assert.Equal(t, "NVDA", section.TopicKey)
	}
	assert.Equal(t, "Daily Trending Stock Briefing: NVDA (August 31, 2026)", doc.Title)
	assert.Equal(t, "Revenue growth accelerated this quarter.", doc.Summary)
}

func TestComposer_TrendingSectionAlwaysLast(t *testing.T) {
	composer := NewComposer(nil, logger.NewNop())
	composer.now = fixedClock(time.Date(2026, 8, 31, 7, 0, 0, 0, time.UTC))

	doc := composer.Compose(context.Background(), enrichedSecurity("NVDA", false), "en")

	// Without news the briefing is analysis plus the trending explanation.
	require.Len(t, doc.Sections, 2)
	assert.Equal(t, "Why NVDA Is Trending", doc.Sections[1].Heading)
}

func TestComposer_KoreanTitle(t *testing.T) {
	composer := NewComposer(nil, logger.NewNop())
	composer.now = fixedClock(time.Date(2026, 8, 31, 7, 0, 0, 0, time.UTC))

	doc := composer.Compose(context.Background(), enrichedSecurity("TSLA", true), "ko")

	assert.Equal(t, "오늘의 화제 종목 브리핑: TSLA (2026년 08월 31일)", doc.Title)
	assert.Equal(t, "주요 뉴스 요약", doc.Sections[1].Heading)
	assert.Equal(t, "TSLA이(가) 화제가 된 이유", doc.Sections[2].Heading)
}

func TestComposer_DeterministicForSameDay(t *testing.T) {
	composer := NewComposer(nil, logger.NewNop())
	composer.now = fixedClock(time.Date(2026, 8, 31, 7, 0, 0, 0, time.UTC))

	first := composer.Compose(context.Background(), enrichedSecurity("AMD", true), "en")
	second := composer.Compose(context.Background(), enrichedSecurity("AMD", true), "en")

	assert.Equal(t, first.Title, second.Title)
	assert.Equal(t, first.Summary, second.Summary)
	assert.Equal(t, first.Sections, second.Sections)
}

func TestComposer_RendererFailureLeavesImagePathEmpty(t *testing.T) {
	composer := NewComposer(&fakeRenderer{err: errors.New("disk full")}, logger.NewNop())
	composer.now = fixedClock(time.Now())

	doc := composer.Compose(context.Background(), enrichedSecurity("NVDA", true), "en")

	assert.Empty(t, doc.ImagePath)
	require.Len(t, doc.Sections, 3)
}

func TestComposer_RendererSuccessSetsImagePath(t *testing.T) {
	composer := NewComposer(&fakeRenderer{path: "/tmp/briefing_NVDA.png"}, logger.NewNop())
	composer.now = fixedClock(time.Now())

	doc := composer.Compose(context.Background(), enrichedSecurity("NVDA", true), "en")

	assert.Equal(t, "/tmp/briefing_NVDA.png", doc.ImagePath)
}
