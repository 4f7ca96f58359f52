package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang-stock-briefing/internal/entity"
	"golang-stock-briefing/pkg/common"
	"golang-stock-briefing/pkg/logger"
)

func TestWorkflow_SuccessfulRun(t *testing.T) {
	quoteRepo := &fakeQuoteRepo{candidates: map[entity.ScreenerCategory][]entity.Candidate{
		entity.CategoryMostActives: {sampleCandidate("NVDA")},
	}}
	published := time.Now()
	newsRepo := &fakeNewsRepo{items: []entity.NewsItem{{Title: "t", URL: "u", PublishedAt: &published}}}
	aiRepo := &fakeAIRepo{summary: "s", analysis: "a", whyTrending: "w"}
	runRepo := newMemoryRunRepo()
	log := logger.NewNop()

	composer := NewComposer(nil, log)
	composer.now = fixedClock(time.Date(2026, 8, 31, 7, 0, 0, 0, time.UTC))
	emailSender := &fakeSender{kind: entity.ChannelEmail, messageID: "m1"}
	workflow := NewWorkflow(
		NewSelector(quoteRepo, log),
		NewEnricher(newsRepo, aiRepo, log),
		composer,
		NewDispatcher(log, emailSender),
		runRepo,
		log,
	)

	run := workflow.Run(context.Background(), RunOptions{
		Categories:       []entity.ScreenerCategory{entity.CategoryMostActives},
		LimitPerCategory: 10,
		NewsWindowDays:   7,
		NewsLimit:        5,
		Language:         "en",
		Channels:         []entity.ChannelSpec{{Kind: entity.ChannelEmail, Address: "a@example.com"}},
	})

	assert.True(t, run.Success)
	assert.Equal(t, entity.RunCompleted, run.Status())
	assert.Equal(t, []string{
		common.StageSelecting,
		common.StageEnriching,
		common.StageComposing,
		common.StageDispatching,
	}, run.StepsCompleted)
	assert.Empty(t, run.StepsFailed)
	require.NotNil(t, run.Briefing)
	require.NotNil(t, run.Dispatch)
	assert.Equal(t, 1, run.Dispatch.TotalSent)
	assert.NotEmpty(t, run.ID)

	// Saved once after composing and once with the dispatch outcome.
	assert.Equal(t, 2, runRepo.saves)
	stored, err := runRepo.Get(context.Background(), run.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Dispatch)
	assert.Equal(t, 1, stored.Dispatch.TotalSent)
}

func TestWorkflow_NoCandidatesIsReportedNotPanicked(t *testing.T) {
	quoteRepo := &fakeQuoteRepo{errs: map[entity.ScreenerCategory]error{
		entity.CategoryMostActives: errors.New("down"),
	}}
	runRepo := newMemoryRunRepo()
	log := logger.NewNop()
	workflow := NewWorkflow(
		NewSelector(quoteRepo, log),
		NewEnricher(nil, nil, log),
		NewComposer(nil, log),
		NewDispatcher(log),
		runRepo,
		log,
	)

	run := workflow.Run(context.Background(), RunOptions{
		Categories: []entity.ScreenerCategory{entity.CategoryMostActives},
		Language:   "en",
	})

	assert.False(t, run.Success)
	assert.Equal(t, entity.RunFailed, run.Status())
	assert.Equal(t, []string{common.StageSelecting}, run.StepsFailed)
	assert.Equal(t, "no trending security found", run.Error)
	assert.Nil(t, run.Briefing)
	assert.Nil(t, run.Dispatch)
}

func TestWorkflow_DispatchFailuresDoNotFailRun(t *testing.T) {
	quoteRepo := &fakeQuoteRepo{candidates: map[entity.ScreenerCategory][]entity.Candidate{
		entity.CategoryMostActives: {sampleCandidate("TSLA")},
	}}
	runRepo := newMemoryRunRepo()
	log := logger.NewNop()
	emailSender := &fakeSender{kind: entity.ChannelEmail, err: errors.New("smtp refused")}
	workflow := NewWorkflow(
		NewSelector(quoteRepo, log),
		NewEnricher(&fakeNewsRepo{}, &fakeAIRepo{summary: "s", analysis: "a", whyTrending: "w"}, log),
		NewComposer(nil, log),
		NewDispatcher(log, emailSender),
		runRepo,
		log,
	)

	run := workflow.Run(context.Background(), RunOptions{
		Categories: []entity.ScreenerCategory{entity.CategoryMostActives},
		Language:   "en",
		Channels:   []entity.ChannelSpec{{Kind: entity.ChannelEmail, Address: "a@example.com"}},
	})

	assert.True(t, run.Success)
	require.NotNil(t, run.Dispatch)
	assert.Equal(t, 0, run.Dispatch.TotalSent)
	assert.Equal(t, 1, run.Dispatch.TotalFailed)
}

func TestWorkflow_PersistFailureDoesNotAbortRun(t *testing.T) {
	quoteRepo := &fakeQuoteRepo{candidates: map[entity.ScreenerCategory][]entity.Candidate{
		entity.CategoryMostActives: {sampleCandidate("AMD")},
	}}
	runRepo := newMemoryRunRepo()
	runRepo.err = errors.New("disk full")
	log := logger.NewNop()
	workflow := NewWorkflow(
		NewSelector(quoteRepo, log),
		NewEnricher(nil, nil, log),
		NewComposer(nil, log),
		NewDispatcher(log),
		runRepo,
		log,
	)

	run := workflow.Run(context.Background(), RunOptions{
		Categories: []entity.ScreenerCategory{entity.CategoryMostActives},
		Language:   "en",
	})

	assert.True(t, run.Success)
	require.NotNil(t, run.Briefing)
}
