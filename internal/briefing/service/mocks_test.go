package service

import (
	"context"
	"fmt"
	"sync"

	"golang-stock-briefing/internal/briefing/dto"
	"golang-stock-briefing/internal/briefing/repository"
	"golang-stock-briefing/internal/entity"
)

type fakeQuoteRepo struct {
	candidates map[entity.ScreenerCategory][]entity.Candidate
	errs       map[entity.ScreenerCategory]error
	calls      []entity.ScreenerCategory
}

func (f *fakeQuoteRepo) Fetch(_ context.Context, category entity.ScreenerCategory, _ int) ([]entity.Candidate, error) {
	f.calls = append(f.calls, category)
	if err := f.errs[category]; err != nil {
		return nil, err
	}
	return f.candidates[category], nil
}

type fakeNewsRepo struct {
	items []entity.NewsItem
	err   error
}

func (f *fakeNewsRepo) Search(context.Context, string, string, int, int) ([]entity.NewsItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

type fakeAIRepo struct {
	summary     string
	analysis    string
	whyTrending string

	summaryErr     error
	analysisErr    error
	whyTrendingErr error
}

func (f *fakeAIRepo) SummarizeNews(context.Context, string, []entity.NewsItem, string) (string, error) {
	return f.summary, f.summaryErr
}

func (f *fakeAIRepo) AnalyzeStock(context.Context, *entity.SelectedSecurity, string) (string, error) {
	return f.analysis, f.analysisErr
}

func (f *fakeAIRepo) ExplainTrending(context.Context, *entity.SelectedSecurity, []entity.NewsItem, string) (string, error) {
	return f.whyTrending, f.whyTrendingErr
}

type fakeSender struct {
	kind      entity.ChannelKind
	err       error
	messageID string
	sent      []entity.ChannelSpec
}

func (f *fakeSender) Kind() entity.ChannelKind {
	return f.kind
}

func (f *fakeSender) Send(_ context.Context, _ *entity.BriefingDocument, spec entity.ChannelSpec) (string, error) {
	f.sent = append(f.sent, spec)
	if f.err != nil {
		return "", f.err
	}
	return f.messageID, nil
}

type memoryRunRepo struct {
	mu    sync.Mutex
	runs  map[string]entity.PipelineRun
	saves int
	err   error
}

func newMemoryRunRepo() *memoryRunRepo {
	return &memoryRunRepo{runs: make(map[string]entity.PipelineRun)}
}

func (r *memoryRunRepo) Save(_ context.Context, run *entity.PipelineRun) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return "", r.err
	}
	r.saves++
	if run.ID == "" {
		run.ID = fmt.Sprintf("briefing_%s_%d", run.Symbol(), r.saves)
	}
	r.runs[run.ID] = *run
	return run.ID, nil
}

func (r *memoryRunRepo) List(context.Context, *dto.RunFilter) ([]entity.RunSummary, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	summaries := make([]entity.RunSummary, 0, len(r.runs))
	for _, run := range r.runs {
		summaries = append(summaries, entity.RunSummary{ID: run.ID, Symbol: run.Symbol(), Status: run.Status(), CreatedAt: run.CreatedAt})
	}
	return summaries, len(summaries), nil
}

func (r *memoryRunRepo) Get(_ context.Context, id string) (*entity.PipelineRun, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	run, ok := r.runs[id]
	if !ok {
		return nil, repository.ErrRunNotFound
	}
	return &run, nil
}

func sampleCandidate(symbol string) entity.Candidate {
	return entity.Candidate{
		Symbol:        symbol,
		Name:          symbol + " Inc.",
		Price:         101.5,
		Change:        2.5,
		ChangePercent: 2.52,
		Volume:        12_000_000,
		MarketCap:     500_000_000_000,
		Categories:    []entity.ScreenerCategory{entity.CategoryMostActives},
	}
}
