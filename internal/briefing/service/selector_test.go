package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang-stock-briefing/internal/entity"
	"golang-stock-briefing/pkg/logger"
)

func TestSelector_PicksTopOfFirstCategory(t *testing.T) {
	quoteRepo := &fakeQuoteRepo{
		candidates: map[entity.ScreenerCategory][]entity.Candidate{
			entity.CategoryMostActives: {sampleCandidate("NVDA"), sampleCandidate("TSLA")},
			entity.CategoryDayGainers:  {sampleCandidate("AMD")},
		},
	}
	selector := NewSelector(quoteRepo, logger.NewNop())

	selected, err := selector.Select(context.Background(), []entity.ScreenerCategory{
		entity.CategoryMostActives,
		entity.CategoryDayGainers,
	}, 10)

	require.NoError(t, err)
	assert.Equal(t, "NVDA", selected.Symbol)
	assert.Contains(t, selected.SelectionReason, "most_actives")
	// The winning category must short-circuit the rest.
	assert.Equal(t, []entity.ScreenerCategory{entity.CategoryMostActives}, quoteRepo.calls)
}

func TestSelector_FallsBackWhenCategoryEmptyOrErrored(t *testing.T) {
	quoteRepo := &fakeQuoteRepo{
		candidates: map[entity.ScreenerCategory][]entity.Candidate{
			entity.CategoryDayLosers: {sampleCandidate("INTC")},
		},
		errs: map[entity.ScreenerCategory]error{
			entity.CategoryDayGainers: errors.New("upstream 500"),
		},
	}
	selector := NewSelector(quoteRepo, logger.NewNop())

	selected, err := selector.Select(context.Background(), []entity.ScreenerCategory{
		entity.CategoryMostActives,
		entity.CategoryDayGainers,
		entity.CategoryDayLosers,
	}, 10)

	require.NoError(t, err)
	assert.Equal(t, "INTC", selected.Symbol)
	assert.Contains(t, selected.SelectionReason, "day_losers")
	assert.Contains(t, selected.SelectionReason, "most_actives empty")
	assert.Contains(t, selected.SelectionReason, "day_gainers unavailable")
}

func TestSelector_NoCandidatesAnywhere(t *testing.T) {
	quoteRepo := &fakeQuoteRepo{
		errs: map[entity.ScreenerCategory]error{
			entity.CategoryMostActives: errors.New("timeout"),
		},
	}
	selector := NewSelector(quoteRepo, logger.NewNop())

	selected, err := selector.Select(context.Background(), []entity.ScreenerCategory{
		entity.CategoryMostActives,
		entity.CategoryDayGainers,
	}, 10)

	require.ErrorIs(t, err, ErrNoCandidates)
	assert.Nil(t, selected)
}

func TestSelector_DuplicateCategoryQueriedOnce(t *testing.T) {
	quoteRepo := &fakeQuoteRepo{}
	selector := NewSelector(quoteRepo, logger.NewNop())

	_, err := selector.Select(context.Background(), []entity.ScreenerCategory{
		entity.CategoryMostActives,
		entity.CategoryMostActives,
		entity.CategoryMostActives,
	}, 10)

	require.ErrorIs(t, err, ErrNoCandidates)
	assert.Equal(t, []entity.ScreenerCategory{entity.CategoryMostActives}, quoteRepo.calls)
}
