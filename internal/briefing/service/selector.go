package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang-stock-briefing/internal/briefing/repository"
	"golang-stock-briefing/internal/entity"
	"golang-stock-briefing/pkg/logger"
)

// ErrNoCandidates is the Selector's NotFound outcome: every category
// came back empty or errored. It is a reportable result, not a bug.
var ErrNoCandidates = errors.New("no trending candidates available")

// Selector picks exactly one security from the screener categories in
// caller-supplied priority order.
type Selector struct {
	quoteRepo repository.QuoteRepository
	logger    *logger.Logger
}

// NewSelector creates a new Selector.
func NewSelector(quoteRepo repository.QuoteRepository, log *logger.Logger) *Selector {
	return &Selector{quoteRepo: quoteRepo, logger: log}
}

// Select iterates categories in priority order and returns the first
// category's top-ranked candidate. Categories are never merged or
// re-ranked; a duplicate category in the list is queried once. When
// every category is empty or errors the result is ErrNoCandidates.
func (s *Selector) Select(ctx context.Context, categories []entity.ScreenerCategory, limitPerCategory int) (*entity.SelectedSecurity, error) {
	seen := make(map[entity.ScreenerCategory]struct{}, len(categories))
	var skipped []string

	for _, category := range categories {
		if _, dup := seen[category]; dup {
			continue
		}
		seen[category] = struct{}{}

		candidates, err := s.quoteRepo.Fetch(ctx, category, limitPerCategory)
		if err != nil {
			// A failed category yields no usable candidates; move on.
			s.logger.WarnContext(ctx, "Screener category unavailable",
				logger.StringField("category", string(category)),
				logger.ErrorField(err),
			)
			skipped = append(skipped, fmt.Sprintf("%s unavailable", category))
			continue
		}
		if len(candidates) == 0 {
			skipped = append(skipped, fmt.Sprintf("%s empty", category))
			continue
		}

		top := candidates[0]
		reason := fmt.Sprintf("top ranked in %s", category)
		if len(skipped) > 0 {
			reason = fmt.Sprintf("top ranked in %s (%s)", category, strings.Join(skipped, "; "))
		}

		s.logger.InfoContext(ctx, "Selected trending security",
			logger.StringField("symbol", top.Symbol),
			logger.StringField("reason", reason),
		)
		return &entity.SelectedSecurity{
			Candidate:       top,
			SelectionReason: reason,
		}, nil
	}

	return nil, ErrNoCandidates
}
