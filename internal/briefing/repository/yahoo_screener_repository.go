package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang-stock-briefing/internal/briefing/config"
	"golang-stock-briefing/internal/briefing/dto"
	"golang-stock-briefing/internal/entity"
	"golang-stock-briefing/pkg/logger"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

const screenerProviderMax = 100

type yahooScreenerRepository struct {
	cfg            *config.Config
	log            *logger.Logger
	httpClient     *http.Client
	requestLimiter *rate.Limiter
	inmemoryCache  *cache.Cache
}

// NewYahooScreenerRepository creates a QuoteRepository backed by the
// Yahoo Finance predefined screener API.
func NewYahooScreenerRepository(cfg *config.Config, log *logger.Logger) QuoteRepository {
	secondsPerRequest := time.Minute / time.Duration(cfg.Screener.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)

	ttl := 5 * time.Minute
	if parsed, err := time.ParseDuration(cfg.Screener.CacheTTL); err == nil && parsed > 0 {
		ttl = parsed
	}

	return &yahooScreenerRepository{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		requestLimiter: requestLimiter,
		inmemoryCache:  cache.New(ttl, 2*ttl),
	}
}

// Fetch returns the category's top-ranked candidates in provider order.
func (r *yahooScreenerRepository) Fetch(ctx context.Context, category entity.ScreenerCategory, limit int) ([]entity.Candidate, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("unsupported screener category: %s", category)
	}
	if limit < 1 {
		return nil, fmt.Errorf("limit must be at least 1, got %d", limit)
	}
	if limit > screenerProviderMax {
		limit = screenerProviderMax
	}

	cacheKey := fmt.Sprintf("screener:%s:%d", category, limit)
	if cached, found := r.inmemoryCache.Get(cacheKey); found {
		return cached.([]entity.Candidate), nil
	}

	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for request limit: %w", err)
	}

	url := fmt.Sprintf("%s/v1/finance/screener/predefined/saved?scrIds=%s&count=%d", r.cfg.Screener.BaseURL, category, limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create new http request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.log.ErrorContext(ctx, "Failed to send request to screener API", logger.ErrorField(err), logger.StringField("category", string(category)))
		return nil, fmt.Errorf("failed to send request to screener API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		r.log.ErrorContext(ctx, "Received non-OK response from screener API", logger.IntField("status_code", resp.StatusCode), logger.StringField("category", string(category)))
		return nil, fmt.Errorf("received non-OK response from screener API: %d - %s", resp.StatusCode, string(body))
	}

	var screenerResp dto.YahooScreenerResponse
	if err := json.NewDecoder(resp.Body).Decode(&screenerResp); err != nil {
		return nil, fmt.Errorf("failed to decode screener response: %w", err)
	}
	if screenerResp.Finance.Error != nil {
		return nil, fmt.Errorf("screener API error: %s - %s", screenerResp.Finance.Error.Code, screenerResp.Finance.Error.Description)
	}
	if len(screenerResp.Finance.Result) == 0 {
		return nil, nil
	}

	quotes := screenerResp.Finance.Result[0].Quotes
	candidates := make([]entity.Candidate, 0, len(quotes))
	for _, q := range quotes {
		if q.Symbol == "" {
			continue
		}
		candidates = append(candidates, entity.Candidate{
			Symbol:        q.Symbol,
			Name:          q.DisplayName(),
			Price:         q.RegularMarketPrice,
			Change:        q.RegularMarketChange,
			ChangePercent: q.RegularMarketChangePercent,
			Volume:        q.RegularMarketVolume,
			MarketCap:     q.MarketCap,
			Categories:    []entity.ScreenerCategory{category},
		})
	}

	r.log.DebugContext(ctx, "Fetched screener candidates",
		logger.StringField("category", string(category)),
		logger.IntField("count", len(candidates)),
	)

	r.inmemoryCache.Set(cacheKey, candidates, cache.DefaultExpiration)
	return candidates, nil
}
