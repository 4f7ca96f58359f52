package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang-stock-briefing/internal/briefing/config"
	"golang-stock-briefing/internal/briefing/dto"
	"golang-stock-briefing/internal/entity"
	"golang-stock-briefing/pkg/common"
	"golang-stock-briefing/pkg/logger"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

const exaSnippetMaxLen = 500

type exaNewsRepository struct {
	cfg            *config.Config
	log            *logger.Logger
	httpClient     *http.Client
	requestLimiter *rate.Limiter
	redisClient    *redis.Client
	cacheTTL       time.Duration
}

// NewExaNewsRepository creates a NewsRepository backed by the Exa search
// API. The redis client is optional; without it results are not cached.
func NewExaNewsRepository(cfg *config.Config, log *logger.Logger, redisClient *redis.Client) NewsRepository {
	secondsPerRequest := time.Minute / time.Duration(cfg.Exa.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)

	ttl := 15 * time.Minute
	if parsed, err := time.ParseDuration(cfg.Exa.CacheTTL); err == nil && parsed > 0 {
		ttl = parsed
	}

	return &exaNewsRepository{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		requestLimiter: requestLimiter,
		redisClient:    redisClient,
		cacheTTL:       ttl,
	}
}

// Search queries Exa for recent news about the security.
func (r *exaNewsRepository) Search(ctx context.Context, symbol, name string, windowDays, limit int) ([]entity.NewsItem, error) {
	cacheKey := fmt.Sprintf("%s:%s:%d:%d", common.RedisKeyNewsCache, symbol, windowDays, limit)
	if items, ok := r.getCached(ctx, cacheKey); ok {
		return items, nil
	}

	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for request limit: %w", err)
	}

	end := time.Now()
	start := end.AddDate(0, 0, -windowDays)

	payload := dto.ExaSearchRequest{
		Query:              fmt.Sprintf("%s stock news", symbol),
		NumResults:         limit,
		StartPublishedDate: start.Format("2006-01-02"),
		EndPublishedDate:   end.Format("2006-01-02"),
		Type:               "auto",
		UseAutoprompt:      true,
	}
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.Exa.BaseURL+"/search", bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, fmt.Errorf("failed to create new http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", r.cfg.Exa.APIKey)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.log.ErrorContext(ctx, "Failed to send request to Exa API", logger.ErrorField(err), logger.StringField("symbol", symbol))
		return nil, fmt.Errorf("failed to send request to Exa API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		r.log.ErrorContext(ctx, "Received non-OK response from Exa API", logger.IntField("status_code", resp.StatusCode), logger.StringField("symbol", symbol))
		return nil, fmt.Errorf("received non-OK response from Exa API: %d - %s", resp.StatusCode, string(body))
	}

	var searchResp dto.ExaSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("failed to decode Exa response: %w", err)
	}

	items := make([]entity.NewsItem, 0, len(searchResp.Results))
	for _, res := range searchResp.Results {
		item := entity.NewsItem{
			Title:   res.Title,
			URL:     res.URL,
			Author:  res.Author,
			Summary: truncate(res.Text, exaSnippetMaxLen),
			Source:  hostOf(res.URL),
		}
		if res.PublishedDate != "" {
			if published, err := time.Parse(time.RFC3339, res.PublishedDate); err == nil {
				item.PublishedAt = &published
			}
		}
		items = append(items, item)
	}

	r.log.DebugContext(ctx, "Fetched news from Exa", logger.StringField("symbol", symbol), logger.IntField("count", len(items)))
	r.setCached(ctx, cacheKey, items)
	return items, nil
}

func (r *exaNewsRepository) getCached(ctx context.Context, key string) ([]entity.NewsItem, bool) {
	if r.redisClient == nil {
		return nil, false
	}
	raw, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var items []entity.NewsItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	return items, true
}

func (r *exaNewsRepository) setCached(ctx context.Context, key string, items []entity.NewsItem) {
	if r.redisClient == nil {
		return
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := r.redisClient.Set(ctx, key, raw, r.cacheTTL).Err(); err != nil {
		r.log.WarnContext(ctx, "Failed to cache news results", logger.ErrorField(err))
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func hostOf(rawURL string) string {
	parts := strings.SplitN(rawURL, "/", 4)
	if len(parts) < 3 {
		return ""
	}
	return parts[2]
}
