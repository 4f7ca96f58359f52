package repository

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang-stock-briefing/internal/briefing/config"
	"golang-stock-briefing/internal/entity"
	"golang-stock-briefing/pkg/logger"

	"github.com/PuerkitoBio/goquery"
	"github.com/mauidude/go-readability"
	"github.com/mmcdole/gofeed"
)

// maxArticleFetches bounds how many article pages are fetched for
// snippet extraction per search.
const maxArticleFetches = 3

type googleRSSNewsRepository struct {
	cfg        *config.Config
	log        *logger.Logger
	parser     *gofeed.Parser
	httpClient *http.Client
}

// NewGoogleRSSNewsRepository creates a NewsRepository backed by the
// Google News RSS feed. It is the fallback source when no Exa API key
// is configured.
func NewGoogleRSSNewsRepository(cfg *config.Config, log *logger.Logger) NewsRepository {
	return &googleRSSNewsRepository{
		cfg:    cfg,
		log:    log,
		parser: gofeed.NewParser(),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Search fetches the Google News RSS feed for the symbol and enriches
// the top items with article snippets where the pages are reachable.
func (r *googleRSSNewsRepository) Search(ctx context.Context, symbol, name string, windowDays, limit int) ([]entity.NewsItem, error) {
	query := fmt.Sprintf("%s stock when:%dd", symbol, windowDays)
	feedURL := fmt.Sprintf("https://news.google.com/rss/search?q=%s&hl=en-US&gl=US&ceid=US:en", url.QueryEscape(query))

	feed, err := r.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse news feed: %w", err)
	}

	cutoff := time.Now().AddDate(0, 0, -windowDays)
	var items []entity.NewsItem
	for _, feedItem := range feed.Items {
		if len(items) >= limit {
			break
		}
		if feedItem.PublishedParsed != nil && feedItem.PublishedParsed.Before(cutoff) {
			continue
		}
		item := entity.NewsItem{
			Title:       feedItem.Title,
			URL:         feedItem.Link,
			PublishedAt: feedItem.PublishedParsed,
			Source:      feedSource(feedItem),
		}
		if len(items) < maxArticleFetches {
			item.Summary = r.extractSnippet(ctx, feedItem.Link)
		}
		items = append(items, item)
	}

	r.log.DebugContext(ctx, "Fetched news from Google RSS", logger.StringField("symbol", symbol), logger.IntField("count", len(items)))
	return items, nil
}

// extractSnippet pulls readable article text; failures leave the
// snippet empty since news without summaries is still usable.
func (r *googleRSSNewsRepository) extractSnippet(ctx context.Context, articleURL string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, articleURL, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return ""
	}

	doc, err := readability.NewDocument(string(body))
	if err != nil {
		return ""
	}

	content, err := goquery.NewDocumentFromReader(strings.NewReader(doc.Content()))
	if err != nil {
		return ""
	}
	text := strings.Join(strings.Fields(content.Text()), " ")
	return truncate(text, exaSnippetMaxLen)
}

func feedSource(item *gofeed.Item) string {
	if item.Custom != nil {
		if source, ok := item.Custom["source"]; ok {
			return source
		}
	}
	return hostOf(item.Link)
}
