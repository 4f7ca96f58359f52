package repository

import (
	"fmt"
	"strings"

	"golang-stock-briefing/internal/entity"
)

func languageInstruction(language string) string {
	if language == "ko" {
		return "Write the answer in Korean."
	}
	return "Write the answer in English."
}

func BuildSummarizeNewsPrompt(symbol string, newsItems []entity.NewsItem, language string) string {
	var newsBuilder strings.Builder
	for i, news := range newsItems {
		publishedAtStr := "N/A"
		if news.PublishedAt != nil {
			publishedAtStr = news.PublishedAt.Format("2006-01-02")
		}
		newsBuilder.WriteString(fmt.Sprintf(
			"%d. Title: \"%s\"\n   Published At: %s\n   Snippet: %s\n\n",
			i+1, news.Title, publishedAtStr, news.Summary,
		))
	}

	promptTemplate := `Here are recent news articles about the stock %s:

%s
Summarize the overall news picture for this stock in 3-5 sentences.
Focus on what the articles collectively say, not on individual pieces.
Return plain prose only, no headings or lists. %s`

	return fmt.Sprintf(promptTemplate, symbol, newsBuilder.String(), languageInstruction(language))
}

func BuildStockAnalysisPrompt(security *entity.SelectedSecurity, language string) string {
	promptTemplate := `You are a stock market analyst. Based on the following data, write a
short 2-3 sentence commentary on today's price and volume action:

Symbol: %s
Name: %s
Price: $%.2f
Change: %+.2f%%
Volume: %d
Market Cap: %d

Return plain prose only, no headings or lists. %s`

	return fmt.Sprintf(promptTemplate,
		security.Symbol, security.Name, security.Price, security.ChangePercent,
		security.Volume, security.MarketCap, languageInstruction(language))
}

func BuildWhyTrendingPrompt(security *entity.SelectedSecurity, newsItems []entity.NewsItem, language string) string {
	var newsBuilder strings.Builder
	if len(newsItems) == 0 {
		newsBuilder.WriteString("(no recent news available)\n")
	}
	for i, news := range newsItems {
		newsBuilder.WriteString(fmt.Sprintf("%d. %s\n", i+1, news.Title))
		if news.Summary != "" {
			newsBuilder.WriteString(fmt.Sprintf("   %s\n", news.Summary))
		}
	}

	promptTemplate := `The stock %s (%s) is one of today's most talked-about names.

Market data:
- Price: $%.2f (%+.2f%%)
- Volume: %d

Recent headlines:
%s
Explain in 3-5 sentences why this stock is trending today, combining the
headlines with the price and volume movement. If no news is available,
reason from the market data alone. Return plain prose only. %s`

	return fmt.Sprintf(promptTemplate,
		security.Symbol, security.Name, security.Price, security.ChangePercent,
		security.Volume, newsBuilder.String(), languageInstruction(language))
}
