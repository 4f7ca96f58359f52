package entity

// SelectedSecurity is the single candidate chosen as today's topic.
// Read-only after the Selector produces it.
type SelectedSecurity struct {
	Candidate
	SelectionReason string `json:"selection_reason"`
}

// EnrichedSecurity carries the selected security together with its news
// and generated commentary. The three text fields are never empty: on
// generation failure they hold a deterministic fallback message so
// rendering never has to branch on missing content.
type EnrichedSecurity struct {
	SelectedSecurity
	News        []NewsItem `json:"news_articles"`
	NewsSummary string     `json:"news_summary"`
	Analysis    string     `json:"analysis"`
	WhyTrending string     `json:"why_trending"`
}
