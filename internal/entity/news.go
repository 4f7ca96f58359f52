package entity

import "time"

// NewsItem is one article returned by a news provider.
type NewsItem struct {
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	Summary     string     `json:"summary,omitempty"`
	Author      string     `json:"author,omitempty"`
	Source      string     `json:"source,omitempty"`
}
