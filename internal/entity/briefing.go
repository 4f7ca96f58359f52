package entity

import "time"

// BriefingSection is one block of the briefing body. Order inside
// BriefingDocument.Sections is presentation order.
type BriefingSection struct {
	TopicKey string `json:"topic_key"`
	Heading  string `json:"heading"`
	Body     string `json:"body"`
}

// BriefingDocument is the composed briefing. Sections hold the main
// analysis first and the why-trending explanation last.
type BriefingDocument struct {
	Title       string            `json:"title"`
	Summary     string            `json:"summary"`
	Sections    []BriefingSection `json:"sections"`
	GeneratedAt time.Time         `json:"generated_at"`
	ImagePath   string            `json:"image_path,omitempty"`
}
