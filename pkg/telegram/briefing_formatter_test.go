package telegram

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"golang-stock-briefing/internal/entity"
)

func TestFormatBriefingForTelegram(t *testing.T) {
	doc := &entity.BriefingDocument{
		Title:   "Daily Trending Stock Briefing: NVDA (August 31, 2026)",
		Summary: "Strong quarter with data center growth.",
		Sections: []entity.BriefingSection{
			{TopicKey: "NVDA", Heading: "NVIDIA Corporation (NVDA)", Body: "Revenue accelerated."},
			{TopicKey: "NVDA", Heading: "Why NVDA Is Trending", Body: "Earnings surprise."},
		},
		GeneratedAt: time.Date(2026, 8, 31, 7, 0, 0, 0, time.UTC),
	}

	msg := FormatBriefingForTelegram(doc)

	assert.Contains(t, msg, "*Daily Trending Stock Briefing: NVDA (August 31, 2026)*")
	assert.Contains(t, msg, "Strong quarter with data center growth.")
	assert.Contains(t, msg, "*Why NVDA Is Trending*")
	assert.Contains(t, msg, "_2026-08-31 07:00_")
}

func TestFormatBriefingForTelegram_TruncatesLongSections(t *testing.T) {
	doc := &entity.BriefingDocument{
		Title:       "Briefing",
		Summary:     "Summary",
		GeneratedAt: time.Now(),
	}
	for i := 0; i < 50; i++ {
		doc.Sections = append(doc.Sections, entity.BriefingSection{
			Heading: "Section",
			Body:    strings.Repeat("x", 400),
		})
	}

	msg := FormatBriefingForTelegram(doc)

	assert.LessOrEqual(t, len(msg), 4090)
}
