package renderer

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang-stock-briefing/internal/entity"
	"golang-stock-briefing/pkg/logger"
)

func renderInputs() (*entity.BriefingDocument, *entity.EnrichedSecurity) {
	doc := &entity.BriefingDocument{
		Title:   "Daily Trending Stock Briefing: NVDA (August 31, 2026)",
		Summary: "Strong quarter with data center growth.",
		Sections: []entity.BriefingSection{
			{TopicKey: "NVDA", Heading: "NVIDIA Corporation (NVDA)", Body: "Revenue accelerated."},
			{TopicKey: "NVDA", Heading: "Why NVDA Is Trending", Body: "Earnings surprise."},
		},
		GeneratedAt: time.Date(2026, 8, 31, 7, 0, 1, 0, time.UTC),
	}
	security := &entity.EnrichedSecurity{
		SelectedSecurity: entity.SelectedSecurity{
			Candidate: entity.Candidate{
				Symbol:        "NVDA",
				Name:          "NVIDIA Corporation",
				Price:         181.5,
				ChangePercent: 2.42,
				Volume:        180_000_000,
				MarketCap:     4_400_000_000_000,
			},
		},
	}
	return doc, security
}

func TestCardRenderer_WritesPNG(t *testing.T) {
	dir := t.TempDir()
	r, err := NewCardRenderer(dir, "", logger.NewNop())
	require.NoError(t, err)

	doc, security := renderInputs()
	path, err := r.Render(context.Background(), doc, security)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "briefing_NVDA_20260831_070001.png"), path)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExcelRenderer_WritesWorkbook(t *testing.T) {
	dir := t.TempDir()
	r, err := NewExcelRenderer(dir, logger.NewNop())
	require.NoError(t, err)

	doc, security := renderInputs()
	path, err := r.Render(context.Background(), doc, security)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "briefing_NVDA_20260831_070001.xlsx"), path)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
