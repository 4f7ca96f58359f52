package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang-stock-briefing/internal/briefing/config"
	"golang-stock-briefing/internal/entity"
)

func TestDefaultRunOptions_AppliesDefaults(t *testing.T) {
	opts := DefaultRunOptions(&config.Config{})

	assert.Equal(t, []entity.ScreenerCategory{
		entity.CategoryMostActives,
		entity.CategoryDayGainers,
		entity.CategoryDayLosers,
	}, opts.Categories)
	assert.Equal(t, 10, opts.LimitPerCategory)
	assert.Equal(t, 7, opts.NewsWindowDays)
	assert.Equal(t, 5, opts.NewsLimit)
	assert.Equal(t, "ko", opts.Language)
	assert.Empty(t, opts.Channels)
}

func TestDefaultRunOptions_DropsInvalidCategories(t *testing.T) {
	cfg := &config.Config{
		Screener: config.Screener{Categories: []string{"day_gainers", "top_memes"}},
	}

	opts := DefaultRunOptions(cfg)

	assert.Equal(t, []entity.ScreenerCategory{entity.CategoryDayGainers}, opts.Categories)
}

func TestDefaultChannels_ExpandsRecipientsAndRooms(t *testing.T) {
	cfg := &config.Config{
		Channels: config.Channels{
			Email: config.EmailChannel{Recipients: []string{"a@example.com", "b@example.com"}},
			Chat:  config.ChatChannel{WebhookURL: "https://hooks.example.com/x", Rooms: []string{"#alerts", "#stocks"}},
			Telegram: config.Telegram{
				BotToken: "token",
				ChatID:   42,
			},
		},
	}

	specs := DefaultChannels(cfg)

	require.Len(t, specs, 5)
	assert.Equal(t, entity.ChannelEmail, specs[0].Kind)
	assert.Equal(t, "a@example.com", specs[0].Address)
	assert.Equal(t, entity.ChannelChat, specs[2].Kind)
	assert.Equal(t, "#alerts", specs[2].Room)
	assert.Equal(t, entity.ChannelTelegram, specs[4].Kind)
	assert.Equal(t, "42", specs[4].Address)
}

func TestParseCategories(t *testing.T) {
	categories, err := ParseCategories([]string{"most_actives", "day_losers"})
	require.NoError(t, err)
	assert.Len(t, categories, 2)

	_, err = ParseCategories([]string{"top_memes"})
	assert.Error(t, err)
}
