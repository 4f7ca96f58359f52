package service

import (
	"fmt"
	"strconv"

	"golang-stock-briefing/internal/briefing/config"
	"golang-stock-briefing/internal/entity"
)

// DefaultRunOptions builds the RunOptions for a scheduled run from the
// static configuration. Invalid category names are dropped rather than
// failing the run.
func DefaultRunOptions(cfg *config.Config) RunOptions {
	opts := RunOptions{
		Categories:       make([]entity.ScreenerCategory, 0, len(cfg.Screener.Categories)),
		LimitPerCategory: cfg.Screener.CountPerCategory,
		NewsWindowDays:   cfg.News.WindowDays,
		NewsLimit:        cfg.News.Limit,
		Language:         cfg.Briefing.Language,
		Channels:         DefaultChannels(cfg),
	}
	for _, name := range cfg.Screener.Categories {
		category := entity.ScreenerCategory(name)
		if category.Valid() {
			opts.Categories = append(opts.Categories, category)
		}
	}
	if len(opts.Categories) == 0 {
		opts.Categories = []entity.ScreenerCategory{
			entity.CategoryMostActives,
			entity.CategoryDayGainers,
			entity.CategoryDayLosers,
		}
	}
	if opts.LimitPerCategory <= 0 {
		opts.LimitPerCategory = 10
	}
	if opts.NewsWindowDays <= 0 {
		opts.NewsWindowDays = 7
	}
	if opts.NewsLimit <= 0 {
		opts.NewsLimit = 5
	}
	if opts.Language == "" {
		opts.Language = "ko"
	}
	return opts
}

// DefaultChannels expands the configured default destinations into
// channel specs, one per recipient.
func DefaultChannels(cfg *config.Config) []entity.ChannelSpec {
	var specs []entity.ChannelSpec
	for _, recipient := range cfg.Channels.Email.Recipients {
		specs = append(specs, entity.ChannelSpec{
			Kind:    entity.ChannelEmail,
			Address: recipient,
		})
	}
	if cfg.Channels.Chat.WebhookURL != "" {
		rooms := cfg.Channels.Chat.Rooms
		if len(rooms) == 0 {
			rooms = []string{""}
		}
		for _, room := range rooms {
			specs = append(specs, entity.ChannelSpec{
				Kind:    entity.ChannelChat,
				Webhook: cfg.Channels.Chat.WebhookURL,
				Room:    room,
			})
		}
	}
	if cfg.Channels.Telegram.BotToken != "" && cfg.Channels.Telegram.ChatID != 0 {
		specs = append(specs, entity.ChannelSpec{
			Kind:    entity.ChannelTelegram,
			Address: strconv.FormatInt(cfg.Channels.Telegram.ChatID, 10),
		})
	}
	return specs
}

// ParseCategories validates and converts category names from a request.
func ParseCategories(names []string) ([]entity.ScreenerCategory, error) {
	categories := make([]entity.ScreenerCategory, 0, len(names))
	for _, name := range names {
		category := entity.ScreenerCategory(name)
		if !category.Valid() {
			return nil, fmt.Errorf("unknown screener category: %s", name)
		}
		categories = append(categories, category)
	}
	return categories, nil
}
