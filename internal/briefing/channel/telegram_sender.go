package channel

import (
	"context"

	"golang-stock-briefing/internal/entity"
	"golang-stock-briefing/pkg/telegram"
)

// TelegramSender delivers briefings through a Telegram bot. The chat is
// fixed by the notifier's configuration, so the channel spec carries
// no destination fields.
type TelegramSender struct {
	notifier telegram.Notifier
}

// NewTelegramSender creates a Sender for the telegram channel.
func NewTelegramSender(notifier telegram.Notifier) *TelegramSender {
	return &TelegramSender{notifier: notifier}
}

// Kind returns the channel kind this sender handles.
func (s *TelegramSender) Kind() entity.ChannelKind {
	return entity.ChannelTelegram
}

// Send posts the formatted briefing, preferring the rendered card with
// a caption when one exists.
func (s *TelegramSender) Send(_ context.Context, doc *entity.BriefingDocument, _ entity.ChannelSpec) (string, error) {
	if doc.ImagePath != "" {
		if err := s.notifier.SendPhoto(doc.ImagePath, doc.Title); err == nil {
			return "", nil
		}
		// Fall through to plain text if the upload failed.
	}
	return "", s.notifier.SendMessage(telegram.FormatBriefingForTelegram(doc))
}
