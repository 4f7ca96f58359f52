package channel

import (
	"context"
	"fmt"

	"golang-stock-briefing/internal/entity"
	"golang-stock-briefing/pkg/slack"
)

// ChatSender delivers briefings to a Slack-compatible incoming webhook.
type ChatSender struct {
	client *slack.WebhookClient
}

// NewChatSender creates a Sender for the chat channel.
func NewChatSender(client *slack.WebhookClient) *ChatSender {
	return &ChatSender{client: client}
}

// Kind returns the channel kind this sender handles.
func (s *ChatSender) Kind() entity.ChannelKind {
	return entity.ChannelChat
}

// Send posts the briefing as Block Kit blocks to the configured webhook.
func (s *ChatSender) Send(ctx context.Context, doc *entity.BriefingDocument, spec entity.ChannelSpec) (string, error) {
	msg := slack.Message{
		Channel: spec.Room,
		Blocks:  buildBlocks(doc),
	}
	if err := s.client.Post(ctx, spec.Webhook, msg); err != nil {
		return "", err
	}
	// Incoming webhooks do not return a message id.
	return "", nil
}

func buildBlocks(doc *entity.BriefingDocument) []slack.Block {
	blocks := []slack.Block{
		{Type: "header", Text: &slack.Text{Type: "plain_text", Text: doc.Title}},
		{Type: "section", Text: &slack.Text{Type: "mrkdwn", Text: doc.Summary}},
	}
	for _, section := range doc.Sections {
		blocks = append(blocks, slack.Block{
			Type: "section",
			Text: &slack.Text{Type: "mrkdwn", Text: fmt.Sprintf("*%s*\n%s", section.Heading, section.Body)},
		})
	}
	return blocks
}
