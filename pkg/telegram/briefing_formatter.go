package telegram

import (
	"fmt"
	"strings"

	"golang-stock-briefing/internal/entity"
)

// telegramMaxLen is the Telegram message size limit minus a small
// safety margin.
const telegramMaxLen = 4090

// FormatBriefingForTelegram formats a briefing document into a Markdown
// message, truncating sections that would exceed the Telegram limit.
func FormatBriefingForTelegram(doc *entity.BriefingDocument) string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("📈 *%s*\n\n", doc.Title))
	builder.WriteString(fmt.Sprintf("%s\n\n", doc.Summary))

	for _, section := range doc.Sections {
		entry := fmt.Sprintf("*%s*\n%s\n\n", section.Heading, section.Body)
		if builder.Len()+len(entry) > telegramMaxLen {
			break
		}
		builder.WriteString(entry)
	}

	builder.WriteString(fmt.Sprintf("_%s_", doc.GeneratedAt.Format("2006-01-02 15:04")))

	msg := builder.String()
	if len(msg) > telegramMaxLen {
		msg = msg[:telegramMaxLen]
	}
	return msg
}
