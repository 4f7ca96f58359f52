package channel

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"golang-stock-briefing/internal/entity"
	"golang-stock-briefing/pkg/mailer"
)

// EmailSender delivers briefings over SMTP with the rendered card
// attached when one exists.
type EmailSender struct {
	mailer mailer.Mailer
}

// NewEmailSender creates a Sender for the email channel.
func NewEmailSender(m mailer.Mailer) *EmailSender {
	return &EmailSender{mailer: m}
}

// Kind returns the channel kind this sender handles.
func (s *EmailSender) Kind() entity.ChannelKind {
	return entity.ChannelEmail
}

// Send mails the briefing to the recipient address.
func (s *EmailSender) Send(_ context.Context, doc *entity.BriefingDocument, spec entity.ChannelSpec) (string, error) {
	body := buildHTMLBody(doc)
	if err := s.mailer.Send(spec.Address, doc.Title, body, doc.ImagePath); err != nil {
		return "", err
	}
	return fmt.Sprintf("email_%s_%d", spec.Address, time.Now().Unix()), nil
}

func buildHTMLBody(doc *entity.BriefingDocument) string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("<h1>%s</h1>\n", html.EscapeString(doc.Title)))
	builder.WriteString(fmt.Sprintf("<p>%s</p>\n", html.EscapeString(doc.Summary)))
	for _, section := range doc.Sections {
		builder.WriteString(fmt.Sprintf("<h2>%s</h2>\n", html.EscapeString(section.Heading)))
		builder.WriteString(fmt.Sprintf("<p>%s</p>\n", html.EscapeString(section.Body)))
	}
	builder.WriteString(fmt.Sprintf("<p><em>%s</em></p>\n", doc.GeneratedAt.Format("2006-01-02 15:04")))
	return builder.String()
}
