package channel

import (
	"context"

	"golang-stock-briefing/internal/entity"
)

// Sender delivers a composed briefing to one destination. Send returns
// the provider's message id when the provider reports one.
type Sender interface {
	Kind() entity.ChannelKind
	Send(ctx context.Context, doc *entity.BriefingDocument, spec entity.ChannelSpec) (string, error)
}
