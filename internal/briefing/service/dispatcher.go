package service

import (
	"context"
	"fmt"

	"golang-stock-briefing/internal/briefing/channel"
	"golang-stock-briefing/internal/entity"
	"golang-stock-briefing/pkg/logger"
)

// Dispatcher fans a briefing document out to delivery channels. Each
// channel attempt is isolated: one failure never prevents the rest.
type Dispatcher struct {
	senders map[entity.ChannelKind]channel.Sender
	logger  *logger.Logger
}

// NewDispatcher creates a Dispatcher from the configured senders.
func NewDispatcher(log *logger.Logger, senders ...channel.Sender) *Dispatcher {
	byKind := make(map[entity.ChannelKind]channel.Sender, len(senders))
	for _, s := range senders {
		byKind[s.Kind()] = s
	}
	return &Dispatcher{senders: byKind, logger: log}
}

// Dispatch attempts delivery to every channel spec in order and returns
// a report with one result per channel. It never returns an error.
func (d *Dispatcher) Dispatch(ctx context.Context, doc *entity.BriefingDocument, channels []entity.ChannelSpec) *entity.DispatchReport {
	report := &entity.DispatchReport{
		Results: make([]entity.DispatchResult, 0, len(channels)),
	}

	for _, spec := range channels {
		result := entity.DispatchResult{
			Channel:     spec.Kind,
			Destination: spec.Destination(),
		}

		sender, ok := d.senders[spec.Kind]
		if !ok {
			result.Status = entity.DispatchFailed
			result.Error = fmt.Sprintf("no sender configured for channel %s", spec.Kind)
			d.logger.WarnContext(ctx, "Skipping unconfigured channel",
				logger.StringField("channel", string(spec.Kind)),
				logger.StringField("destination", result.Destination),
			)
			report.Results = append(report.Results, result)
			continue
		}

		messageID, err := sender.Send(ctx, doc, spec)
		if err != nil {
			result.Status = entity.DispatchFailed
			result.Error = err.Error()
			d.logger.ErrorContext(ctx, "Channel delivery failed",
				logger.StringField("channel", string(spec.Kind)),
				logger.StringField("destination", result.Destination),
				logger.ErrorField(err),
			)
		} else {
			result.Status = entity.DispatchSent
			result.ProviderMessageID = messageID
			d.logger.InfoContext(ctx, "Briefing delivered",
				logger.StringField("channel", string(spec.Kind)),
				logger.StringField("destination", result.Destination),
				logger.StringField("message_id", messageID),
			)
		}
		report.Results = append(report.Results, result)
	}

	report.Recount()
	return report
}
