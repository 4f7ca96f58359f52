package entity

// ChannelKind identifies a delivery channel type.
type ChannelKind string

const (
	ChannelEmail    ChannelKind = "email"
	ChannelChat     ChannelKind = "chat"
	ChannelTelegram ChannelKind = "telegram"
)

// Valid reports whether the kind is a supported channel type. Unknown
// kinds are rejected at the API boundary and never reach the Dispatcher.
func (k ChannelKind) Valid() bool {
	switch k {
	case ChannelEmail, ChannelChat, ChannelTelegram:
		return true
	}
	return false
}

// ChannelSpec describes one delivery destination. Address is used by
// email channels; Webhook and Room by chat channels.
type ChannelSpec struct {
	Kind    ChannelKind `json:"kind"`
	Address string      `json:"address,omitempty"`
	Webhook string      `json:"webhook,omitempty"`
	Room    string      `json:"room,omitempty"`
}

// Destination returns the identifier recorded in dispatch results.
func (s ChannelSpec) Destination() string {
	if s.Kind == ChannelEmail {
		return s.Address
	}
	if s.Room != "" {
		return s.Room
	}
	return s.Webhook
}

// DispatchStatus is the outcome of one delivery attempt.
type DispatchStatus string

const (
	DispatchSent   DispatchStatus = "sent"
	DispatchFailed DispatchStatus = "failed"
)

// DispatchResult is the outcome of one channel delivery attempt.
type DispatchResult struct {
	Channel           ChannelKind    `json:"channel"`
	Destination       string         `json:"destination"`
	Status            DispatchStatus `json:"status"`
	ProviderMessageID string         `json:"provider_message_id,omitempty"`
	Error             string         `json:"error,omitempty"`
}

// DispatchReport aggregates per-channel results. TotalSent and
// TotalFailed are derived from Results via Recount, never maintained by
// hand.
type DispatchReport struct {
	Results     []DispatchResult `json:"results"`
	TotalSent   int              `json:"total_sent"`
	TotalFailed int              `json:"total_failed"`
}

// Recount recomputes the counters from the result list.
func (r *DispatchReport) Recount() {
	r.TotalSent = 0
	r.TotalFailed = 0
	for _, res := range r.Results {
		if res.Status == DispatchSent {
			r.TotalSent++
		} else {
			r.TotalFailed++
		}
	}
}
