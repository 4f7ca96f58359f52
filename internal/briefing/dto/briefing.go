package dto

import (
	"fmt"
	"time"

	"golang-stock-briefing/internal/entity"
)

// ChannelSpecRequest is the wire form of a dispatch destination.
type ChannelSpecRequest struct {
	Kind    string `json:"kind"`
	Address string `json:"address,omitempty"`
	Webhook string `json:"webhook,omitempty"`
	Room    string `json:"room,omitempty"`
}

// ToEntity validates the request and converts it to an entity.ChannelSpec.
func (r ChannelSpecRequest) ToEntity() (entity.ChannelSpec, error) {
	kind := entity.ChannelKind(r.Kind)
	if !kind.Valid() {
		return entity.ChannelSpec{}, fmt.Errorf("unknown channel kind %q", r.Kind)
	}
	switch kind {
	case entity.ChannelEmail:
		if r.Address == "" {
			return entity.ChannelSpec{}, fmt.Errorf("email channel requires an address")
		}
	case entity.ChannelChat:
		if r.Webhook == "" {
			return entity.ChannelSpec{}, fmt.Errorf("chat channel requires a webhook")
		}
	}
	return entity.ChannelSpec{
		Kind:    kind,
		Address: r.Address,
		Webhook: r.Webhook,
		Room:    r.Room,
	}, nil
}

// CreateBriefingRequest triggers one pipeline run.
type CreateBriefingRequest struct {
	Categories []string             `json:"categories,omitempty"`
	Count      int                  `json:"count,omitempty"`
	Language   string               `json:"language,omitempty"`
	Channels   []ChannelSpecRequest `json:"channels,omitempty"`
}

// SendBriefingRequest re-dispatches a stored briefing to new channels.
type SendBriefingRequest struct {
	Channels []ChannelSpecRequest `json:"channels"`
}

// RunFilter narrows and pages a run snapshot listing.
type RunFilter struct {
	Page      int
	Limit     int
	StartDate *time.Time
	EndDate   *time.Time
	Symbol    string
	Status    entity.RunStatus
}

// Normalize applies pagination defaults and bounds.
func (f *RunFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		f.Limit = 100
	}
}

// Offset returns the list offset implied by page and limit.
func (f *RunFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// RunListResponse is the paginated listing payload.
type RunListResponse struct {
	Briefings []entity.RunSummary `json:"briefings"`
	Page      int                 `json:"page"`
	Limit     int                 `json:"limit"`
	Total     int                 `json:"total"`
}

// RunResponse is the single-run payload returned by create and get.
type RunResponse struct {
	ID        string                   `json:"id"`
	Briefing  *entity.BriefingDocument `json:"briefing,omitempty"`
	StockData *entity.EnrichedSecurity `json:"stock_data,omitempty"`
	Dispatch  *entity.DispatchReport   `json:"dispatch,omitempty"`
	Steps     []string                 `json:"steps_completed"`
	Success   bool                     `json:"success"`
	Error     string                   `json:"error,omitempty"`
	CreatedAt time.Time                `json:"created_at"`
}

// FromRun projects a pipeline run into the API payload.
func FromRun(run *entity.PipelineRun) RunResponse {
	return RunResponse{
		ID:        run.ID,
		Briefing:  run.Briefing,
		StockData: run.Security,
		Dispatch:  run.Dispatch,
		Steps:     run.StepsCompleted,
		Success:   run.Success,
		Error:     run.Error,
		CreatedAt: run.CreatedAt,
	}
}
