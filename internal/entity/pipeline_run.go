package entity

import "time"

// RunStatus classifies a finished pipeline run for listing and filters.
type RunStatus string

const (
	RunCompleted RunStatus = "completed"
	RunFailed    RunStatus = "failed"
)

// PipelineRun is the aggregate outcome of one orchestrator invocation.
// Immutable once the run ends.
type PipelineRun struct {
	ID             string            `json:"id,omitempty"`
	StepsCompleted []string          `json:"steps_completed"`
	StepsFailed    []string          `json:"steps_failed"`
	Security       *EnrichedSecurity `json:"stock_data,omitempty"`
	Briefing       *BriefingDocument `json:"briefing,omitempty"`
	Dispatch       *DispatchReport   `json:"send_results,omitempty"`
	Success        bool              `json:"success"`
	Error          string            `json:"error,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}

// Status maps the run outcome onto the listing status values.
func (r *PipelineRun) Status() RunStatus {
	if r.Success {
		return RunCompleted
	}
	return RunFailed
}

// Symbol returns the selected security's symbol, or empty when the run
// aborted before selection.
func (r *PipelineRun) Symbol() string {
	if r.Security == nil {
		return ""
	}
	return r.Security.Symbol
}

// RunSummary is the listing projection of a persisted run snapshot.
type RunSummary struct {
	ID        string    `json:"id"`
	Symbol    string    `json:"symbol"`
	Title     string    `json:"title"`
	Status    RunStatus `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
