package renderer

import (
	"context"

	"golang-stock-briefing/internal/entity"
)

// Renderer turns a composed briefing into a file artifact and returns
// its path. Rendering is best-effort: callers treat an error as a
// degraded run, never a failed one.
type Renderer interface {
	Render(ctx context.Context, doc *entity.BriefingDocument, security *entity.EnrichedSecurity) (string, error)
}
