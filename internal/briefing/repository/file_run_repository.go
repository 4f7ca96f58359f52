package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang-stock-briefing/internal/briefing/dto"
	"golang-stock-briefing/internal/entity"
	"golang-stock-briefing/pkg/logger"
)

// runIDTimestampLayout includes nanoseconds so two runs for the same
// symbol in the same second still get distinct snapshot ids.
const runIDTimestampLayout = "20060102_150405.000000000"

type fileRunRepository struct {
	dir string
	log *logger.Logger
	now func() time.Time
}

// NewFileRunRepository creates a RunRepository that stores one JSON
// snapshot file per pipeline run under dir.
func NewFileRunRepository(dir string, log *logger.Logger) (RunRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &fileRunRepository{dir: dir, log: log, now: time.Now}, nil
}

// Save writes the run snapshot and returns its generated id.
func (r *fileRunRepository) Save(ctx context.Context, run *entity.PipelineRun) (string, error) {
	symbol := run.Symbol()
	if symbol == "" {
		symbol = "UNKNOWN"
	}

	ts := run.CreatedAt
	if ts.IsZero() {
		ts = r.now()
	}
	id := fmt.Sprintf("briefing_%s_%s", symbol, ts.Format(runIDTimestampLayout))
	run.ID = id

	raw, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal run snapshot: %w", err)
	}

	path := filepath.Join(r.dir, id+".json")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("failed to write run snapshot: %w", err)
	}

	r.log.InfoContext(ctx, "Run snapshot saved", logger.StringField("id", id), logger.StringField("path", path))
	return id, nil
}

// List scans the snapshot directory and returns a filtered page, newest
// first, together with the total match count.
func (r *fileRunRepository) List(ctx context.Context, filter *dto.RunFilter) ([]entity.RunSummary, int, error) {
	filter.Normalize()

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read output directory: %w", err)
	}

	var matched []entity.RunSummary
	for _, dirEntry := range entries {
		if dirEntry.IsDir() || !strings.HasSuffix(dirEntry.Name(), ".json") {
			continue
		}
		run, err := r.readSnapshot(dirEntry.Name())
		if err != nil {
			r.log.WarnContext(ctx, "Skipping unreadable snapshot", logger.StringField("file", dirEntry.Name()), logger.ErrorField(err))
			continue
		}
		if !matchesFilter(run, filter) {
			continue
		}
		summary := entity.RunSummary{
			ID:        run.ID,
			Symbol:    run.Symbol(),
			Status:    run.Status(),
			CreatedAt: run.CreatedAt,
		}
		if run.Briefing != nil {
			summary.Title = run.Briefing.Title
		}
		matched = append(matched, summary)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)
	start := filter.Offset()
	if start >= total {
		return []entity.RunSummary{}, total, nil
	}
	end := start + filter.Limit
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

// Get loads one snapshot by id.
func (r *fileRunRepository) Get(ctx context.Context, id string) (*entity.PipelineRun, error) {
	if id == "" || strings.ContainsAny(id, "/\\") {
		return nil, ErrRunNotFound
	}
	run, err := r.readSnapshot(id + ".json")
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrRunNotFound
		}
		return nil, err
	}
	return run, nil
}

func (r *fileRunRepository) readSnapshot(name string) (*entity.PipelineRun, error) {
	raw, err := os.ReadFile(filepath.Join(r.dir, name))
	if err != nil {
		return nil, err
	}
	var run entity.PipelineRun
	if err := json.Unmarshal(raw, &run); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot %s: %w", name, err)
	}
	if run.ID == "" {
		run.ID = strings.TrimSuffix(name, ".json")
	}
	return &run, nil
}

func matchesFilter(run *entity.PipelineRun, filter *dto.RunFilter) bool {
	if filter.Symbol != "" && !strings.EqualFold(run.Symbol(), filter.Symbol) {
		return false
	}
	if filter.Status != "" && run.Status() != filter.Status {
		return false
	}
	if filter.StartDate != nil && run.CreatedAt.Before(*filter.StartDate) {
		return false
	}
	if filter.EndDate != nil && run.CreatedAt.After(*filter.EndDate) {
		return false
	}
	return true
}
