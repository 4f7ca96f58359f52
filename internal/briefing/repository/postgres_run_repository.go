package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang-stock-briefing/internal/briefing/dto"
	"golang-stock-briefing/internal/entity"
	"golang-stock-briefing/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type postgresRunRepository struct {
	db  *gorm.DB
	log *logger.Logger
	now func() time.Time
}

// NewPostgresRunRepository creates a RunRepository backed by the
// briefing_runs table.
func NewPostgresRunRepository(db *gorm.DB, log *logger.Logger) RunRepository {
	return &postgresRunRepository{db: db, log: log, now: time.Now}
}

// Save stores the run snapshot as one row and returns its generated id.
func (r *postgresRunRepository) Save(ctx context.Context, run *entity.PipelineRun) (string, error) {
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

	record := entity.BriefingRecord{
		RunID:        id,
		Symbol:       symbol,
		Status:       string(run.Status()),
		ErrorMessage: run.Error,
		CreatedAt:    ts,
	}
	if run.Briefing != nil {
		record.Title = run.Briefing.Title
		raw, err := json.Marshal(run.Briefing)
		if err != nil {
			return "", fmt.Errorf("failed to marshal briefing document: %w", err)
		}
		record.Briefing = raw
	}
	if run.Security != nil {
		raw, err := json.Marshal(run.Security)
		if err != nil {
			return "", fmt.Errorf("failed to marshal stock data: %w", err)
		}
		record.StockData = raw
		for _, c := range run.Security.Categories {
			record.Categories = append(record.Categories, string(c))
		}
	}

	// The orchestrator saves twice per run: once right after composition
	// and once more with the dispatch outcome folded in.
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "run_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "title", "briefing", "stock_data", "error_message"}),
	}).Create(&record).Error
	if err != nil {
		return "", fmt.Errorf("failed to upsert briefing run: %w", err)
	}

	r.log.InfoContext(ctx, "Run snapshot saved", logger.StringField("id", id))
	return id, nil
}

// List queries a filtered page of snapshots, newest first.
func (r *postgresRunRepository) List(ctx context.Context, filter *dto.RunFilter) ([]entity.RunSummary, int, error) {
	filter.Normalize()

	query := r.db.WithContext(ctx).Model(&entity.BriefingRecord{})
	if filter.Symbol != "" {
		query = query.Where("symbol ILIKE ?", filter.Symbol)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.StartDate != nil {
		query = query.Where("created_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("created_at <= ?", *filter.EndDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count briefing runs: %w", err)
	}

	var records []entity.BriefingRecord
	err := query.
		Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&records).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list briefing runs: %w", err)
	}

	summaries := make([]entity.RunSummary, 0, len(records))
	for _, record := range records {
		summaries = append(summaries, entity.RunSummary{
			ID:        record.RunID,
			Symbol:    record.Symbol,
			Title:     record.Title,
			Status:    entity.RunStatus(record.Status),
			CreatedAt: record.CreatedAt,
		})
	}
	return summaries, int(total), nil
}

// Get loads one snapshot by id.
func (r *postgresRunRepository) Get(ctx context.Context, id string) (*entity.PipelineRun, error) {
	var record entity.BriefingRecord
	err := r.db.WithContext(ctx).Where("run_id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRunNotFound
		}
		return nil, fmt.Errorf("failed to load briefing run: %w", err)
	}

	run := entity.PipelineRun{
		ID:        record.RunID,
		Success:   record.Status == string(entity.RunCompleted),
		Error:     record.ErrorMessage,
		CreatedAt: record.CreatedAt,
	}
	if len(record.Briefing) > 0 {
		var doc entity.BriefingDocument
		if err := json.Unmarshal(record.Briefing, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal briefing document: %w", err)
		}
		run.Briefing = &doc
	}
	if len(record.StockData) > 0 {
		var security entity.EnrichedSecurity
		if err := json.Unmarshal(record.StockData, &security); err != nil {
			return nil, fmt.Errorf("failed to unmarshal stock data: %w", err)
		}
		run.Security = &security
	}
	return &run, nil
}
