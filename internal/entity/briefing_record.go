package entity

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// BriefingRecord is the Postgres row backing one persisted run snapshot.
type BriefingRecord struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	RunID        string         `gorm:"uniqueIndex;not null" json:"run_id"`
	Symbol       string         `gorm:"index;not null" json:"symbol"`
	Status       string         `gorm:"index;not null" json:"status"`
	Title        string         `json:"title"`
	Categories   pq.StringArray `gorm:"type:text[]" json:"categories"`
	Briefing     datatypes.JSON `json:"briefing"`
	StockData    datatypes.JSON `json:"stock_data"`
	ErrorMessage string         `json:"error_message,omitempty"`
	CreatedAt    time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
}

// TableName specifies the table name for the BriefingRecord model.
func (BriefingRecord) TableName() string {
	return "briefing_runs"
}
