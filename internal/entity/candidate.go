package entity

// ScreenerCategory identifies a predefined Yahoo Finance screener.
type ScreenerCategory string

const (
	CategoryMostActives ScreenerCategory = "most_actives"
	CategoryDayGainers  ScreenerCategory = "day_gainers"
	CategoryDayLosers   ScreenerCategory = "day_losers"
)

// Valid reports whether the category is one of the supported screeners.
func (c ScreenerCategory) Valid() bool {
	switch c {
	case CategoryMostActives, CategoryDayGainers, CategoryDayLosers:
		return true
	}
	return false
}

// Candidate is one row from the quote source, immutable once fetched.
// Lifetime is a single pipeline run.
type Candidate struct {
	Symbol        string             `json:"symbol"`
	Name          string             `json:"name"`
	Price         float64            `json:"price"`
	Change        float64            `json:"change"`
	ChangePercent float64            `json:"change_percent"`
	Volume        int64              `json:"volume"`
	MarketCap     int64              `json:"market_cap"`
	Categories    []ScreenerCategory `json:"categories,omitempty"`
}
