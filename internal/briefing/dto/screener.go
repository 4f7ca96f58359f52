package dto

// YahooQuote is one quote row from the Yahoo Finance screener API.
// Only the fields the pipeline reads are mapped.
type YahooQuote struct {
	Symbol                     string  `json:"symbol"`
	ShortName                  string  `json:"shortName"`
	LongName                   string  `json:"longName"`
	RegularMarketPrice         float64 `json:"regularMarketPrice"`
	RegularMarketChange        float64 `json:"regularMarketChange"`
	RegularMarketChangePercent float64 `json:"regularMarketChangePercent"`
	RegularMarketVolume        int64   `json:"regularMarketVolume"`
	MarketCap                  int64   `json:"marketCap"`
}

// DisplayName prefers the short name and falls back to the long name.
func (q YahooQuote) DisplayName() string {
	if q.ShortName != "" {
		return q.ShortName
	}
	return q.LongName
}

// YahooScreenerResponse is the envelope of the predefined screener API.
type YahooScreenerResponse struct {
	Finance struct {
		Result []struct {
			ID     string       `json:"id"`
			Quotes []YahooQuote `json:"quotes"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"finance"`
}
