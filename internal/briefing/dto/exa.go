package dto

// ExaSearchRequest is the payload for the Exa /search endpoint.
type ExaSearchRequest struct {
	Query              string `json:"query"`
	NumResults         int    `json:"num_results"`
	StartPublishedDate string `json:"start_published_date,omitempty"`
	EndPublishedDate   string `json:"end_published_date,omitempty"`
	Type               string `json:"type,omitempty"`
	UseAutoprompt      bool   `json:"use_autoprompt,omitempty"`
}

// ExaResult is one search hit.
type ExaResult struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	PublishedDate string `json:"publishedDate"`
	Author        string `json:"author"`
	Text          string `json:"text"`
}

// ExaSearchResponse is the Exa /search response envelope.
type ExaSearchResponse struct {
	Results []ExaResult `json:"results"`
}
