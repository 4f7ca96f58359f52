package dto

// Part is a piece of Gemini request or response content.
type Part struct {
	Text string `json:"text"`
}

// Content groups parts for the Gemini API.
type Content struct {
	Parts []Part `json:"parts"`
}

// GeminiAPIRequest is the generateContent request body.
type GeminiAPIRequest struct {
	Contents []Content `json:"contents"`
}

// GeminiAPIResponse is the generateContent response body.
type GeminiAPIResponse struct {
	Candidates []struct {
		Content Content `json:"content"`
	} `json:"candidates"`
}
