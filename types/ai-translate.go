package types

// DetectLanguageRequest - language detection request
type DetectLanguageRequest struct {
	Text string `json:"text" binding:"required"`
}

// DetectLanguageResponse - language detection response
type DetectLanguageResponse struct {
	Language   string `json:"language"`
	TokensUsed int    `json:"tokensUsed"`
}
