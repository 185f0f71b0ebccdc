package AIService

import (
	"context"
	"fmt"
	"strings"

	"github.com/okanay/backend-translate-lingua/configs"
	"github.com/sashabaranov/go-openai"
)

const detectInstruction = "You are a language identification system. Reply with only the ISO 639-1 two-letter code of the language the user's text is written in, lowercase, with no other output."

// DetectLanguage classifies the language of text with a single completion
// call and returns the lower-cased two-letter ISO 639-1 code. Long inputs
// are sampled from the front, a prefix is plenty for classification.
func (s *AIService) DetectLanguage(ctx context.Context, text string) (string, int, error) {
	if strings.TrimSpace(text) == "" {
		return "", 0, newValidationError("Text to detect is required.")
	}

	sample := text
	if len(sample) > 500 {
		sample = sample[:500]
	}

	resp, err := s.Client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: configs.AI_DETECT_MODEL,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: detectInstruction,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: sample,
				},
			},
			Temperature: 0,
			MaxTokens:   4,
		},
	)
	if err != nil {
		return "", 0, newDetectionError(err)
	}

	if len(resp.Choices) == 0 {
		return "", resp.Usage.TotalTokens, newDetectionError(fmt.Errorf("empty response from completion API"))
	}

	code := strings.ToLower(strings.TrimSpace(resp.Choices[0].Message.Content))
	if !isISO639Code(code) {
		return "", resp.Usage.TotalTokens, newDetectionError(fmt.Errorf("unexpected detection response %q", code))
	}

	return code, resp.Usage.TotalTokens, nil
}

func isISO639Code(code string) bool {
	if len(code) != 2 {
		return false
	}
	for _, r := range code {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
