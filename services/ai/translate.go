package AIService

import (
	"context"
	"fmt"
	"strings"

	"github.com/okanay/backend-translate-lingua/configs"
	"github.com/okanay/backend-translate-lingua/types"
	"github.com/sashabaranov/go-openai"
)

// TranslateResult is the outcome of a translate call, including the
// resolved source language when auto-detection ran.
type TranslateResult struct {
	TranslatedText string
	SourceLanguage string
	TokensUsed     int
	ChunkCount     int
}

// Translate translates text of unbounded length. Short inputs go through a
// single completion call, long inputs are split on paragraph boundaries and
// translated chunk by chunk, sequentially. A failing chunk is replaced by
// an inline error marker instead of aborting its siblings.
func (s *AIService) Translate(ctx context.Context, text, sourceLang, targetLang string, options types.TranslationOptions) (TranslateResult, error) {
	var result TranslateResult

	if strings.TrimSpace(text) == "" {
		return result, newValidationError("Text to translate is required.")
	}
	if strings.TrimSpace(targetLang) == "" {
		return result, newValidationError("Target language is required.")
	}

	// Resolve the source language before any translation call
	if strings.TrimSpace(sourceLang) == "" {
		detected, tokensUsed, err := s.DetectLanguage(ctx, text)
		result.TokensUsed += tokensUsed
		if err != nil {
			return result, err
		}
		sourceLang = detected
	}
	result.SourceLanguage = sourceLang

	instruction := buildSystemInstruction(sourceLang, targetLang, options)
	params := paramsForStyle(options.Style)

	// Direct path
	if estimateTokens(text) <= configs.AI_TOKEN_THRESHOLD {
		translated, tokensUsed, err := s.translateOnce(ctx, instruction, text, params)
		result.TokensUsed += tokensUsed
		if err != nil {
			return result, classifyAPIError(err)
		}

		result.TranslatedText = translated
		result.ChunkCount = 1
		return result, nil
	}

	// Chunked path
	chunks := chunkText(text, configs.AI_MAX_CHUNK_SIZE)
	translatedChunks := make([]string, len(chunks))

	for i, chunk := range chunks {
		translated, tokensUsed, err := s.translateOnce(ctx, instruction, chunk, params)
		result.TokensUsed += tokensUsed
		if err != nil {
			// Per-chunk isolation: flag the failed segment inline and
			// keep going, do not abort the siblings.
			translatedChunks[i] = chunkErrorMarker(err)
			continue
		}
		translatedChunks[i] = translated
	}

	result.TranslatedText = strings.Join(translatedChunks, "\n\n")
	result.ChunkCount = len(chunks)
	return result, nil
}

// translateOnce performs one completion call and returns the trimmed
// response text with the reported token usage.
func (s *AIService) translateOnce(ctx context.Context, instruction, text string, params modelParams) (string, int, error) {
	resp, err := s.Client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: configs.AI_TRANSLATE_MODEL,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: instruction,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: text,
				},
			},
			Temperature: params.Temperature,
			MaxTokens:   params.MaxTokens,
		},
	)
	if err != nil {
		return "", 0, err
	}

	if len(resp.Choices) == 0 {
		return "", resp.Usage.TotalTokens, fmt.Errorf("empty response from completion API")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), resp.Usage.TotalTokens, nil
}

// chunkErrorMarker builds the inline marker embedded in a failed chunk's
// slot of the combined output.
func chunkErrorMarker(err error) string {
	return fmt.Sprintf("[translation failed: %s]", classifyAPIError(err).Message)
}
