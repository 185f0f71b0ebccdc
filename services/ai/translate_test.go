package AIService

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/okanay/backend-translate-lingua/configs"
	"github.com/okanay/backend-translate-lingua/types"
	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCompletionClient records every request and answers from a scripted
// respond function.
type fakeCompletionClient struct {
	requests []openai.ChatCompletionRequest
	respond  func(call int, req openai.ChatCompletionRequest) (string, error)
}

func (f *fakeCompletionClient) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	call := len(f.requests)
	f.requests = append(f.requests, req)

	content, err := f.respond(call, req)
	if err != nil {
		return openai.ChatCompletionResponse{}, err
	}

	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: content}},
		},
		Usage: openai.Usage{TotalTokens: 10},
	}, nil
}

func newFakeService(respond func(call int, req openai.ChatCompletionRequest) (string, error)) (*AIService, *fakeCompletionClient) {
	client := &fakeCompletionClient{respond: respond}
	return NewAIService(client), client
}

func apiError(status int) error {
	return &openai.APIError{HTTPStatusCode: status, Message: "upstream failure"}
}

// longText builds a text of n paragraphs whose estimate is guaranteed to
// exceed the single-call threshold.
func longText(paragraphs int) string {
	parts := make([]string, paragraphs)
	for i := range parts {
		parts[i] = strings.Repeat(fmt.Sprintf("p%d ", i), 800)
	}
	return strings.Join(parts, "\n\n")
}

func TestTranslateValidation(t *testing.T) {
	service, client := newFakeService(func(int, openai.ChatCompletionRequest) (string, error) {
		return "should not be called", nil
	})

	t.Run("empty text", func(t *testing.T) {
		_, err := service.Translate(context.Background(), "   ", "en", "fr", types.TranslationOptions{})

		var translateErr *TranslateError
		require.ErrorAs(t, err, &translateErr)
		assert.Equal(t, ErrCodeValidation, translateErr.Code)
	})

	t.Run("missing target language", func(t *testing.T) {
		_, err := service.Translate(context.Background(), "hello", "en", "", types.TranslationOptions{})

		var translateErr *TranslateError
		require.ErrorAs(t, err, &translateErr)
		assert.Equal(t, ErrCodeValidation, translateErr.Code)
	})

	assert.Empty(t, client.requests, "validation failures must not reach the API")
}

func TestTranslateDirectPath(t *testing.T) {
	service, client := newFakeService(func(int, openai.ChatCompletionRequest) (string, error) {
		return "  Bonjour le monde \n", nil
	})

	result, err := service.Translate(context.Background(), "Hello world", "en", "fr", types.TranslationOptions{})

	require.NoError(t, err)
	assert.Equal(t, "Bonjour le monde", result.TranslatedText)
	assert.Equal(t, "en", result.SourceLanguage)
	assert.Equal(t, 1, result.ChunkCount)
	assert.Equal(t, 10, result.TokensUsed)
	require.Len(t, client.requests, 1)

	request := client.requests[0]
	assert.Equal(t, configs.AI_TRANSLATE_MODEL, request.Model)
	require.Len(t, request.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, request.Messages[0].Role)
	assert.Equal(t, "Hello world", request.Messages[1].Content)
}

func TestTranslateDirectPathParams(t *testing.T) {
	service, client := newFakeService(func(int, openai.ChatCompletionRequest) (string, error) {
		return "ok", nil
	})

	_, err := service.Translate(context.Background(), "Hello", "en", "fr", types.TranslationOptions{Style: types.StyleDetailed})

	require.NoError(t, err)
	require.Len(t, client.requests, 1)
	assert.Equal(t, float32(0.7), client.requests[0].Temperature)
	assert.Equal(t, 4096, client.requests[0].MaxTokens)
}

func TestTranslateAutoDetection(t *testing.T) {
	service, client := newFakeService(func(call int, req openai.ChatCompletionRequest) (string, error) {
		if call == 0 {
			return " DE \n", nil
		}
		return "translated", nil
	})

	result, err := service.Translate(context.Background(), "Guten Tag", "", "en", types.TranslationOptions{})

	require.NoError(t, err)
	assert.Equal(t, "de", result.SourceLanguage)
	require.Len(t, client.requests, 2)
	assert.Equal(t, configs.AI_DETECT_MODEL, client.requests[0].Model)
	assert.Contains(t, client.requests[1].Messages[0].Content, "German")
}

func TestTranslateDetectionFailure(t *testing.T) {
	t.Run("api error", func(t *testing.T) {
		service, client := newFakeService(func(int, openai.ChatCompletionRequest) (string, error) {
			return "", apiError(500)
		})

		_, err := service.Translate(context.Background(), "Guten Tag", "", "en", types.TranslationOptions{})

		var translateErr *TranslateError
		require.ErrorAs(t, err, &translateErr)
		assert.Equal(t, ErrCodeDetection, translateErr.Code)
		assert.Len(t, client.requests, 1, "no translation call after failed detection")
	})

	t.Run("non-code response", func(t *testing.T) {
		service, _ := newFakeService(func(int, openai.ChatCompletionRequest) (string, error) {
			return "I think this is German", nil
		})

		_, err := service.Translate(context.Background(), "Guten Tag", "", "en", types.TranslationOptions{})

		var translateErr *TranslateError
		require.ErrorAs(t, err, &translateErr)
		assert.Equal(t, ErrCodeDetection, translateErr.Code)
	})
}

func TestTranslateDirectPathErrorClassification(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorCode
	}{
		{name: "rate limited", err: apiError(429), expected: ErrCodeRateLimit},
		{name: "unauthorized", err: apiError(401), expected: ErrCodeAuth},
		{name: "server error", err: apiError(500), expected: ErrCodeUnavailable},
		{name: "other api error", err: apiError(404), expected: ErrCodeGeneric},
		{name: "transport error", err: errors.New("connection refused"), expected: ErrCodeGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newFakeService(func(int, openai.ChatCompletionRequest) (string, error) {
				return "", tt.err
			})

			_, err := service.Translate(context.Background(), "Hello", "en", "fr", types.TranslationOptions{})

			var translateErr *TranslateError
			require.ErrorAs(t, err, &translateErr)
			assert.Equal(t, tt.expected, translateErr.Code)
		})
	}
}

func TestTranslateChunkedPath(t *testing.T) {
	text := longText(5)
	require.Greater(t, estimateTokens(text), configs.AI_TOKEN_THRESHOLD, "input must exceed the direct-call threshold")

	service, client := newFakeService(func(call int, req openai.ChatCompletionRequest) (string, error) {
		return fmt.Sprintf("T%d", call), nil
	})

	result, err := service.Translate(context.Background(), text, "en", "fr", types.TranslationOptions{})

	require.NoError(t, err)
	assert.Greater(t, result.ChunkCount, 1)
	assert.Len(t, client.requests, result.ChunkCount)

	// Order preserved: segment i is the response to call i
	segments := strings.Split(result.TranslatedText, "\n\n")
	require.Len(t, segments, result.ChunkCount)
	for i, segment := range segments {
		assert.Equal(t, fmt.Sprintf("T%d", i), segment)
	}

	// Every chunk call carries the same system instruction
	instruction := client.requests[0].Messages[0].Content
	for _, request := range client.requests {
		assert.Equal(t, instruction, request.Messages[0].Content)
	}
}

func TestTranslateChunkedPathFailureIsolation(t *testing.T) {
	text := longText(4)

	service, client := newFakeService(func(call int, req openai.ChatCompletionRequest) (string, error) {
		if call == 1 {
			return "", apiError(429)
		}
		return fmt.Sprintf("T%d", call), nil
	})

	result, err := service.Translate(context.Background(), text, "en", "fr", types.TranslationOptions{})

	require.NoError(t, err, "a failing chunk must not fail the operation")
	require.Greater(t, result.ChunkCount, 2)
	assert.Len(t, client.requests, result.ChunkCount, "siblings still translated after a failure")

	segments := strings.Split(result.TranslatedText, "\n\n")
	require.Len(t, segments, result.ChunkCount)

	assert.Equal(t, "T0", segments[0])
	assert.Contains(t, segments[1], "[translation failed:")
	assert.Contains(t, segments[1], "too many requests")
	for i := 2; i < len(segments); i++ {
		assert.Equal(t, fmt.Sprintf("T%d", i), segments[i])
	}
}

func TestDetectLanguage(t *testing.T) {
	t.Run("returns lower-cased code", func(t *testing.T) {
		service, client := newFakeService(func(int, openai.ChatCompletionRequest) (string, error) {
			return " ES ", nil
		})

		code, tokensUsed, err := service.DetectLanguage(context.Background(), "Hola mundo")

		require.NoError(t, err)
		assert.Equal(t, "es", code)
		assert.Equal(t, 10, tokensUsed)
		require.Len(t, client.requests, 1)
		assert.Equal(t, configs.AI_DETECT_MODEL, client.requests[0].Model)
	})

	t.Run("empty text", func(t *testing.T) {
		service, _ := newFakeService(func(int, openai.ChatCompletionRequest) (string, error) {
			return "en", nil
		})

		_, _, err := service.DetectLanguage(context.Background(), "  ")

		var translateErr *TranslateError
		require.ErrorAs(t, err, &translateErr)
		assert.Equal(t, ErrCodeValidation, translateErr.Code)
	})

	t.Run("long input is sampled", func(t *testing.T) {
		service, client := newFakeService(func(int, openai.ChatCompletionRequest) (string, error) {
			return "en", nil
		})

		_, _, err := service.DetectLanguage(context.Background(), strings.Repeat("word ", 1000))

		require.NoError(t, err)
		assert.LessOrEqual(t, len(client.requests[0].Messages[1].Content), 500)
	})
}
