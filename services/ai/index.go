package AIService

import (
	"context"

	"github.com/sashabaranov/go-openai"
)

// CompletionClient is the slice of the OpenAI client the service needs.
// AIRepository.Repository satisfies it in production.
type CompletionClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// AIService performs translation and language detection against the
// completion API. It holds no persistent state, concurrent calls are
// fully independent.
type AIService struct {
	Client CompletionClient
}

func NewAIService(client CompletionClient) *AIService {
	return &AIService{
		Client: client,
	}
}
