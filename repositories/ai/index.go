package AIRepository

import (
	"context"

	"github.com/sashabaranov/go-openai"
)

type Repository struct {
	client *openai.Client
}

func NewRepository(apiKey string) *Repository {
	client := openai.NewClient(apiKey)
	return &Repository{
		client: client,
	}
}

// CreateChatCompletion forwards the request to the OpenAI client. The
// service layer talks to this method through its CompletionClient
// interface.
func (r *Repository) CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return r.client.CreateChatCompletion(ctx, request)
}
