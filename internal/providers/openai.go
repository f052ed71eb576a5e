package providers

import (
	"context"
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/Adiiii-i/travara/pkg/utils"
)

// openAIPlaceholderKey is the sample value shipped in .env.example; treating
// it as unset avoids burning a request on a key that can never work.
const openAIPlaceholderKey = "your_openai_api_key_here"

const (
	generationTemperature = 0.7
	generationMaxTokens   = 2000
)

// OpenAI is the hosted-model provider, using gpt-3.5-turbo for cost
// efficiency.
type OpenAI struct {
	client *openai.Client
	model  string
}

func NewOpenAI(apiKey string) (*OpenAI, error) {
	if apiKey == "" || apiKey == openAIPlaceholderKey {
		return nil, &utils.ConfigurationError{
			Service: "openai",
			Reason:  "OPENAI_API_KEY not found in environment variables",
		}
	}
	return &OpenAI{
		client: openai.NewClient(apiKey),
		model:  openai.GPT3Dot5Turbo,
	}, nil
}

func (p *OpenAI) Name() string { return "openai" }

func (p *OpenAI) GenerateItinerary(ctx context.Context, trip Trip) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: BuildPrompt(trip)},
		},
		Temperature: generationTemperature,
		MaxTokens:   generationMaxTokens,
	})
	if err != nil {
		return "", &utils.GenerationError{Provider: p.Name(), Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &utils.GenerationError{Provider: p.Name(), Err: errors.New("response contained no choices")}
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
