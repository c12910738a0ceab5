package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gestorhq/gestor-be/types"
	"github.com/sashabaranov/go-openai"
)

// completionTimeout bounds one model invocation. On expiry the client
// falls back exactly as on any other failure; it never hangs the upload
// flow.
const completionTimeout = 30 * time.Second

// OpenAIService is the model-backed extraction client. A missing API key
// at construction puts it in permanent fallback mode; a failing call
// degrades per request. Either way Analyze always returns a result.
type OpenAIService struct {
	client   *openai.Client
	model    string
	enabled  bool
	fallback *FallbackAnalyzer
}

func NewOpenAIService(baseURL, apiKey, model string, fallback *FallbackAnalyzer) *OpenAIService {
	s := &OpenAIService{
		model:    model,
		fallback: fallback,
	}
	if apiKey == "" {
		log.Println("OPENAI_API_KEY not configured - document analysis uses the heuristic fallback")
		return s
	}
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	s.client = openai.NewClientWithConfig(config)
	s.enabled = true
	return s
}

func (s *OpenAIService) Enabled() bool {
	return s.enabled
}

func (s *OpenAIService) Analyze(ctx context.Context, text, fileName string) types.ExtractionResult {
	if !s.enabled {
		return s.fallback.Analyze(text, fileName)
	}
	result, err := s.complete(ctx, text)
	if err != nil {
		// Single attempt, no retry: bounded latency matters more here
		// than maximizing the chance of a model-derived answer.
		log.Printf("openai analysis failed, using fallback: %v", err)
		return s.fallback.Analyze(text, fileName)
	}
	result.AIPowered = true
	log.Printf("openai analysis done: %d projects, %d tasks, %d events",
		len(result.Projects), len(result.Tasks), len(result.Timeline))
	return result
}

func (s *OpenAIService) complete(ctx context.Context, text string) (types.ExtractionResult, error) {
	ctx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: s.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: extractionSystemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: buildExtractionPrompt(text),
				},
			},
			MaxTokens:   2000,
			Temperature: 0.3,
		},
	)
	if err != nil {
		return types.ExtractionResult{}, err
	}
	if len(resp.Choices) == 0 {
		return types.ExtractionResult{}, errors.New("no response generated")
	}
	return decodeModelResponse(resp.Choices[0].Message.Content)
}
