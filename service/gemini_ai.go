package service

import (
	"context"
	"errors"
	"log"

	"github.com/gestorhq/gestor-be/types"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiService is the alternate model-backed extraction client, same
// contract as OpenAIService.
type GeminiService struct {
	client   *genai.Client
	model    *genai.GenerativeModel
	enabled  bool
	fallback *FallbackAnalyzer
}

func NewGeminiService(ctx context.Context, apiKey, modelName string, fallback *FallbackAnalyzer) (*GeminiService, error) {
	s := &GeminiService{
		fallback: fallback,
	}
	if apiKey == "" {
		log.Println("GEMINI_API_KEY not configured - document analysis uses the heuristic fallback")
		return s, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	model := client.GenerativeModel(modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(extractionSystemPrompt)},
	}
	model.SetTemperature(0.3)
	model.SetMaxOutputTokens(2000)
	model.ResponseMIMEType = "application/json"

	s.client = client
	s.model = model
	s.enabled = true
	return s, nil
}

func (s *GeminiService) Enabled() bool {
	return s.enabled
}

func (s *GeminiService) Analyze(ctx context.Context, text, fileName string) types.ExtractionResult {
	if !s.enabled {
		return s.fallback.Analyze(text, fileName)
	}
	result, err := s.complete(ctx, text)
	if err != nil {
		log.Printf("gemini analysis failed, using fallback: %v", err)
		return s.fallback.Analyze(text, fileName)
	}
	result.AIPowered = true
	return result
}

func (s *GeminiService) complete(ctx context.Context, text string) (types.ExtractionResult, error) {
	ctx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	resp, err := s.model.GenerateContent(ctx, genai.Text(buildExtractionPrompt(text)))
	if err != nil {
		return types.ExtractionResult{}, err
	}
	if len(resp.Candidates) == 0 {
		return types.ExtractionResult{}, errors.New("no response generated")
	}

	content := ""
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				content += string(t)
			}
		}
	}
	return decodeModelResponse(content)
}
