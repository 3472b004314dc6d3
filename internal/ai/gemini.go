package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"StockCompass/internal/model"
)

const geminiTimeout = 15 * time.Second

// GeminiProvider analyzes sentiment through the Google Gemini API.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a provider for the given API key.
func NewGeminiProvider(ctx context.Context, apiKey, modelName string) (*GeminiProvider, error) {
	if modelName == "" {
		modelName = "gemini-2.0-flash"
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiProvider{client: client, model: modelName}, nil
}

func (g *GeminiProvider) Name() string { return "gemini" }

// CheckStatus sends a minimal request to verify the API key works.
func (g *GeminiProvider) CheckStatus(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, geminiTimeout)
	defer cancel()

	_, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{genai.NewContentFromText("ping", genai.RoleUser)}, nil)
	if err != nil {
		return fmt.Errorf("gemini status check: %w", err)
	}
	return nil
}

func (g *GeminiProvider) complete(ctx context.Context, system, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, geminiTimeout)
	defer cancel()

	config := &genai.GenerateContentConfig{}
	if system != "" {
		config.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}, config)
	if err != nil {
		return "", fmt.Errorf("gemini api call: %w", err)
	}

	var out strings.Builder
	if resp != nil {
		for _, candidate := range resp.Candidates {
			if candidate.Content == nil {
				continue
			}
			for _, part := range candidate.Content.Parts {
				if part.Text != "" {
					out.WriteString(part.Text)
				}
			}
			if out.Len() > 0 {
				break
			}
		}
	}
	if out.Len() == 0 {
		return "", fmt.Errorf("gemini returned empty response")
	}
	return out.String(), nil
}

func (g *GeminiProvider) AnalyzeSentiment(ctx context.Context, topic string) (*model.SentimentResult, error) {
	raw, err := g.complete(ctx, sentimentSystem, sentimentPrompt(topic))
	if err != nil {
		return nil, err
	}

	sentiment, confidence, reasoning, ok := ParseSentiment(raw)
	if !ok {
		return nil, fmt.Errorf("gemini returned unparseable sentiment: %.80s", raw)
	}

	return &model.SentimentResult{
		Sentiment:  sentiment,
		Confidence: confidence,
		Reasoning:  reasoning,
		Model:      g.model,
		Provider:   g.Name(),
		Timestamp:  time.Now(),
	}, nil
}

func (g *GeminiProvider) Recommend(ctx context.Context, tickers []string) (*RecommendationResult, error) {
	raw, err := g.complete(ctx, sentimentSystem, recommendPrompt(tickers))
	if err != nil {
		return nil, err
	}

	picks, reasoning, err := parsePicks(raw)
	if err != nil {
		return nil, fmt.Errorf("gemini recommendation: %w", err)
	}

	return &RecommendationResult{
		Picks:     picks,
		Reasoning: reasoning,
		Model:     g.model,
		Provider:  g.Name(),
		Timestamp: time.Now(),
	}, nil
}
