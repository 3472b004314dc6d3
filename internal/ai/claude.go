package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"StockCompass/internal/model"
)

const claudeTimeout = 15 * time.Second

// ClaudeProvider analyzes sentiment through the Anthropic API.
type ClaudeProvider struct {
	client anthropic.Client
	model  string
}

// NewClaudeProvider creates a provider for the given API key. The model
// name may be empty, in which case a sensible default is used.
func NewClaudeProvider(apiKey, modelName string) *ClaudeProvider {
	if modelName == "" {
		modelName = "claude-3-5-haiku-latest"
	}
	return &ClaudeProvider{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  modelName,
	}
}

func (c *ClaudeProvider) Name() string { return "claude" }

// CheckStatus sends a minimal request to verify the API key works.
func (c *ClaudeProvider) CheckStatus(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, claudeTimeout)
	defer cancel()

	_, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: 8,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock("ping")),
		},
	})
	if err != nil {
		return fmt.Errorf("claude status check: %w", err)
	}
	return nil
}

func (c *ClaudeProvider) complete(ctx context.Context, system, prompt string, maxTokens int64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, claudeTimeout)
	defer cancel()

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("claude api call: %w", err)
	}

	var out strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			out.WriteString(block.Text)
		}
	}
	if out.Len() == 0 {
		return "", fmt.Errorf("claude returned empty response")
	}
	return out.String(), nil
}

const sentimentSystem = "You are a financial market analyst. Respond only with JSON."

func sentimentPrompt(topic string) string {
	return fmt.Sprintf(`Analyze the current market sentiment for %q.
Respond with a single JSON object, no prose:
{"sentiment":"positive|neutral|negative","confidence":0.0,"recommendation":"one sentence in Korean","reasoning":"one sentence in Korean"}`, topic)
}

func (c *ClaudeProvider) AnalyzeSentiment(ctx context.Context, topic string) (*model.SentimentResult, error) {
	raw, err := c.complete(ctx, sentimentSystem, sentimentPrompt(topic), 512)
	if err != nil {
		return nil, err
	}

	sentiment, confidence, reasoning, ok := ParseSentiment(raw)
	if !ok {
		return nil, fmt.Errorf("claude returned unparseable sentiment: %.80s", raw)
	}

	return &model.SentimentResult{
		Sentiment:  sentiment,
		Confidence: confidence,
		Reasoning:  reasoning,
		Model:      c.model,
		Provider:   c.Name(),
		Timestamp:  time.Now(),
	}, nil
}

func (c *ClaudeProvider) Recommend(ctx context.Context, tickers []string) (*RecommendationResult, error) {
	raw, err := c.complete(ctx, sentimentSystem, recommendPrompt(tickers), 1024)
	if err != nil {
		return nil, err
	}

	picks, reasoning, err := parsePicks(raw)
	if err != nil {
		return nil, fmt.Errorf("claude recommendation: %w", err)
	}

	return &RecommendationResult{
		Picks:     picks,
		Reasoning: reasoning,
		Model:     c.model,
		Provider:  c.Name(),
		Timestamp: time.Now(),
	}, nil
}
