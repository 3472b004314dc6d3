package ai

import (
	"context"
	"time"

	"StockCompass/internal/model"
)

// Provider is the single capability interface every sentiment backend
// implements. Providers are interchangeable behind the Manager.
type Provider interface {
	Name() string
	// CheckStatus reports whether the provider can currently serve requests.
	CheckStatus(ctx context.Context) error
	// AnalyzeSentiment analyzes one topic ("MARKET" or a ticker symbol).
	AnalyzeSentiment(ctx context.Context, topic string) (*model.SentimentResult, error)
	// Recommend produces AI stock picks for the given tickers.
	Recommend(ctx context.Context, tickers []string) (*RecommendationResult, error)
}

// StockPick is one AI-recommended ticker.
type StockPick struct {
	Ticker     string  `json:"ticker"`
	Score      float64 `json:"score"` // 0-100
	Signal     string  `json:"signal"`
	Confidence string  `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// RecommendationResult is a provider's full pick list.
type RecommendationResult struct {
	Picks     []StockPick `json:"recommendations"`
	Reasoning string      `json:"reasoning"`
	Model     string      `json:"model"`
	Provider  string      `json:"aiProvider"`
	Mock      bool        `json:"mock,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}
