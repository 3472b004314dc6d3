package model

import "time"

// Sentiment is a three-valued market mood.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// SentimentResult is the normalized envelope every AI provider returns.
// Provider-specific response shapes are parsed into this at the boundary.
type SentimentResult struct {
	Sentiment      Sentiment `json:"sentiment"`
	Confidence     float64   `json:"confidence"` // 0.0~1.0
	Recommendation string    `json:"recommendation"`
	Reasoning      string    `json:"reasoning"`
	Model          string    `json:"model"`
	Provider       string    `json:"aiProvider"`
	Mock           bool      `json:"mock,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}
