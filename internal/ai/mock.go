package ai

import (
	"context"
	"hash/fnv"
	"time"

	"StockCompass/internal/model"
)

// MockProvider is the deterministic last-resort fallback. CheckStatus
// never fails, so the manager can always produce some answer. Results
// are derived from a hash of topic and hour, so repeated calls within
// the same hour agree.
type MockProvider struct {
	now func() time.Time
}

// NewMockProvider creates the mock provider.
func NewMockProvider() *MockProvider {
	return &MockProvider{now: time.Now}
}

func (m *MockProvider) Name() string { return "mock" }

func (m *MockProvider) CheckStatus(_ context.Context) error { return nil }

var mockTemplates = map[model.Sentiment]struct {
	confidence     float64
	recommendation string
	reasoning      string
}{
	model.SentimentPositive: {
		confidence:     0.8,
		recommendation: "긍정적인 시장 분위기에서 기술주 투자를 검토하세요.",
		reasoning:      "기술주 강세와 실적 개선 기대감",
	},
	model.SentimentNeutral: {
		confidence:     0.65,
		recommendation: "중립적 시장에서 분산투자로 리스크를 관리하세요.",
		reasoning:      "경제 지표 혼재와 정책 불확실성",
	},
	model.SentimentNegative: {
		confidence:     0.75,
		recommendation: "부정적 센티멘트에서 방어적 포지션을 취하세요.",
		reasoning:      "금리 상승 우려와 성장 둔화",
	},
}

// sentimentFor hashes topic+hour into one of the three sentiments.
func (m *MockProvider) sentimentFor(topic string) model.Sentiment {
	h := fnv.New32a()
	h.Write([]byte(topic))
	h.Write([]byte{byte(m.now().Hour())})
	switch h.Sum32() % 3 {
	case 0:
		return model.SentimentPositive
	case 1:
		return model.SentimentNeutral
	default:
		return model.SentimentNegative
	}
}

func (m *MockProvider) AnalyzeSentiment(_ context.Context, topic string) (*model.SentimentResult, error) {
	sentiment := m.sentimentFor(topic)
	t := mockTemplates[sentiment]
	return &model.SentimentResult{
		Sentiment:      sentiment,
		Confidence:     t.confidence,
		Recommendation: t.recommendation,
		Reasoning:      t.reasoning,
		Model:          "mock-ai-v1.0",
		Provider:       m.Name(),
		Mock:           true,
		Timestamp:      m.now(),
	}, nil
}

var mockBaseScores = map[string]float64{
	"NVDA": 85, "MSFT": 82, "AAPL": 80, "GOOG": 78, "META": 75,
	"AMD": 72, "TSM": 70, "AVGO": 68, "QCOM": 65, "AMZN": 63,
}

func (m *MockProvider) Recommend(_ context.Context, tickers []string) (*RecommendationResult, error) {
	if len(tickers) == 0 {
		tickers = []string{"NVDA", "MSFT", "AAPL", "GOOG", "META"}
	}
	if len(tickers) > 10 {
		tickers = tickers[:10]
	}

	picks := make([]StockPick, 0, len(tickers))
	for i, ticker := range tickers {
		score, ok := mockBaseScores[ticker]
		if !ok {
			score = 60 - float64(i)
		}
		signal := "Hold"
		if score >= 75 {
			signal = "Buy"
		} else if score < 55 {
			signal = "Sell"
		}
		picks = append(picks, StockPick{
			Ticker:     ticker,
			Score:      score,
			Signal:     signal,
			Confidence: "Medium",
			Reasoning:  "Mock analysis for " + ticker,
		})
	}

	return &RecommendationResult{
		Picks:     picks,
		Reasoning: "Mock AI recommendations - configure real API keys for accurate analysis",
		Model:     "mock-ai-v1.0",
		Provider:  m.Name(),
		Mock:      true,
		Timestamp: m.now(),
	}, nil
}
