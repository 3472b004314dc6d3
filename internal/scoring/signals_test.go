package scoring

import (
	"testing"

	"StockCompass/internal/model"
)

func TestTechnicalScore(t *testing.T) {
	tests := []struct {
		name    string
		summary *model.TechnicalSummary
		want    float64
	}{
		{name: "nil summary", summary: nil, want: 0},
		{
			name: "all bullish",
			summary: &model.TechnicalSummary{
				Signal:        model.SignalBuy,
				Confidence:    model.ConfidenceHigh,
				TrendStrength: model.TrendStrong,
				RSI:           25,
			},
			want: 1.0, // 0.5+0.3+0.2+0.15+0.1 clamped
		},
		{
			name: "all bearish",
			summary: &model.TechnicalSummary{
				Signal:        model.SignalSell,
				Confidence:    model.ConfidenceLow,
				TrendStrength: model.TrendWeak,
				RSI:           75,
			},
			want: 0, // 0.5-0.3-0.1-0.1-0.1 clamped
		},
		{
			name: "hold with moderate everything",
			summary: &model.TechnicalSummary{
				Signal:        model.SignalHold,
				Confidence:    model.ConfidenceModerate,
				TrendStrength: model.TrendModerate,
				RSI:           50,
			},
			want: 0.5,
		},
		{
			name: "rsi zero means unavailable",
			summary: &model.TechnicalSummary{
				Signal:        model.SignalBuy,
				Confidence:    model.ConfidenceModerate,
				TrendStrength: model.TrendModerate,
				RSI:           0,
			},
			want: 0.8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TechnicalScore(tt.summary)
			if !closeTo(got, tt.want) {
				t.Errorf("TechnicalScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFundamentalScore(t *testing.T) {
	tests := []struct {
		name  string
		quote *model.Quote
		want  float64
	}{
		{name: "nil quote is neutral", quote: nil, want: 0.5},
		{
			name: "cheap dividend payer near yearly low",
			quote: &model.Quote{
				CurrentPrice:     105,
				PERatio:          12,
				DividendYield:    3.1,
				FiftyTwoWeekHigh: 200,
				FiftyTwoWeekLow:  100,
			},
			want: 0.95, // 0.5+0.2+0.1+0.15
		},
		{
			name: "expensive near yearly high",
			quote: &model.Quote{
				CurrentPrice:     195,
				PERatio:          42,
				FiftyTwoWeekHigh: 200,
				FiftyTwoWeekLow:  100,
			},
			want: 0.35, // 0.5-0.1-0.05
		},
		{
			name: "missing metrics stay neutral",
			quote: &model.Quote{
				CurrentPrice: 100,
			},
			want: 0.5,
		},
		{
			name: "moderate pe mid range",
			quote: &model.Quote{
				CurrentPrice:     150,
				PERatio:          20,
				FiftyTwoWeekHigh: 200,
				FiftyTwoWeekLow:  100,
			},
			want: 0.6, // 0.5+0.1, position 0.5 neutral
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FundamentalScore(tt.quote)
			if !closeTo(got, tt.want) {
				t.Errorf("FundamentalScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSentimentScore(t *testing.T) {
	tests := []struct {
		name   string
		result *model.SentimentResult
		want   float64
	}{
		{name: "nil result is neutral", result: nil, want: 0.5},
		{
			name:   "positive full confidence",
			result: &model.SentimentResult{Sentiment: model.SentimentPositive, Confidence: 1},
			want:   1.0,
		},
		{
			name:   "positive low confidence",
			result: &model.SentimentResult{Sentiment: model.SentimentPositive, Confidence: 0.2},
			want:   0.76,
		},
		{
			name:   "negative full confidence",
			result: &model.SentimentResult{Sentiment: model.SentimentNegative, Confidence: 1},
			want:   0.0,
		},
		{
			name:   "neutral ignores confidence",
			result: &model.SentimentResult{Sentiment: model.SentimentNeutral, Confidence: 0.9},
			want:   0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SentimentScore(tt.result)
			if !closeTo(got, tt.want) {
				t.Errorf("SentimentScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSentimentScoreMonotoneInConfidence(t *testing.T) {
	prev := -1.0
	for c := 0.0; c <= 1.0; c += 0.1 {
		got := SentimentScore(&model.SentimentResult{Sentiment: model.SentimentPositive, Confidence: c})
		if got < prev {
			t.Fatalf("positive sentiment score decreased at confidence %v: %v < %v", c, got, prev)
		}
		prev = got
	}
}

func closeTo(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}
