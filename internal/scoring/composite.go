package scoring

import (
	"fmt"

	"StockCompass/internal/model"
)

// Composite combines the four signal scores under fixed weights and
// derives the verdict. Stateless; safe for concurrent use.
type Composite struct {
	weights model.Weights
}

// NewComposite uses the canonical weighting.
func NewComposite() *Composite {
	return &Composite{weights: model.DefaultWeights}
}

// Total is the weighted sum of the four signal scores.
func (c *Composite) Total(technical, seasonal, fundamental, sentiment float64) float64 {
	return Clamp(technical*c.weights.Technical +
		seasonal*c.weights.Seasonal +
		fundamental*c.weights.Fundamental +
		sentiment*c.weights.Sentiment)
}

// Verdict maps a total score onto the five-tier recommendation.
func Verdict(total float64) model.Recommendation {
	switch {
	case total >= 0.70:
		return model.StrongBuy
	case total >= 0.60:
		return model.Buy
	case total >= 0.40:
		return model.Hold
	case total > 0.25:
		return model.Sell
	default:
		return model.StrongSell
	}
}

// ConfidenceBucket labels a numeric confidence for display.
func ConfidenceBucket(confidence float64) model.ConfidenceLevel {
	switch {
	case confidence >= 0.7:
		return model.ConfidenceLevelHigh
	case confidence >= 0.5:
		return model.ConfidenceLevelMedium
	default:
		return model.ConfidenceLevelLow
	}
}

// Reasons explains each signal's contribution in display order.
func (c *Composite) Reasons(technical, seasonal, fundamental, sentiment float64) []string {
	return []string{
		fmt.Sprintf("기술적 분석: %.2f (가중치 %.0f%%)", technical, c.weights.Technical*100),
		fmt.Sprintf("계절적 분석: %.2f (가중치 %.0f%%)", seasonal, c.weights.Seasonal*100),
		fmt.Sprintf("펀더멘털 분석: %.2f (가중치 %.0f%%)", fundamental, c.weights.Fundamental*100),
		fmt.Sprintf("AI 센티멘트: %.2f (가중치 %.0f%%)", sentiment, c.weights.Sentiment*100),
	}
}
