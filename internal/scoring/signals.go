package scoring

import (
	"StockCompass/internal/model"
)

// Signal calculators. Each returns a score in [0,1], starting from a
// neutral base and nudging it per rule. A nil input means the data
// source failed; technical degrades to 0 and fundamental to 0.5 so a
// missing chart hurts more than a missing quote.

// TechnicalScore grades a technical summary.
func TechnicalScore(summary *model.TechnicalSummary) float64 {
	if summary == nil {
		return 0
	}

	score := 0.5

	switch summary.Signal {
	case model.SignalBuy:
		score += 0.3
	case model.SignalSell:
		score -= 0.3
	}

	switch summary.Confidence {
	case model.ConfidenceHigh:
		score += 0.2
	case model.ConfidenceLow:
		score -= 0.1
	}

	switch summary.TrendStrength {
	case model.TrendStrong:
		score += 0.15
	case model.TrendWeak:
		score -= 0.1
	}

	if summary.RSI > 0 {
		if summary.RSI < 30 {
			score += 0.1 // oversold
		} else if summary.RSI > 70 {
			score -= 0.1 // overbought
		}
	}

	return Clamp(score)
}

// FundamentalScore grades a quote's valuation metrics.
func FundamentalScore(quote *model.Quote) float64 {
	if quote == nil {
		return 0.5
	}

	score := 0.5

	if quote.PERatio > 0 {
		if quote.PERatio < 15 {
			score += 0.2
		} else if quote.PERatio <= 25 {
			score += 0.1
		} else if quote.PERatio > 35 {
			score -= 0.1
		}
	}

	if quote.DividendYield >= 2.0 {
		score += 0.1
	}

	if quote.FiftyTwoWeekHigh > quote.FiftyTwoWeekLow {
		position := quote.Position52w()
		if position <= 0.30 {
			score += 0.15 // near the yearly low
		} else if position >= 0.80 {
			score -= 0.05
		}
	}

	return Clamp(score)
}

// SentimentScore maps an AI sentiment result onto [0,1].
func SentimentScore(result *model.SentimentResult) float64 {
	if result == nil {
		return 0.5
	}
	switch result.Sentiment {
	case model.SentimentPositive:
		return Clamp(0.7 + 0.3*result.Confidence)
	case model.SentimentNegative:
		return Clamp(0.3 - 0.3*result.Confidence)
	default:
		return 0.5
	}
}

// Clamp bounds a score to [0,1].
func Clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
