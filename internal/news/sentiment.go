package news

import (
	"strings"

	"StockCompass/internal/model"
)

// Keyword lists for title-based sentiment. English plus the Korean terms
// that show up in domestic feeds.
var positiveWords = []string{
	"up", "rise", "gain", "bull", "strong", "beat", "exceed", "growth",
	"positive", "상승", "강세", "성장", "긍정", "surge", "soar", "jump",
}

var negativeWords = []string{
	"down", "fall", "drop", "bear", "weak", "miss", "decline", "loss",
	"negative", "하락", "약세", "감소", "부정", "crash", "plunge", "tumble",
}

// TitleSentiment derives a sentiment from a headline by counting
// positive vs. negative keyword occurrences (case-insensitive substring
// match). Ties and empty titles are neutral.
func TitleSentiment(title string) model.Sentiment {
	if title == "" {
		return model.SentimentNeutral
	}
	lower := strings.ToLower(title)

	positive, negative := 0, 0
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			positive++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			negative++
		}
	}

	switch {
	case positive > negative:
		return model.SentimentPositive
	case negative > positive:
		return model.SentimentNegative
	default:
		return model.SentimentNeutral
	}
}
