package ai

import (
	"encoding/json"
	"regexp"
	"strings"

	"StockCompass/internal/model"
)

// External AI APIs answer in several shapes: a plain object, an array of
// label/score pairs, the same array nested one level deeper, or loose
// prose around a JSON fragment. Everything is normalized here so the
// rest of the system only ever sees a SentimentResult.

type sentimentObject struct {
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

type labelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

var jsonObjectRegex = regexp.MustCompile(`\{[^{}]*\}`)

// ParseSentiment normalizes a raw provider response body into a
// sentiment and confidence. Returns neutral/0.5 plus false when nothing
// usable is found.
func ParseSentiment(raw string) (model.Sentiment, float64, string, bool) {
	trimmed := strings.TrimSpace(raw)

	// Shape 1: plain object {"sentiment": ..., "confidence": ...}
	var obj sentimentObject
	if err := json.Unmarshal([]byte(trimmed), &obj); err == nil && obj.Sentiment != "" {
		return normalizeLabel(obj.Sentiment), clampConfidence(obj.Confidence), obj.Reasoning, true
	}

	// Shape 2: array of label/score classifications
	var flat []labelScore
	if err := json.Unmarshal([]byte(trimmed), &flat); err == nil && len(flat) > 0 {
		return bestLabel(flat)
	}

	// Shape 3: the same array nested one level deeper
	var nested [][]labelScore
	if err := json.Unmarshal([]byte(trimmed), &nested); err == nil && len(nested) > 0 && len(nested[0]) > 0 {
		return bestLabel(nested[0])
	}

	// Shape 4: prose with an embedded JSON object
	if matches := jsonObjectRegex.FindAllString(trimmed, -1); len(matches) > 0 {
		last := matches[len(matches)-1]
		if err := json.Unmarshal([]byte(last), &obj); err == nil && obj.Sentiment != "" {
			return normalizeLabel(obj.Sentiment), clampConfidence(obj.Confidence), obj.Reasoning, true
		}
	}

	// Shape 5: keyword scan over plain text
	lower := strings.ToLower(trimmed)
	if strings.Contains(lower, "positive") {
		return model.SentimentPositive, 0.5, "", true
	}
	if strings.Contains(lower, "negative") {
		return model.SentimentNegative, 0.5, "", true
	}
	if strings.Contains(lower, "neutral") {
		return model.SentimentNeutral, 0.5, "", true
	}

	return model.SentimentNeutral, 0.5, "", false
}

// bestLabel picks the highest-scoring classification.
func bestLabel(labels []labelScore) (model.Sentiment, float64, string, bool) {
	best := labels[0]
	for _, l := range labels[1:] {
		if l.Score > best.Score {
			best = l
		}
	}
	return normalizeLabel(best.Label), clampConfidence(best.Score), "", true
}

// normalizeLabel maps provider-specific labels (LABEL_0/1/2, pos/neg,
// full words) onto the canonical sentiment values.
func normalizeLabel(label string) model.Sentiment {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "positive", "pos", "label_2", "bullish":
		return model.SentimentPositive
	case "negative", "neg", "label_0", "bearish":
		return model.SentimentNegative
	default:
		return model.SentimentNeutral
	}
}

func clampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
