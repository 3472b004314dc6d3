package model

import "time"

// NewsItem is one headline from the news provider. Sentiment is optional;
// when empty the analyzer derives one from the title.
type NewsItem struct {
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	PublishedAt time.Time `json:"publishedAt"`
	Source      string    `json:"source"`
	URL         string    `json:"url"`
	Sentiment   Sentiment `json:"sentiment,omitempty"`
	Relevance   float64   `json:"relevanceScore,omitempty"`
}

// NewsDigest is the provider's response for one query.
type NewsDigest struct {
	Ticker      string     `json:"ticker,omitempty"`
	Items       []NewsItem `json:"news"`
	TotalCount  int        `json:"totalCount"`
	Source      string     `json:"source"`
	LastUpdated time.Time  `json:"lastUpdated"`
}

// NewsImpact aggregates ticker-specific news sentiment.
type NewsImpact struct {
	Sentiment   Sentiment  `json:"sentiment"`
	Score       float64    `json:"score"` // polarity, -1~1
	Confidence  float64    `json:"confidence"`
	Impact      float64    `json:"impact"`
	KeyFactors  []string   `json:"keyFactors"`
	Source      string     `json:"source"`
	NewsCount   int        `json:"newsCount"`
	RelatedNews []NewsItem `json:"relatedNews,omitempty"`
}

// MarketMood aggregates general-market news sentiment.
type MarketMood struct {
	Sentiment   Sentiment  `json:"sentiment"`
	Confidence  float64    `json:"confidence"`
	KeyThemes   []string   `json:"keyThemes"`
	Source      string     `json:"source"`
	NewsCount   int        `json:"newsCount"`
	RelatedNews []NewsItem `json:"relatedNews,omitempty"`
}
