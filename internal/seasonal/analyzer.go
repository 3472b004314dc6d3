package seasonal

import (
	"context"
	"fmt"
	"log"
	"time"

	"StockCompass/internal/cache"
	"StockCompass/internal/model"
	"StockCompass/internal/news"
)

// Blend weights for the final seasonal score.
const (
	weightBase   = 0.40
	weightNews   = 0.35
	weightMarket = 0.25
)

const analysisCacheName = "seasonal-analysis"

// Analyzer produces news-adjusted seasonal scores. The historical
// pattern supplies a base score per (ticker, month); recent stock and
// market headlines shift it up or down.
type Analyzer struct {
	news     news.Provider
	scores   *cache.SeasonalScoreCache
	registry *cache.Registry
	now      func() time.Time
}

// NewAnalyzer wires the analyzer to its news source and caches.
func NewAnalyzer(provider news.Provider, scores *cache.SeasonalScoreCache, registry *cache.Registry) *Analyzer {
	registry.CreateCache(analysisCacheName, cache.DefaultTTL)
	return &Analyzer{
		news:     provider,
		scores:   scores,
		registry: registry,
		now:      time.Now,
	}
}

// Analyze computes the seasonal analysis for a ticker and month
// (1-12). Results are cached for five minutes; a news failure degrades
// to the pure historical pattern instead of failing the call.
func (a *Analyzer) Analyze(ctx context.Context, ticker string, month time.Month) (*model.SeasonalAnalysis, error) {
	cacheKey := fmt.Sprintf("%s_%d", ticker, int(month))
	if v, ok := a.registry.Get(analysisCacheName, cacheKey); ok {
		if cached, ok := v.(*model.SeasonalAnalysis); ok {
			out := *cached
			out.FromCache = true
			return &out, nil
		}
	}

	baseScore := BaseScore(ticker, month)

	stockNews, err := a.news.StockNews(ctx, ticker, 5)
	if err != nil {
		log.Printf("[WARN] stock news unavailable for %s: %v", ticker, err)
		return a.fallback(ticker, month), nil
	}
	marketNews, err := a.news.MarketNews(ctx, 3)
	if err != nil {
		log.Printf("[WARN] market news unavailable: %v", err)
		return a.fallback(ticker, month), nil
	}

	impact := aggregateStockNews(ticker, stockNews.Items)
	mood := aggregateMarketNews(marketNews.Items)

	finalScore := blendScores(baseScore, impact, mood)

	result := &model.SeasonalAnalysis{
		Ticker:          ticker,
		Month:           int(month),
		SeasonalScore:   round2(finalScore),
		BaseScore:       baseScore,
		NewsImpact:      withRelated(impact, stockNews.Items, 3),
		MarketSentiment: moodWithRelated(mood, marketNews.Items, 2),
		Insights:        buildInsights(ticker, month, finalScore, impact, mood),
		Recommendation:  seasonalRecommendation(finalScore),
		Confidence:      (impact.Confidence + mood.Confidence) / 2,
		NewsAnalysis: model.NewsAnalysisStats{
			TotalNewsAnalyzed: len(stockNews.Items) + len(marketNews.Items),
			StockNewsCount:    len(stockNews.Items),
			MarketNewsCount:   len(marketNews.Items),
			AverageRelevance:  averageRelevance(stockNews.Items, marketNews.Items),
		},
		Model:       "seasonal-news-v1",
		Provider:    a.news.Name(),
		LastUpdated: a.now(),
	}

	a.registry.Set(analysisCacheName, cacheKey, result)
	a.scores.SetScore(ticker, int(month), result.SeasonalScore)
	return result, nil
}

// fallback serves the last shared score for (ticker, month) when news
// is down, and only then the pure historical pattern.
func (a *Analyzer) fallback(ticker string, month time.Month) *model.SeasonalAnalysis {
	score := BaseMonthlyScore(month)
	if cached, ok := a.scores.GetScore(ticker, int(month)); ok {
		score = cached
	}
	result := &model.SeasonalAnalysis{
		Ticker:        ticker,
		Month:         int(month),
		SeasonalScore: score,
		BaseScore:     score,
		NewsImpact: model.NewsImpact{
			Sentiment:  model.SentimentNeutral,
			Confidence: 0.5,
			Source:     "No News Available",
		},
		MarketSentiment: model.MarketMood{
			Sentiment:  model.SentimentNeutral,
			Confidence: 0.5,
			Source:     "No Market News",
		},
		Insights:       []string{fmt.Sprintf("%s에 대한 기본적인 %s 계절 분석입니다.", ticker, MonthName(month))},
		Recommendation: seasonalRecommendation(score),
		Confidence:     0.8,
		Model:          "seasonal-pattern-fallback",
		Provider:       "historical",
		LastUpdated:    a.now(),
	}
	a.scores.SetScore(ticker, int(month), score)
	return result
}

// aggregateStockNews folds per-headline sentiment into one impact,
// weighting each headline by its relevance. Positive wins only when it
// outweighs negative by 20%, and vice versa.
func aggregateStockNews(ticker string, items []model.NewsItem) model.NewsImpact {
	if len(items) == 0 {
		return model.NewsImpact{
			Sentiment:  model.SentimentNeutral,
			Confidence: 0.5,
			KeyFactors: []string{ticker + " 관련 뉴스 분석 불가"},
			Source:     "No News Available",
		}
	}

	var positive, negative, totalRelevance float64
	var keyFactors []string
	for _, item := range items {
		sentiment := item.Sentiment
		if sentiment == "" {
			sentiment = news.TitleSentiment(item.Title)
		}
		relevance := item.Relevance
		if relevance == 0 {
			relevance = 0.7
		}
		switch sentiment {
		case model.SentimentPositive:
			positive += relevance
		case model.SentimentNegative:
			negative += relevance
		}
		totalRelevance += relevance
		if len(item.Title) > 10 {
			keyFactors = append(keyFactors, truncate(item.Title, 50))
		}
	}

	overall := model.SentimentNeutral
	var score float64
	if positive > negative*1.2 {
		overall = model.SentimentPositive
		score = (positive - negative) / totalRelevance
	} else if negative > positive*1.2 {
		overall = model.SentimentNegative
		score = -(negative - positive) / totalRelevance
	}
	score = clampRange(score, -1, 1)

	if len(keyFactors) > 5 {
		keyFactors = keyFactors[:5]
	}

	return model.NewsImpact{
		Sentiment:  overall,
		Score:      score,
		Confidence: min1(totalRelevance / float64(len(items))),
		Impact:     abs(score) * 0.3,
		KeyFactors: keyFactors,
		Source:     fmt.Sprintf("News Analysis (%d items)", len(items)),
		NewsCount:  len(items),
	}
}

// aggregateMarketNews is the market-wide counterpart with a looser 10%
// dominance threshold and a higher default relevance.
func aggregateMarketNews(items []model.NewsItem) model.MarketMood {
	if len(items) == 0 {
		return model.MarketMood{
			Sentiment:  model.SentimentNeutral,
			Confidence: 0.5,
			KeyThemes:  []string{"시장 뉴스 분석 불가"},
			Source:     "No Market News",
		}
	}

	var positive, negative, totalRelevance float64
	var keyThemes []string
	for _, item := range items {
		sentiment := item.Sentiment
		if sentiment == "" {
			sentiment = news.TitleSentiment(item.Title)
		}
		relevance := item.Relevance
		if relevance == 0 {
			relevance = 0.8
		}
		switch sentiment {
		case model.SentimentPositive:
			positive += relevance
		case model.SentimentNegative:
			negative += relevance
		}
		totalRelevance += relevance
		if item.Title != "" {
			keyThemes = append(keyThemes, truncate(item.Title, 40))
		}
	}

	overall := model.SentimentNeutral
	if positive > negative*1.1 {
		overall = model.SentimentPositive
	} else if negative > positive*1.1 {
		overall = model.SentimentNegative
	}

	if len(keyThemes) > 4 {
		keyThemes = keyThemes[:4]
	}

	return model.MarketMood{
		Sentiment:  overall,
		Confidence: min1(totalRelevance / float64(len(items))),
		KeyThemes:  keyThemes,
		Source:     fmt.Sprintf("Market News Analysis (%d items)", len(items)),
		NewsCount:  len(items),
	}
}

// blendScores combines historical pattern, stock news, and market mood
// into one score, then scales it by the average confidence.
func blendScores(baseScore float64, impact model.NewsImpact, mood model.MarketMood) float64 {
	newsScore := clampRange(0.5+impact.Score*0.5, 0, 1)

	marketScore := 0.5
	switch mood.Sentiment {
	case model.SentimentPositive:
		marketScore = 0.6 + mood.Confidence*0.4
	case model.SentimentNegative:
		marketScore = 0.4 - mood.Confidence*0.4
	}

	score := baseScore*weightBase + newsScore*weightNews + marketScore*weightMarket

	avgConfidence := (impact.Confidence + mood.Confidence) / 2
	return clampRange(score*(0.7+avgConfidence*0.3), 0, 1)
}

// seasonalRecommendation maps a seasonal score onto a verdict. The
// thresholds differ from the composite verdict: seasonal scores skew
// high, so the top band starts at 0.75.
func seasonalRecommendation(score float64) model.Recommendation {
	switch {
	case score >= 0.75:
		return model.StrongBuy
	case score >= 0.6:
		return model.Buy
	case score >= 0.4:
		return model.Hold
	default:
		return model.Sell
	}
}

func withRelated(impact model.NewsImpact, items []model.NewsItem, n int) model.NewsImpact {
	if len(items) > n {
		items = items[:n]
	}
	impact.RelatedNews = items
	return impact
}

func moodWithRelated(mood model.MarketMood, items []model.NewsItem, n int) model.MarketMood {
	if len(items) > n {
		items = items[:n]
	}
	mood.RelatedNews = items
	return mood
}

func averageRelevance(stock, market []model.NewsItem) float64 {
	total := 0.0
	count := 0
	for _, item := range append(append([]model.NewsItem{}, stock...), market...) {
		r := item.Relevance
		if r == 0 {
			r = 0.7
		}
		total += r
		count++
	}
	if count == 0 {
		return 0
	}
	return round2(total / float64(count))
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func min1(v float64) float64 {
	if v > 1 {
		return 1
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
