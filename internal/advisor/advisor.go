package advisor

import (
	"context"
	"log"
	"sync"
	"time"

	"StockCompass/internal/ai"
	"StockCompass/internal/cache"
	"StockCompass/internal/marketdata"
	"StockCompass/internal/model"
	"StockCompass/internal/recorder"
	"StockCompass/internal/scoring"
	"StockCompass/internal/seasonal"
)

// Batch limits keep the upstream APIs under their rate quotas when a
// recommendation run fans out over the whole universe.
const (
	batchSize  = 3
	batchDelay = 1000 * time.Millisecond
)

// defaultUniverse is the AI plus semiconductor ticker set analyzed when
// the caller does not name one.
var defaultUniverse = []string{
	"NVDA", "MSFT", "GOOG", "GOOGL", "META", "AMD", "AVGO", "AAPL", "TSLA", "PLTR",
	"CRWD", "PANW", "SNOW", "SMCI", "MRVL", "AMZN", "ADBE", "NOW", "ISRG", "SNPS",
	"TSM", "ASML", "QCOM", "AMAT", "ARM", "TXN", "INTC", "MU", "ADI", "NXPI",
}

var sectorUniverses = map[string][]string{
	"ai":            {"NVDA", "MSFT", "GOOG", "META", "AMD", "PLTR", "CRWD", "PANW", "SNOW", "ADBE"},
	"semiconductor": {"TSM", "AVGO", "ASML", "QCOM", "AMAT", "ARM", "TXN", "INTC", "MU", "ADI"},
}

// Advisor runs the composite analysis pipeline: technical, seasonal,
// fundamental, and AI sentiment signals folded into one verdict per
// ticker.
type Advisor struct {
	fetcher   marketdata.Fetcher
	seasonal  *seasonal.Analyzer
	ai        *ai.Manager
	composite *scoring.Composite
	analyses  *cache.AnalysisCache
	scores    *cache.SeasonalScoreCache
	registry  *cache.Registry
	recorder  recorder.Recorder

	// Replaced in tests to make batch pacing observable without waits.
	sleep func(ctx context.Context, d time.Duration) error
	now   func() time.Time
}

// New wires an advisor. recorder may be a NoopRecorder.
func New(fetcher marketdata.Fetcher, seasonalAnalyzer *seasonal.Analyzer, manager *ai.Manager,
	analyses *cache.AnalysisCache, scores *cache.SeasonalScoreCache, registry *cache.Registry,
	rec recorder.Recorder) *Advisor {
	return &Advisor{
		fetcher:   fetcher,
		seasonal:  seasonalAnalyzer,
		ai:        manager,
		composite: scoring.NewComposite(),
		analyses:  analyses,
		scores:    scores,
		registry:  registry,
		recorder:  rec,
		sleep:     sleepCtx,
		now:       time.Now,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// AnalyzeStock analyzes one ticker for one month. The four data
// sources are fetched in parallel; a failed source degrades its signal
// to the neutral value instead of failing the analysis. Results are
// cached per (ticker, month) for the current hour.
func (a *Advisor) AnalyzeStock(ctx context.Context, ticker string, month time.Month) (*model.StockAnalysis, error) {
	if cached := a.analyses.Get(ticker, month); cached != nil {
		return cached, nil
	}

	var (
		wg           sync.WaitGroup
		technical    *model.TechnicalSummary
		seasonalData *model.SeasonalAnalysis
		quote        *model.Quote
		sentiment    *model.SentimentResult
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		t, err := marketdata.TechnicalAnalysis(ctx, a.fetcher, ticker)
		if err != nil {
			log.Printf("[WARN] technical analysis failed for %s: %v", ticker, err)
			return
		}
		technical = t
	}()
	go func() {
		defer wg.Done()
		s, err := a.seasonal.Analyze(ctx, ticker, month)
		if err != nil {
			log.Printf("[WARN] seasonal analysis failed for %s: %v", ticker, err)
			return
		}
		seasonalData = s
	}()
	go func() {
		defer wg.Done()
		q, err := a.fetcher.Quote(ctx, ticker)
		if err != nil {
			log.Printf("[WARN] quote fetch failed for %s: %v", ticker, err)
			return
		}
		quote = q
	}()
	go func() {
		defer wg.Done()
		s, err := a.ai.AnalyzeSentiment(ctx, ticker)
		if err != nil {
			log.Printf("[WARN] sentiment analysis failed for %s: %v", ticker, err)
			return
		}
		sentiment = s
	}()
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	technicalScore := scoring.TechnicalScore(technical)
	seasonalScore := 0.65
	if seasonalData != nil {
		seasonalScore = seasonalData.SeasonalScore
	}
	fundamentalScore := scoring.FundamentalScore(quote)
	sentimentScore := scoring.SentimentScore(sentiment)

	totalScore := a.composite.Total(technicalScore, seasonalScore, fundamentalScore, sentimentScore)

	confidence := 0.8
	var insights []string
	provider := "multi-source"
	modelName := "hybrid"
	if seasonalData != nil {
		confidence = seasonalData.Confidence
		insights = seasonalData.Insights
		provider = seasonalData.Provider
		modelName = seasonalData.Model
	}
	if sentiment != nil {
		provider = sentiment.Provider
		modelName = sentiment.Model
	}

	analysis := &model.StockAnalysis{
		Ticker:           ticker,
		Month:            int(month),
		TotalScore:       round2(totalScore),
		TechnicalScore:   technicalScore,
		SeasonalScore:    seasonalScore,
		FundamentalScore: fundamentalScore,
		SentimentScore:   sentimentScore,
		Recommendation:   scoring.Verdict(totalScore),
		Confidence:       confidence,
		ConfidenceLevel:  scoring.ConfidenceBucket(confidence),
		Reasons:          buildReasons(technicalScore, seasonalScore, fundamentalScore, sentimentScore, seasonalData, month),
		SeasonalInsights: insights,
		Details: &model.AnalysisDetails{
			Technical: technical,
			Seasonal:  seasonalData,
			Quote:     quote,
			Sentiment: sentiment,
		},
		Components: model.Provenance{
			Technical:   a.fetcher.Name(),
			Seasonal:    seasonalProvider(seasonalData),
			Fundamental: a.fetcher.Name(),
			Sentiment:   sentimentProvider(sentiment),
		},
		Model:     modelName,
		Provider:  provider,
		Timestamp: a.now(),
	}

	a.analyses.Set(ticker, month, analysis)
	if err := a.recorder.RecordAnalysis(analysis); err != nil {
		log.Printf("[WARN] record analysis for %s: %v", ticker, err)
	}
	return analysis, nil
}

// SeasonalAnalysis exposes the news-seasonal breakdown. A zero month
// means the current month.
func (a *Advisor) SeasonalAnalysis(ctx context.Context, ticker string, month time.Month) (*model.SeasonalAnalysis, error) {
	if month == 0 {
		month = a.now().Month()
	}
	return a.seasonal.Analyze(ctx, ticker, month)
}

// MonthOutlook returns the month profile adjusted by the current
// market mood. A sentiment failure degrades to a neutral outlook.
func (a *Advisor) MonthOutlook(ctx context.Context, month time.Month) seasonal.MonthOutlook {
	sentiment := model.SentimentNeutral
	confidence := 0.6
	if s, err := a.ai.AnalyzeSentiment(ctx, "MARKET"); err != nil {
		log.Printf("[WARN] market sentiment for outlook: %v", err)
	} else {
		sentiment = s.Sentiment
		confidence = s.Confidence
	}
	return seasonal.Outlook(month, sentiment, confidence)
}

func seasonalProvider(s *model.SeasonalAnalysis) string {
	if s == nil {
		return "historical"
	}
	return s.Provider
}

func sentimentProvider(s *model.SentimentResult) string {
	if s == nil {
		return "unavailable"
	}
	return s.Provider
}

// buildReasons explains which signals pushed the verdict either way.
// Seasonal reasons call out the news side when it agrees with the
// historical pattern, and the dominant news factor is surfaced when
// the news read is confident.
func buildReasons(technicalScore, seasonalScore, fundamentalScore, sentimentScore float64,
	seasonalData *model.SeasonalAnalysis, month time.Month) []string {
	monthName := seasonal.MonthName(month)
	var reasons []string

	if technicalScore > 0.65 {
		reasons = append(reasons, "기술적 지표 양호")
	}
	if seasonalScore > 0.65 {
		reason := monthName + " 계절적 강세"
		if seasonalData != nil && seasonalData.NewsImpact.Sentiment == model.SentimentPositive {
			reason += " + 긍정적 뉴스"
		}
		reasons = append(reasons, reason)
	}
	if fundamentalScore > 0.65 {
		reasons = append(reasons, "펀더멘털 건실")
	}
	if sentimentScore > 0.65 {
		reasons = append(reasons, "AI 센티멘트 긍정적")
	}

	if technicalScore < 0.4 {
		reasons = append(reasons, "기술적 지표 부정적")
	}
	if seasonalScore < 0.4 {
		reason := monthName + " 계절적 약세"
		if seasonalData != nil && seasonalData.NewsImpact.Sentiment == model.SentimentNegative {
			reason += " + 부정적 뉴스"
		}
		reasons = append(reasons, reason)
	}
	if fundamentalScore < 0.4 {
		reasons = append(reasons, "밸류에이션 부담")
	}
	if sentimentScore < 0.4 {
		reasons = append(reasons, "AI 센티멘트 부정적")
	}

	if seasonalData != nil {
		impact := seasonalData.NewsImpact
		if impact.Confidence > 0.7 && len(impact.KeyFactors) > 0 {
			reasons = append(reasons, "핵심 요인: "+truncateRunes(impact.KeyFactors[0], 20))
		}
	}

	if len(reasons) == 0 {
		reasons = []string{"종합적 분석 결과"}
	}
	return reasons
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
