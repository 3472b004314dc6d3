package advisor

import (
	"context"
	"strings"
	"testing"
	"time"

	"StockCompass/internal/ai"
	"StockCompass/internal/cache"
	"StockCompass/internal/marketdata"
	"StockCompass/internal/model"
	"StockCompass/internal/recorder"
	"StockCompass/internal/seasonal"
)

type stubNews struct{}

func (stubNews) Name() string { return "stub-news" }

func (stubNews) StockNews(_ context.Context, ticker string, _ int) (*model.NewsDigest, error) {
	return &model.NewsDigest{
		Ticker: ticker,
		Items: []model.NewsItem{
			{Title: ticker + " revenue growth beats expectations", Relevance: 0.8},
		},
		TotalCount: 1,
	}, nil
}

func (stubNews) MarketNews(_ context.Context, _ int) (*model.NewsDigest, error) {
	return &model.NewsDigest{
		Items:      []model.NewsItem{{Title: "Markets gain on strong earnings", Relevance: 0.8}},
		TotalCount: 1,
	}, nil
}

func newTestAdvisor(t *testing.T) (*Advisor, *[]time.Duration) {
	t.Helper()

	scores := cache.NewSeasonalScoreCache()
	registry := cache.NewRegistry()
	seasonalAnalyzer := seasonal.NewAnalyzer(stubNews{}, scores, registry)

	manager := ai.NewManager(nil) // mock only

	fetcher := &marketdata.MockFetcher{Price: 100, Bars: marketdata.GenerateBars(100, 400)}

	adv := New(fetcher, seasonalAnalyzer, manager,
		cache.NewAnalysisCache(), scores, registry, recorder.NewNoopRecorder())

	var delays []time.Duration
	adv.sleep = func(_ context.Context, d time.Duration) error {
		delays = append(delays, d)
		return nil
	}
	return adv, &delays
}

func TestAnalyzeStockProducesBoundedScores(t *testing.T) {
	adv, _ := newTestAdvisor(t)

	analysis, err := adv.AnalyzeStock(context.Background(), "NVDA", time.November)
	if err != nil {
		t.Fatalf("AnalyzeStock: %v", err)
	}

	for name, score := range map[string]float64{
		"total":       analysis.TotalScore,
		"technical":   analysis.TechnicalScore,
		"seasonal":    analysis.SeasonalScore,
		"fundamental": analysis.FundamentalScore,
		"sentiment":   analysis.SentimentScore,
	} {
		if score < 0 || score > 1 {
			t.Errorf("%s score %v out of [0,1]", name, score)
		}
	}
	if analysis.Recommendation == "" {
		t.Error("missing recommendation")
	}
	if len(analysis.Reasons) == 0 {
		t.Error("missing reasons")
	}
	if analysis.Details == nil || analysis.Details.Technical == nil {
		t.Error("details not populated")
	}
}

func TestAnalyzeStockUsesHourlyCache(t *testing.T) {
	adv, _ := newTestAdvisor(t)

	first, err := adv.AnalyzeStock(context.Background(), "AAPL", time.March)
	if err != nil {
		t.Fatalf("AnalyzeStock: %v", err)
	}
	second, err := adv.AnalyzeStock(context.Background(), "AAPL", time.March)
	if err != nil {
		t.Fatalf("AnalyzeStock: %v", err)
	}
	if first != second {
		t.Error("second call did not return the cached analysis")
	}
}

func TestAnalyzeStockDegradesOnDataFailure(t *testing.T) {
	adv, _ := newTestAdvisor(t)
	adv.fetcher = &marketdata.MockFetcher{Err: context.DeadlineExceeded}

	analysis, err := adv.AnalyzeStock(context.Background(), "TSM", time.June)
	if err != nil {
		t.Fatalf("AnalyzeStock: %v", err)
	}
	// Technical degrades to 0, fundamental to 0.5; seasonal and
	// sentiment still contribute, so the total stays positive.
	if analysis.TechnicalScore != 0 {
		t.Errorf("technical score = %v, want 0 on fetch failure", analysis.TechnicalScore)
	}
	if analysis.FundamentalScore != 0.5 {
		t.Errorf("fundamental score = %v, want 0.5 on fetch failure", analysis.FundamentalScore)
	}
	if analysis.TotalScore <= 0 {
		t.Errorf("total score = %v, want > 0", analysis.TotalScore)
	}
}

func TestMonthlyRecommendationsBatching(t *testing.T) {
	adv, delays := newTestAdvisor(t)

	tickers := []string{"NVDA", "MSFT", "AAPL", "GOOG", "META", "AMD", "TSM"}
	report, err := adv.MonthlyRecommendations(context.Background(), tickers)
	if err != nil {
		t.Fatalf("MonthlyRecommendations: %v", err)
	}

	// 7 tickers = batches of 3, 3, 1 with a pause before the 2nd and 3rd.
	if len(*delays) != 2 {
		t.Fatalf("got %d inter-batch pauses, want 2", len(*delays))
	}
	for _, d := range *delays {
		if d < time.Second {
			t.Errorf("inter-batch pause %v shorter than 1s", d)
		}
	}

	if len(report.Recommendations) == 0 {
		t.Fatal("no recommendations returned")
	}
	seen := make(map[string]bool)
	prev := 2.0
	for _, r := range report.Recommendations {
		if seen[r.Ticker] {
			t.Errorf("duplicate ticker %s", r.Ticker)
		}
		seen[r.Ticker] = true
		if r.TotalScore > prev {
			t.Errorf("recommendations not sorted: %v after %v", r.TotalScore, prev)
		}
		prev = r.TotalScore
	}
	if report.MarketSentiment == nil {
		t.Error("missing market sentiment")
	}
	if report.Summary.Strategy == "" {
		t.Error("missing strategy")
	}
}

func TestMonthlyRecommendationsCapsAtTen(t *testing.T) {
	adv, _ := newTestAdvisor(t)

	report, err := adv.MonthlyRecommendations(context.Background(), nil)
	if err != nil {
		t.Fatalf("MonthlyRecommendations: %v", err)
	}
	if len(report.Recommendations) > 10 {
		t.Errorf("got %d recommendations, want at most 10", len(report.Recommendations))
	}
}

func TestSectorRecommendations(t *testing.T) {
	adv, _ := newTestAdvisor(t)

	report, err := adv.SectorRecommendations(context.Background(), "semiconductor")
	if err != nil {
		t.Fatalf("SectorRecommendations: %v", err)
	}
	if report.Sector != "semiconductor" {
		t.Errorf("sector = %q", report.Sector)
	}
	if len(report.Recommendations) == 0 || len(report.Recommendations) > 5 {
		t.Errorf("got %d recommendations, want 1-5", len(report.Recommendations))
	}
	if report.SectorScore <= 0 || report.SectorScore > 1 {
		t.Errorf("sector score = %v", report.SectorScore)
	}
}

func TestClearTickerCachesKeepsOthers(t *testing.T) {
	adv, _ := newTestAdvisor(t)

	for _, ticker := range []string{"NVDA", "AAPL"} {
		if _, err := adv.AnalyzeStock(context.Background(), ticker, time.May); err != nil {
			t.Fatalf("AnalyzeStock %s: %v", ticker, err)
		}
	}

	removed := adv.ClearTickerCaches("NVDA")
	if removed == 0 {
		t.Fatal("ticker-scoped clear removed nothing")
	}

	status := adv.CacheStatus()
	if status["analysis"].Size != 1 {
		t.Errorf("analysis cache size = %d after NVDA clear, want 1", status["analysis"].Size)
	}
	if status["seasonalScores"].Size != 1 {
		t.Errorf("seasonal score cache size = %d after NVDA clear, want 1", status["seasonalScores"].Size)
	}
}

func TestBuildReasonsNewsAlignment(t *testing.T) {
	strongSeasonal := &model.SeasonalAnalysis{
		NewsImpact: model.NewsImpact{
			Sentiment:  model.SentimentPositive,
			Confidence: 0.9,
			KeyFactors: []string{"데이터센터 수요 급증에 따른 실적 개선 기대감 지속"},
		},
	}
	reasons := buildReasons(0.5, 0.8, 0.5, 0.5, strongSeasonal, time.December)
	if !containsReason(reasons, "12월 계절적 강세 + 긍정적 뉴스") {
		t.Errorf("reasons = %v, want combined strength + positive news", reasons)
	}
	wantFactor := "핵심 요인: " + string([]rune("데이터센터 수요 급증에 따른 실적 개선 기대감 지속")[:20])
	if !containsReason(reasons, wantFactor) {
		t.Errorf("reasons = %v, want %q", reasons, wantFactor)
	}

	weakSeasonal := &model.SeasonalAnalysis{
		NewsImpact: model.NewsImpact{
			Sentiment:  model.SentimentNegative,
			Confidence: 0.6,
			KeyFactors: []string{"금리 인상 우려"},
		},
	}
	reasons = buildReasons(0.5, 0.3, 0.5, 0.5, weakSeasonal, time.May)
	if !containsReason(reasons, "5월 계절적 약세 + 부정적 뉴스") {
		t.Errorf("reasons = %v, want combined weakness + negative news", reasons)
	}
	// Confidence 0.6 is below the 0.7 bar, so no key factor reason.
	for _, r := range reasons {
		if strings.HasPrefix(r, "핵심 요인") {
			t.Errorf("unexpected key factor reason at low confidence: %v", reasons)
		}
	}

	// Without the news bundle the plain seasonal wording stands.
	reasons = buildReasons(0.5, 0.8, 0.5, 0.5, nil, time.December)
	if !containsReason(reasons, "12월 계절적 강세") {
		t.Errorf("reasons = %v, want plain seasonal strength", reasons)
	}
}

func containsReason(reasons []string, want string) bool {
	for _, r := range reasons {
		if r == want {
			return true
		}
	}
	return false
}

func TestClearCaches(t *testing.T) {
	adv, _ := newTestAdvisor(t)

	if _, err := adv.AnalyzeStock(context.Background(), "NVDA", time.May); err != nil {
		t.Fatalf("AnalyzeStock: %v", err)
	}

	removed := adv.ClearCaches()
	if removed == 0 {
		t.Error("ClearCaches removed nothing after an analysis")
	}
	status := adv.CacheStatus()
	if status["analysis"].Size != 0 {
		t.Errorf("analysis cache size = %d after clear", status["analysis"].Size)
	}
}
