package advisor

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"StockCompass/internal/ai"
	"StockCompass/internal/cache"
	"StockCompass/internal/model"
	"StockCompass/internal/seasonal"
)

// MonthlyRecommendations analyzes the ticker universe for the current
// month and returns the top ten. Work proceeds in batches of three
// tickers with a one second pause between batches.
func (a *Advisor) MonthlyRecommendations(ctx context.Context, tickers []string) (*model.MonthlyReport, error) {
	if len(tickers) == 0 {
		tickers = defaultUniverse
	}
	month := a.now().Month()

	analyses, err := a.analyzeBatched(ctx, tickers, month)
	if err != nil {
		return nil, err
	}

	valid := analyses[:0]
	for _, an := range analyses {
		if an != nil && an.TotalScore > 0 {
			valid = append(valid, an)
		}
	}
	sort.SliceStable(valid, func(i, j int) bool { return valid[i].TotalScore > valid[j].TotalScore })
	if len(valid) > 10 {
		valid = valid[:10]
	}

	marketSentiment, err := a.ai.AnalyzeSentiment(ctx, "MARKET")
	if err != nil {
		log.Printf("[WARN] market sentiment unavailable: %v", err)
		marketSentiment = &model.SentimentResult{
			Sentiment:  model.SentimentNeutral,
			Confidence: 0.5,
			Provider:   "unavailable",
			Timestamp:  a.now(),
		}
	}

	report := &model.MonthlyReport{
		Month:           seasonal.MonthName(month),
		MonthNumber:     int(month),
		Recommendations: valid,
		MarketSentiment: marketSentiment,
		Summary:         buildSummary(month, valid, marketSentiment),
		RiskLevel:       overallRisk(valid, marketSentiment),
		Timestamp:       a.now(),
	}

	if err := a.recorder.RecordMonthlyRun(report); err != nil {
		log.Printf("[WARN] record monthly run: %v", err)
	}
	return report, nil
}

// SectorRecommendations ranks one sector's universe and returns the
// top five. Unknown sectors fall back to the full universe.
func (a *Advisor) SectorRecommendations(ctx context.Context, sector string) (*model.SectorReport, error) {
	tickers, ok := sectorUniverses[sector]
	if !ok {
		tickers = defaultUniverse
	}

	analyses, err := a.analyzeBatched(ctx, tickers, a.now().Month())
	if err != nil {
		return nil, err
	}

	valid := analyses[:0]
	for _, an := range analyses {
		if an != nil && an.TotalScore > 0 {
			valid = append(valid, an)
		}
	}
	sort.SliceStable(valid, func(i, j int) bool { return valid[i].TotalScore > valid[j].TotalScore })

	var sectorScore float64
	for _, an := range valid {
		sectorScore += an.TotalScore
	}
	if len(valid) > 0 {
		sectorScore = round2(sectorScore / float64(len(valid)))
	}

	top := valid
	if len(top) > 5 {
		top = top[:5]
	}

	return &model.SectorReport{
		Sector:          sector,
		Recommendations: top,
		SectorScore:     sectorScore,
		Timestamp:       a.now(),
	}, nil
}

// AIRecommendations asks the provider chain for ranked picks over the
// given tickers. An empty list ranks the default universe.
func (a *Advisor) AIRecommendations(ctx context.Context, tickers []string) (*ai.RecommendationResult, error) {
	if len(tickers) == 0 {
		tickers = defaultUniverse
	}
	return a.ai.Recommend(ctx, tickers)
}

// analyzeBatched fans the universe out three tickers at a time. Small
// requests run in a single parallel burst.
func (a *Advisor) analyzeBatched(ctx context.Context, tickers []string, month time.Month) ([]*model.StockAnalysis, error) {
	results := make([]*model.StockAnalysis, len(tickers))

	for start := 0; start < len(tickers); start += batchSize {
		if start > 0 {
			if err := a.sleep(ctx, batchDelay); err != nil {
				return nil, err
			}
		}
		end := start + batchSize
		if end > len(tickers) {
			end = len(tickers)
		}

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(idx int) {
				defer wg.Done()
				analysis, err := a.AnalyzeStock(ctx, tickers[idx], month)
				if err != nil {
					log.Printf("[WARN] analysis failed for %s: %v", tickers[idx], err)
					return
				}
				results[idx] = analysis
			}(i)
		}
		wg.Wait()

		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	return results, nil
}

func buildSummary(month time.Month, recommendations []*model.StockAnalysis, sentiment *model.SentimentResult) model.MonthlySummary {
	outlook := "중립적"
	switch sentiment.Sentiment {
	case model.SentimentPositive:
		outlook = "긍정적"
	case model.SentimentNegative:
		outlook = "부정적"
	}

	topPick := "추천 종목 없음"
	var avgScore float64
	if len(recommendations) > 0 {
		top := recommendations[0]
		topPick = fmt.Sprintf("최고 추천: %s (점수: %.2f)", top.Ticker, top.TotalScore)
		for _, r := range recommendations {
			avgScore += r.TotalScore
		}
		avgScore = round2(avgScore / float64(len(recommendations)))
	}

	return model.MonthlySummary{
		Overview:        fmt.Sprintf("%s 투자 전망: %s", seasonal.MonthName(month), outlook),
		TopPick:         topPick,
		AverageScore:    avgScore,
		MarketCondition: sentiment.Recommendation,
		Strategy:        monthlyStrategy(month, sentiment),
	}
}

var monthlyStrategies = map[time.Month]string{
	time.January:   "신년 효과로 소형주 강세 예상. 성장주 비중 확대 검토",
	time.February:  "실적 발표 시즌. 서프라이즈 가능성 높은 종목 주목",
	time.March:     "분기말 효과. 기관 리밸런싱으로 변동성 증가 예상",
	time.April:     "4월 효과 시작. 역사적으로 주식 시장 강세 구간",
	time.May:       "Sell in May 격언 주의. 방어적 포지션 고려",
	time.June:      "여름철 비수기 진입. 저평가 가치주 발굴 기회",
	time.July:      "실적 시즌 임박. 2분기 실적 기대치 점검 필요",
	time.August:    "여름 휴가철. 거래량 감소로 변동성 확대 가능",
	time.September: "가을 시즌 시작. 연말까지 상승 랠리 기대감",
	time.October:   "3분기 실적 시즌. 연말 전망 중요한 시점",
	time.November:  "연말 정산 효과. 세금 매도 압력과 연말 랠리 경합",
	time.December:  "산타 랠리 시즌. 소형주와 성장주 선호도 증가",
}

func monthlyStrategy(month time.Month, sentiment *model.SentimentResult) string {
	strategy, ok := monthlyStrategies[month]
	if !ok {
		strategy = "시장 상황을 면밀히 모니터링하세요."
	}
	switch sentiment.Sentiment {
	case model.SentimentNegative:
		strategy += " 현재 부정적인 시장 분위기를 고려하여 보수적 접근이 필요합니다."
	case model.SentimentPositive:
		strategy += " 긍정적인 시장 분위기를 활용한 적극적 투자를 고려해보세요."
	}
	return strategy
}

// overallRisk grades a run by its average score and how certain the
// market sentiment read is.
func overallRisk(recommendations []*model.StockAnalysis, sentiment *model.SentimentResult) model.RiskLevel {
	if len(recommendations) == 0 {
		return model.RiskHigh
	}

	var avgScore float64
	for _, r := range recommendations {
		avgScore += r.TotalScore
	}
	avgScore /= float64(len(recommendations))

	sentimentRisk := 0.1
	if sentiment.Confidence > 0.7 {
		sentimentRisk = 0
	} else if sentiment.Confidence < 0.5 {
		sentimentRisk = 0.3
	}

	riskScore := (1 - avgScore) + sentimentRisk
	switch {
	case riskScore < 0.3:
		return model.RiskLow
	case riskScore < 0.6:
		return model.RiskMedium
	default:
		return model.RiskHigh
	}
}

// CacheStatus reports every cache layer the advisor touches.
func (a *Advisor) CacheStatus() map[string]cache.CacheStatus {
	status := a.registry.Status()
	status["analysis"] = a.analyses.Status()
	status["seasonalScores"] = a.scores.Status()
	return status
}

// ClearCaches empties every cache layer and returns the total entries
// removed.
func (a *Advisor) ClearCaches() int {
	return a.registry.Clear("") + a.analyses.Clear() + a.scores.Clear()
}

// ClearTickerCaches removes one ticker's entries from every cache layer
// and returns the total entries removed. Other tickers stay cached.
func (a *Advisor) ClearTickerCaches(ticker string) int {
	removed := a.analyses.Delete(ticker)
	removed += a.scores.Delete(ticker)
	removed += a.registry.DeletePrefix("", ticker+"_")
	return removed
}
