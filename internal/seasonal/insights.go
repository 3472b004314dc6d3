package seasonal

import (
	"fmt"
	"time"

	"StockCompass/internal/model"
)

// buildInsights turns the analysis inputs into short Korean guidance
// lines for the UI.
func buildInsights(ticker string, month time.Month, score float64, impact model.NewsImpact, mood model.MarketMood) []string {
	monthName := MonthName(month)
	var insights []string

	if len(impact.KeyFactors) > 0 {
		insights = append(insights, "최신 뉴스: "+impact.KeyFactors[0])
	}

	if impact.Sentiment == model.SentimentPositive && BaseScore(ticker, month) >= 0.7 {
		insights = append(insights, fmt.Sprintf("%s은 %s 섹터에 유리한 시기이며, 최근 뉴스도 긍정적입니다.", monthName, SectorOf(ticker)))
	} else if impact.Sentiment == model.SentimentNegative {
		insights = append(insights, fmt.Sprintf("최근 뉴스가 부정적이므로 %s 투자 시 신중한 접근이 필요합니다.", monthName))
	}

	if len(mood.KeyThemes) > 0 {
		insights = append(insights, "시장 이슈: "+mood.KeyThemes[0])
	}

	if impact.NewsCount+mood.NewsCount >= 5 {
		level := "보통"
		if impact.Confidence > 0.7 {
			level = "높은"
		}
		insights = append(insights, fmt.Sprintf("%d개 뉴스를 분석한 결과, %s 신뢰도의 분석입니다.", impact.NewsCount+mood.NewsCount, level))
	}

	if impact.Sentiment == model.SentimentPositive && mood.Sentiment == model.SentimentPositive {
		insights = append(insights, "종목 및 시장 뉴스가 모두 긍정적이므로 적극적 투자를 고려해볼 수 있습니다.")
	} else if impact.Sentiment == model.SentimentNegative || mood.Sentiment == model.SentimentNegative {
		insights = append(insights, "부정적인 뉴스 요인이 있으므로 추가 정보 확인 후 투자 결정을 권장합니다.")
	}

	if note, ok := monthlyTrendNotes[month]; ok {
		insights = append(insights, note)
	}

	if len(insights) == 0 {
		insights = []string{
			fmt.Sprintf("%s에 대한 뉴스 기반 시기적 분석을 완료했습니다.", monthName),
			fmt.Sprintf("%s 종목의 최신 동향을 지속적으로 모니터링하세요.", ticker),
		}
	}
	return insights
}

// EntryTiming suggests when to enter during the month.
func EntryTiming(month time.Month, sentiment model.Sentiment) string {
	c := Characteristic(month)
	switch {
	case sentiment == model.SentimentPositive && c.HistoricalTrend == model.TrendPositive:
		return "월초 적극적 진입 권장"
	case c.HistoricalTrend == model.TrendVolatile:
		return "변동성 활용한 분할 매수"
	case c.HistoricalTrend == model.TrendNegative:
		return "하락 시 저가 매수 기회 대기"
	default:
		return "시장 상황 모니터링 후 진입"
	}
}

// ExitTiming suggests when to exit during the month.
func ExitTiming(month time.Month, confidence float64) string {
	c := Characteristic(month)
	if c.RiskLevel == model.RiskHigh {
		return "목표 수익률 달성 시 신속 청산"
	}
	if confidence < 0.6 {
		return "불확실성 증가 시 부분 청산"
	}
	return "월말 또는 추세 변화 시점"
}

// Strategy returns a one-line allocation strategy for a month given
// the market mood.
func Strategy(month time.Month, sentiment model.Sentiment) string {
	c := Characteristic(month)
	switch {
	case c.HistoricalTrend == model.TrendPositive && sentiment == model.SentimentPositive:
		return fmt.Sprintf("%s 랠리 구간으로 성장주 비중 확대를 고려하세요.", MonthName(month))
	case c.HistoricalTrend == model.TrendNegative || sentiment == model.SentimentNegative:
		return fmt.Sprintf("%s은 방어적 운용이 적절합니다. 배당주와 현금 비중을 높이세요.", MonthName(month))
	case c.HistoricalTrend == model.TrendVolatile:
		return fmt.Sprintf("%s 변동성 구간으로 분할 매수와 손절 라인 관리가 중요합니다.", MonthName(month))
	default:
		return fmt.Sprintf("%s은 중립 구간으로 분산투자를 유지하세요.", MonthName(month))
	}
}
