package seasonal

import (
	"time"

	"StockCompass/internal/model"
)

// Static calendar reference data. Everything here is loaded once and
// never mutated, so it is safe to read concurrently.

var monthNames = map[time.Month]string{
	time.January: "1월", time.February: "2월", time.March: "3월",
	time.April: "4월", time.May: "5월", time.June: "6월",
	time.July: "7월", time.August: "8월", time.September: "9월",
	time.October: "10월", time.November: "11월", time.December: "12월",
}

// MonthName returns the Korean display name for a month.
func MonthName(m time.Month) string {
	if name, ok := monthNames[m]; ok {
		return name
	}
	return "월"
}

// baseMonthlyScores is the unified seasonal pattern applied to every
// ticker when no sector-specific weighting is available.
var baseMonthlyScores = map[time.Month]float64{
	time.January:   0.75, // 신년 효과
	time.February:  0.65,
	time.March:     0.60, // 분기말
	time.April:     0.80, // 4월 효과
	time.May:       0.50, // Sell in May
	time.June:      0.55,
	time.July:      0.60,
	time.August:    0.45, // 여름 비수기
	time.September: 0.70, // 가을 랠리
	time.October:   0.75,
	time.November:  0.85, // 연말 랠리
	time.December:  0.90, // 산타 랠리
}

// BaseMonthlyScore returns the historical pattern score for a month.
func BaseMonthlyScore(m time.Month) float64 {
	if s, ok := baseMonthlyScores[m]; ok {
		return s
	}
	return 0.65
}

// sectorWeights refines the base pattern per sector.
var sectorWeights = map[time.Month]map[string]float64{
	time.January:   {"tech": 0.75, "growth": 0.80, "defensive": 0.50},
	time.February:  {"tech": 0.65, "growth": 0.70, "defensive": 0.60},
	time.March:     {"tech": 0.60, "growth": 0.65, "defensive": 0.70},
	time.April:     {"tech": 0.80, "growth": 0.85, "defensive": 0.50},
	time.May:       {"tech": 0.50, "growth": 0.45, "defensive": 0.80},
	time.June:      {"tech": 0.55, "growth": 0.50, "defensive": 0.75},
	time.July:      {"tech": 0.60, "growth": 0.55, "defensive": 0.70},
	time.August:    {"tech": 0.45, "growth": 0.40, "defensive": 0.80},
	time.September: {"tech": 0.70, "growth": 0.75, "defensive": 0.60},
	time.October:   {"tech": 0.75, "growth": 0.80, "defensive": 0.55},
	time.November:  {"tech": 0.85, "growth": 0.90, "defensive": 0.40},
	time.December:  {"tech": 0.90, "growth": 0.95, "defensive": 0.30},
}

// sectorMapping classifies the supported ticker universe.
var sectorMapping = map[string]string{
	"NVDA": "tech", "AMD": "tech", "AVGO": "tech", "GOOGL": "tech", "GOOG": "tech",
	"MSFT": "tech", "META": "tech", "AAPL": "tech", "TSLA": "tech", "PLTR": "tech",
	"CRWD": "tech", "PANW": "tech", "SNOW": "tech", "SMCI": "tech", "MRVL": "tech",
	"AMZN": "tech", "ADBE": "tech", "NOW": "tech", "ISRG": "tech", "SNPS": "tech",

	"TSM": "tech", "ASML": "tech", "QCOM": "tech", "AMAT": "tech", "ARM": "tech",
	"TXN": "tech", "INTC": "tech", "MU": "tech", "ADI": "tech", "NXPI": "tech",
}

// SectorOf returns a ticker's sector, defaulting to tech.
func SectorOf(ticker string) string {
	if s, ok := sectorMapping[ticker]; ok {
		return s
	}
	return "tech"
}

// BaseScore returns the sector-weighted seasonal pattern score for a
// ticker and month.
func BaseScore(ticker string, m time.Month) float64 {
	weights, ok := sectorWeights[m]
	if !ok {
		return 0.5
	}
	if s, ok := weights[SectorOf(ticker)]; ok {
		return s
	}
	return 0.5
}

var monthCharacteristics = map[time.Month]model.MonthCharacteristic{
	time.January: {
		Name:            "신년 효과",
		HistoricalTrend: model.TrendPositive,
		KeyFactors:      []string{"신년 효과", "소형주 강세", "새로운 투자 자금 유입"},
		Sectors:         []string{"small-cap", "growth", "emerging"},
		RiskLevel:       model.RiskMedium,
	},
	time.February: {
		Name:            "실적 시즌",
		HistoricalTrend: model.TrendVolatile,
		KeyFactors:      []string{"4분기 실적 발표", "밸런타인 소비", "짧은 거래일"},
		Sectors:         []string{"retail", "consumer", "tech"},
		RiskLevel:       model.RiskHigh,
	},
	time.March: {
		Name:            "분기말 효과",
		HistoricalTrend: model.TrendVolatile,
		KeyFactors:      []string{"분기말 리밸런싱", "세금 정산", "펀드 매매"},
		Sectors:         []string{"finance", "reits", "utilities"},
		RiskLevel:       model.RiskHigh,
	},
	time.April: {
		Name:            "봄 랠리",
		HistoricalTrend: model.TrendPositive,
		KeyFactors:      []string{"4월 효과", "세금 환급", "기업 가이던스"},
		Sectors:         []string{"growth", "tech", "consumer"},
		RiskLevel:       model.RiskLow,
	},
	time.May: {
		Name:            "Sell in May",
		HistoricalTrend: model.TrendNegative,
		KeyFactors:      []string{"Sell in May 격언", "여름 비수기 진입", "유럽 휴가"},
		Sectors:         []string{"defensive", "utilities", "staples"},
		RiskLevel:       model.RiskMedium,
	},
	time.June: {
		Name:            "여름 시작",
		HistoricalTrend: model.TrendNeutral,
		KeyFactors:      []string{"FOMC 회의", "분기말", "여름 휴가 준비"},
		Sectors:         []string{"value", "dividend", "defensive"},
		RiskLevel:       model.RiskMedium,
	},
	time.July: {
		Name:            "실적 시즌",
		HistoricalTrend: model.TrendPositive,
		KeyFactors:      []string{"2분기 실적", "여름 소비", "기술주 집중"},
		Sectors:         []string{"tech", "consumer", "travel"},
		RiskLevel:       model.RiskMedium,
	},
	time.August: {
		Name:            "여름 휴가철",
		HistoricalTrend: model.TrendVolatile,
		KeyFactors:      []string{"낮은 거래량", "휴가철 효과", "잭슨홀 심포지엄"},
		Sectors:         []string{"large-cap", "stable", "dividend"},
		RiskLevel:       model.RiskHigh,
	},
	time.September: {
		Name:            "가을 시작",
		HistoricalTrend: model.TrendNegative,
		KeyFactors:      []string{"휴가 복귀", "새 학기", "역사적 약세"},
		Sectors:         []string{"education", "back-to-school", "defensive"},
		RiskLevel:       model.RiskHigh,
	},
	time.October: {
		Name:            "실적 시즌",
		HistoricalTrend: model.TrendVolatile,
		KeyFactors:      []string{"3분기 실적", "핼러윈 효과", "연말 전망"},
		Sectors:         []string{"tech", "finance", "industrial"},
		RiskLevel:       model.RiskHigh,
	},
	time.November: {
		Name:            "연말 랠리 시작",
		HistoricalTrend: model.TrendPositive,
		KeyFactors:      []string{"추수감사절", "블랙프라이데이", "연말 랠리"},
		Sectors:         []string{"retail", "consumer", "small-cap"},
		RiskLevel:       model.RiskMedium,
	},
	time.December: {
		Name:            "산타 랠리",
		HistoricalTrend: model.TrendPositive,
		KeyFactors:      []string{"산타 랠리", "세금 매도", "연말 보너스"},
		Sectors:         []string{"growth", "small-cap", "momentum"},
		RiskLevel:       model.RiskLow,
	},
}

// Characteristic returns the static profile for a month.
func Characteristic(m time.Month) model.MonthCharacteristic {
	if c, ok := monthCharacteristics[m]; ok {
		return c
	}
	return model.MonthCharacteristic{
		Name:            "일반",
		HistoricalTrend: model.TrendNeutral,
		RiskLevel:       model.RiskMedium,
	}
}

var monthlyRiskFactors = map[time.Month][]string{
	time.January:   {"신년 변동성", "소형주 과열", "저유동성"},
	time.February:  {"실적 서프라이즈", "짧은 거래일", "밸런타인 소비 영향"},
	time.March:     {"분기말 리밸런싱", "세금 매도", "금리 변동"},
	time.April:     {"실적 기대감 과열", "가이던스 하향", "봄 변동성"},
	time.May:       {"Sell in May 효과", "여름 비수기", "유럽 휴가"},
	time.June:      {"FOMC 불확실성", "분기말 압박", "여름 침체"},
	time.July:      {"실적 압박", "가이던스 리스크", "여름 변동성"},
	time.August:    {"휴가철 저유동성", "잭슨홀 리스크", "8월 효과"},
	time.September: {"9월 효과", "변동성 증가", "분기말 압박"},
	time.October:   {"실적 시즌 리스크", "연말 전망 불확실성", "10월 효과"},
	time.November:  {"연말 정산 압박", "펀드 리밸런싱", "세금 매도"},
	time.December:  {"연말 집중 현상", "세금 로스 셀링", "포트폴리오 정리"},
}

// RiskFactors returns the month's standing risk factors.
func RiskFactors(m time.Month) []string {
	if r, ok := monthlyRiskFactors[m]; ok {
		return r
	}
	return []string{"일반적인 시장 리스크"}
}

var monthlyOpportunities = map[time.Month][]string{
	time.January:   {"신년 효과 활용", "소형주 모멘텀", "새로운 자금 유입"},
	time.February:  {"실적 서프라이즈 수혜", "밸런타인 소비주", "단기 트레이딩"},
	time.March:     {"리밸런싱 기회", "세금 환급 수혜", "분기말 효과"},
	time.April:     {"봄 랠리 수혜", "성장주 강세", "가이던스 개선"},
	time.May:       {"방어주 로테이션", "배당주 선호", "안정성 추구"},
	time.June:      {"밸류 발굴 기회", "저평가 매수", "분산투자"},
	time.July:      {"실적 개선 수혜", "기술주 집중", "여름 소비"},
	time.August:    {"대형주 안정성", "배당 수익", "선별적 투자"},
	time.September: {"저가 매수 기회", "교육 관련주", "신학기 효과"},
	time.October:   {"실적 개선 기대", "4분기 전망", "연말 랠리 준비"},
	time.November:  {"연말 랠리 시작", "소비 관련주", "소형주 부활"},
	time.December:  {"산타 랠리", "성장주 강세", "연말 보너스 효과"},
}

// Opportunities returns the month's standing investment opportunities.
func Opportunities(m time.Month) []string {
	if o, ok := monthlyOpportunities[m]; ok {
		return o
	}
	return []string{"시기적 투자 기회"}
}

var monthlyTrendNotes = map[time.Month]string{
	time.January:   "신년 효과로 소형주와 성장주가 강세를 보이는 시기입니다.",
	time.February:  "실적 발표 시즌으로 단기 변동성이 증가할 수 있습니다.",
	time.March:     "분기말 효과로 기관 리밸런싱이 예상되는 시기입니다.",
	time.April:     "4월 효과로 역사적으로 주식 시장이 강세를 보이는 구간입니다.",
	time.May:       "Sell in May 격언에 따라 주의가 필요한 시기입니다.",
	time.June:      "여름 비수기 진입으로 저평가 가치주 발굴 기회입니다.",
	time.July:      "분기 실적 시즌 임박으로 실적 기대치 점검이 중요합니다.",
	time.August:    "여름 휴가철로 거래량 감소와 변동성 확대가 가능합니다.",
	time.September: "가을 시즌 시작으로 연말까지 상승 랠리를 기대할 수 있습니다.",
	time.October:   "분기 실적 시즌으로 연말 전망이 중요한 시점입니다.",
	time.November:  "연말 정산 효과와 연말 랠리가 경합하는 시기입니다.",
	time.December:  "산타 랠리 시즌으로 소형주와 성장주 선호도가 증가합니다.",
}
