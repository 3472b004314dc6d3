package model

import "time"

// Weights holds the fixed composite weights. They must sum to 1.0.
type Weights struct {
	Technical   float64
	Seasonal    float64
	Fundamental float64
	Sentiment   float64
}

// DefaultWeights is the canonical sentiment-inclusive weighting.
var DefaultWeights = Weights{
	Technical:   0.35,
	Seasonal:    0.25,
	Fundamental: 0.20,
	Sentiment:   0.20,
}

// Sum returns the total of all four weights.
func (w Weights) Sum() float64 {
	return w.Technical + w.Seasonal + w.Fundamental + w.Sentiment
}

// Recommendation is the categorical verdict derived from a total score.
type Recommendation string

const (
	StrongBuy  Recommendation = "강력 추천"
	Buy        Recommendation = "추천"
	Hold       Recommendation = "보통"
	Sell       Recommendation = "비추천"
	StrongSell Recommendation = "매도 고려"
)

// ConfidenceLevel buckets a numeric confidence for display.
type ConfidenceLevel string

const (
	ConfidenceLevelHigh   ConfidenceLevel = "High"
	ConfidenceLevelMedium ConfidenceLevel = "Medium"
	ConfidenceLevelLow    ConfidenceLevel = "Low"
)

// RiskLevel grades the overall risk of a recommendation set.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// AnalysisDetails keeps the raw per-source results for UI drill-down.
type AnalysisDetails struct {
	Technical *TechnicalSummary `json:"technical,omitempty"`
	Seasonal  *SeasonalAnalysis `json:"newsSeasonalAnalysis,omitempty"`
	Quote     *Quote            `json:"quote,omitempty"`
	Sentiment *SentimentResult  `json:"sentiment,omitempty"`
}

// Provenance records which component served each score.
type Provenance struct {
	Technical   string `json:"technical"`
	Seasonal    string `json:"seasonal"`
	Fundamental string `json:"fundamental"`
	Sentiment   string `json:"sentiment"`
}

// StockAnalysis is the composite score bundle produced once per
// (ticker, analysis run). Never mutated after construction.
type StockAnalysis struct {
	Ticker           string          `json:"ticker"`
	Month            int             `json:"month"` // 1-12 for display
	TotalScore       float64         `json:"totalScore"`
	TechnicalScore   float64         `json:"technicalScore"`
	SeasonalScore    float64         `json:"seasonalScore"`
	FundamentalScore float64         `json:"fundamentalScore"`
	SentimentScore   float64         `json:"sentimentScore"`
	Recommendation   Recommendation  `json:"recommendation"`
	Confidence       float64         `json:"confidence"`
	ConfidenceLevel  ConfidenceLevel `json:"confidenceLevel"`
	Reasons          []string        `json:"reasons"`
	SeasonalInsights []string        `json:"seasonalInsights"`
	Details          *AnalysisDetails `json:"details,omitempty"`
	Components       Provenance      `json:"analysisComponents"`
	Model            string          `json:"model"`
	Provider         string          `json:"aiProvider"`
	Timestamp        time.Time       `json:"timestamp"`
}

// NewsAnalysisStats summarizes how much news evidence went into a
// seasonal analysis.
type NewsAnalysisStats struct {
	TotalNewsAnalyzed int     `json:"totalNewsAnalyzed"`
	StockNewsCount    int     `json:"stockNewsCount"`
	MarketNewsCount   int     `json:"marketNewsCount"`
	AverageRelevance  float64 `json:"averageRelevance"`
}

// SeasonalAnalysis is the full bundle produced by the news-seasonal
// analyzer for one (ticker, month).
type SeasonalAnalysis struct {
	Ticker          string            `json:"ticker"`
	Month           int               `json:"month"` // 1-12 for display
	SeasonalScore   float64           `json:"seasonalScore"`
	BaseScore       float64           `json:"baseSeasonalScore"`
	NewsImpact      NewsImpact        `json:"newsImpact"`
	MarketSentiment MarketMood        `json:"marketSentiment"`
	Insights        []string          `json:"insights"`
	Recommendation  Recommendation    `json:"recommendation"`
	Confidence      float64           `json:"confidence"`
	NewsAnalysis    NewsAnalysisStats `json:"newsAnalysis"`
	Model           string            `json:"model"`
	Provider        string            `json:"aiProvider"`
	FromCache       bool              `json:"fromCache"`
	LastUpdated     time.Time         `json:"lastUpdated"`
}

// MonthlySummary is the narrative block of a monthly report.
type MonthlySummary struct {
	Overview        string  `json:"overview"`
	TopPick         string  `json:"topPick"`
	AverageScore    float64 `json:"averageScore"`
	MarketCondition string  `json:"marketCondition"`
	Strategy        string  `json:"strategy"`
}

// MonthlyReport is the top-N recommendation set for one month.
type MonthlyReport struct {
	Month           string           `json:"month"`
	MonthNumber     int              `json:"monthNumber"`
	Recommendations []*StockAnalysis `json:"recommendations"`
	MarketSentiment *SentimentResult `json:"marketSentiment"`
	Summary         MonthlySummary   `json:"summary"`
	RiskLevel       RiskLevel        `json:"riskLevel"`
	Timestamp       time.Time        `json:"timestamp"`
}

// SectorReport ranks one sector's ticker universe.
type SectorReport struct {
	Sector          string           `json:"sector"`
	Recommendations []*StockAnalysis `json:"recommendations"`
	SectorScore     float64          `json:"sectorScore"`
	Timestamp       time.Time        `json:"timestamp"`
}
