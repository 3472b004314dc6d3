package model

// MonthTrend categorizes a month's historical market behavior.
type MonthTrend string

const (
	TrendPositive MonthTrend = "positive"
	TrendNeutral  MonthTrend = "neutral"
	TrendNegative MonthTrend = "negative"
	TrendVolatile MonthTrend = "volatile"
)

// MonthCharacteristic is static reference data for one calendar month.
// Tables are package-level constants, never mutated.
type MonthCharacteristic struct {
	Name            string     `json:"name"`
	HistoricalTrend MonthTrend `json:"historicalTrend"`
	KeyFactors      []string   `json:"keyFactors"`
	Sectors         []string   `json:"sectors"`
	RiskLevel       RiskLevel  `json:"riskLevel"`
}
