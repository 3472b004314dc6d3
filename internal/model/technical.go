package model

// TradeSignal is the overall direction derived from technical indicators.
type TradeSignal string

const (
	SignalBuy          TradeSignal = "Buy"
	SignalHold         TradeSignal = "Hold"
	SignalSell         TradeSignal = "Sell"
	SignalInsufficient TradeSignal = "Data Insufficient"
)

// SignalConfidence labels how many indicators agree with the overall signal.
type SignalConfidence string

const (
	ConfidenceHigh     SignalConfidence = "High"
	ConfidenceModerate SignalConfidence = "Moderate"
	ConfidenceLow      SignalConfidence = "Low"
)

// TrendStrength labels the SMA50/SMA200 spread.
type TrendStrength string

const (
	TrendStrong   TrendStrength = "Strong"
	TrendModerate TrendStrength = "Moderate"
	TrendWeak     TrendStrength = "Weak"
)

// TechnicalSummary is the output of the technical-analysis collaborator
// for one ticker.
type TechnicalSummary struct {
	Ticker        string           `json:"ticker"`
	Signal        TradeSignal      `json:"signal"`
	Confidence    SignalConfidence `json:"confidence"`
	TrendStrength TrendStrength    `json:"trendStrength"`
	CurrentPrice  float64          `json:"currentPrice"`
	SMA50         float64          `json:"sma50"`
	SMA200        float64          `json:"sma200"`
	RSI           float64          `json:"rsi"` // 0 means unavailable
	MACD          float64          `json:"macd"`
	BollingerUpper float64         `json:"bollingerUpper"`
	BollingerLower float64         `json:"bollingerLower"`
	Signals       []string         `json:"signals"`
	Analysis      string           `json:"analysis"`
}
