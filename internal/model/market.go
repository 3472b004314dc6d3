package model

import "time"

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Quote holds the fundamental snapshot for one ticker.
type Quote struct {
	Ticker           string  `json:"ticker"`
	CurrentPrice     float64 `json:"currentPrice"`
	PERatio          float64 `json:"peRatio"`          // 0 means unavailable
	DividendYield    float64 `json:"dividendYield"`    // percent, 0 means none/unavailable
	FiftyTwoWeekHigh float64 `json:"fiftyTwoWeekHigh"`
	FiftyTwoWeekLow  float64 `json:"fiftyTwoWeekLow"`
	MarketCap        float64 `json:"marketCap"`
	Name             string  `json:"name"`
	FetchedAt        time.Time `json:"fetchedAt"`
}

// Position52w returns where the current price sits within the 52-week
// range (0.0~1.0), or 0.5 when the range is degenerate.
func (q *Quote) Position52w() float64 {
	if q.FiftyTwoWeekHigh <= q.FiftyTwoWeekLow {
		return 0.5
	}
	pos := (q.CurrentPrice - q.FiftyTwoWeekLow) / (q.FiftyTwoWeekHigh - q.FiftyTwoWeekLow)
	if pos < 0 {
		pos = 0
	}
	if pos > 1 {
		pos = 1
	}
	return pos
}
