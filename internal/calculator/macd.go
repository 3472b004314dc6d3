package calculator

import (
	"errors"

	"StockCompass/internal/model"
)

// calculateEMA computes the exponential moving average over the given period,
// seeded with the SMA of the first `period` prices.
func calculateEMA(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period {
		return 0, errors.New("not enough data for EMA calculation")
	}
	sum := 0.0
	for i := 0; i < period; i++ {
		sum += prices[i]
	}
	ema := sum / float64(period)
	k := 2.0 / float64(period+1)
	for i := period; i < len(prices); i++ {
		ema = prices[i]*k + ema*(1-k)
	}
	return ema, nil
}

// CalculateMACD returns the MACD line (EMA12 - EMA26) from daily bars.
func CalculateMACD(dailyBars []model.OHLCV) (float64, error) {
	closes := extractCloses(dailyBars)
	if len(closes) < 26 {
		return 0, errors.New("not enough data for MACD calculation")
	}
	ema12, err := calculateEMA(closes, 12)
	if err != nil {
		return 0, err
	}
	ema26, err := calculateEMA(closes, 26)
	if err != nil {
		return 0, err
	}
	return ema12 - ema26, nil
}
