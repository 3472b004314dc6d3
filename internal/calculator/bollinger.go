package calculator

import (
	"errors"
	"math"

	"StockCompass/internal/model"
)

// CalculateBollinger returns the upper and lower Bollinger Bands
// (20-period SMA ± 2 standard deviations) from daily bars.
func CalculateBollinger(dailyBars []model.OHLCV) (upper, lower float64, err error) {
	const period = 20
	closes := extractCloses(dailyBars)
	if len(closes) < period {
		return 0, 0, errors.New("not enough data for Bollinger calculation")
	}

	window := closes[len(closes)-period:]
	mean := 0.0
	for _, c := range window {
		mean += c
	}
	mean /= float64(period)

	variance := 0.0
	for _, c := range window {
		variance += (c - mean) * (c - mean)
	}
	stddev := math.Sqrt(variance / float64(period))

	return mean + 2*stddev, mean - 2*stddev, nil
}
