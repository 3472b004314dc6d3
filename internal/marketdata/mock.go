package marketdata

import (
	"context"
	"time"

	"StockCompass/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price     float64
	Bars      []model.OHLCV
	QuoteData *model.Quote
	Err       error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) DailyBars(_ context.Context, _ string, days int) ([]model.OHLCV, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Bars != nil {
		return m.Bars, nil
	}
	return GenerateBars(m.Price, days), nil
}

func (m *MockFetcher) Quote(_ context.Context, ticker string) (*model.Quote, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.QuoteData != nil {
		return m.QuoteData, nil
	}
	return &model.Quote{
		Ticker:           ticker,
		CurrentPrice:     m.Price,
		PERatio:          22,
		DividendYield:    1.1,
		FiftyTwoWeekHigh: m.Price * 1.3,
		FiftyTwoWeekLow:  m.Price * 0.7,
		FetchedAt:        time.Now(),
	}, nil
}

// GenerateBars builds a gently rising synthetic series around basePrice.
func GenerateBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
