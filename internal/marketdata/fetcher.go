package marketdata

import (
	"context"

	"StockCompass/internal/model"
)

// Fetcher abstracts the market data source so analysis code can run
// against Yahoo Finance or fixed test data.
type Fetcher interface {
	Name() string

	// DailyBars returns up to days of daily candles, oldest first.
	DailyBars(ctx context.Context, ticker string, days int) ([]model.OHLCV, error)

	// Quote returns the fundamental snapshot for a ticker.
	Quote(ctx context.Context, ticker string) (*model.Quote, error)
}
