package news

import (
	"context"

	"StockCompass/internal/model"
)

// Provider fetches recent headlines. Implementations may be slow or
// unreliable; callers treat empty results as "no news", not an error.
type Provider interface {
	// StockNews returns up to limit recent items about one ticker.
	StockNews(ctx context.Context, ticker string, limit int) (*model.NewsDigest, error)
	// MarketNews returns up to limit recent general-market items.
	MarketNews(ctx context.Context, limit int) (*model.NewsDigest, error)
	Name() string
}
