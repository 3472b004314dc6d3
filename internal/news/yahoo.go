package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"StockCompass/internal/model"
)

// newsCacheTTL is how long fetched headlines stay fresh. News moves
// slower than quotes, so this is double the analysis TTL.
const newsCacheTTL = 10 * time.Minute

// YahooProvider fetches headlines from the Yahoo Finance search API.
// Failed or empty fetches fall back to generated placeholder items so
// the seasonal analyzer always has something to aggregate.
type YahooProvider struct {
	Client  *http.Client
	limiter *rate.Limiter

	mu    sync.Mutex
	cache map[string]cachedDigest
}

type cachedDigest struct {
	digest    *model.NewsDigest
	fetchedAt time.Time
}

// NewYahooProvider creates a provider with optional proxy support.
func NewYahooProvider(proxyURL string) *YahooProvider {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooProvider{
		Client: &http.Client{
			Timeout:   10 * time.Second,
			Transport: transport,
		},
		limiter: rate.NewLimiter(rate.Limit(2), 2),
		cache:   make(map[string]cachedDigest),
	}
}

func (p *YahooProvider) Name() string { return "yahoo-news" }

// yahooSearch is the relevant slice of the Yahoo Finance search response.
type yahooSearch struct {
	News []struct {
		Title               string `json:"title"`
		Summary             string `json:"summary"`
		Link                string `json:"link"`
		ProviderPublishTime int64  `json:"providerPublishTime"`
		Publisher           string `json:"publisher"`
	} `json:"news"`
}

func (p *YahooProvider) StockNews(ctx context.Context, ticker string, limit int) (*model.NewsDigest, error) {
	if limit <= 0 {
		limit = 5
	}
	cacheKey := ticker + "_news"
	if d := p.cachedDigest(cacheKey); d != nil {
		return d, nil
	}

	items, err := p.search(ctx, ticker, limit)
	if err != nil || len(items) == 0 {
		if err != nil {
			log.Printf("[WARN] yahoo news fetch for %s failed: %v, using generated news", ticker, err)
		}
		items = generateStockNews(ticker)
	}
	if len(items) > limit {
		items = items[:limit]
	}

	digest := &model.NewsDigest{
		Ticker:      ticker,
		Items:       items,
		TotalCount:  len(items),
		Source:      p.Name(),
		LastUpdated: time.Now(),
	}
	p.storeDigest(cacheKey, digest)
	return digest, nil
}

func (p *YahooProvider) MarketNews(ctx context.Context, limit int) (*model.NewsDigest, error) {
	if limit <= 0 {
		limit = 3
	}
	if d := p.cachedDigest("market_news"); d != nil {
		return d, nil
	}

	// Broad market proxy query; the S&P 500 index attracts macro headlines.
	items, err := p.search(ctx, "^GSPC", limit)
	if err != nil || len(items) == 0 {
		if err != nil {
			log.Printf("[WARN] yahoo market news fetch failed: %v, using generated news", err)
		}
		items = generateMarketNews()
	}
	if len(items) > limit {
		items = items[:limit]
	}

	digest := &model.NewsDigest{
		Items:       items,
		TotalCount:  len(items),
		Source:      p.Name(),
		LastUpdated: time.Now(),
	}
	p.storeDigest("market_news", digest)
	return digest, nil
}

func (p *YahooProvider) search(ctx context.Context, query string, limit int) ([]model.NewsItem, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	u := fmt.Sprintf("https://query1.finance.yahoo.com/v1/finance/search?q=%s&quotesCount=1&newsCount=%d",
		url.QueryEscape(query), limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo search: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo search read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo search: status %d", resp.StatusCode)
	}

	var search yahooSearch
	if err := json.Unmarshal(body, &search); err != nil {
		return nil, fmt.Errorf("yahoo search decode: %w", err)
	}

	items := make([]model.NewsItem, 0, len(search.News))
	for _, n := range search.News {
		if n.Title == "" {
			continue
		}
		publishedAt := time.Now()
		if n.ProviderPublishTime > 0 {
			publishedAt = time.Unix(n.ProviderPublishTime, 0)
		}
		source := n.Publisher
		if source == "" {
			source = "Yahoo Finance"
		}
		summary := n.Summary
		if summary == "" {
			summary = n.Title
		}
		items = append(items, model.NewsItem{
			Title:       n.Title,
			Summary:     summary,
			PublishedAt: publishedAt,
			Source:      source,
			URL:         n.Link,
			Sentiment:   TitleSentiment(n.Title),
			Relevance:   0.8,
		})
	}
	return items, nil
}

func (p *YahooProvider) cachedDigest(key string) *model.NewsDigest {
	p.mu.Lock()
	defer p.mu.Unlock()
	c, ok := p.cache[key]
	if !ok || time.Since(c.fetchedAt) >= newsCacheTTL {
		return nil
	}
	return c.digest
}

func (p *YahooProvider) storeDigest(key string, digest *model.NewsDigest) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cache[key] = cachedDigest{digest: digest, fetchedAt: time.Now()}
}

// ClearCache drops all cached digests and returns how many were removed.
func (p *YahooProvider) ClearCache() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := len(p.cache)
	p.cache = make(map[string]cachedDigest)
	return n
}
