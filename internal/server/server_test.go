package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"StockCompass/internal/ai"
	"StockCompass/internal/advisor"
	"StockCompass/internal/cache"
	"StockCompass/internal/marketdata"
	"StockCompass/internal/model"
	"StockCompass/internal/recorder"
	"StockCompass/internal/seasonal"
)

type stubNews struct{}

func (stubNews) Name() string { return "stub-news" }

func (stubNews) StockNews(_ context.Context, ticker string, _ int) (*model.NewsDigest, error) {
	return &model.NewsDigest{
		Ticker:     ticker,
		Items:      []model.NewsItem{{Title: ticker + " posts strong growth", Relevance: 0.8}},
		TotalCount: 1,
	}, nil
}

func (stubNews) MarketNews(_ context.Context, _ int) (*model.NewsDigest, error) {
	return &model.NewsDigest{
		Items:      []model.NewsItem{{Title: "Markets steady", Relevance: 0.8}},
		TotalCount: 1,
	}, nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	scores := cache.NewSeasonalScoreCache()
	registry := cache.NewRegistry()
	seasonalAnalyzer := seasonal.NewAnalyzer(stubNews{}, scores, registry)
	manager := ai.NewManager(nil)
	fetcher := &marketdata.MockFetcher{Price: 100, Bars: marketdata.GenerateBars(100, 400)}
	adv := advisor.New(fetcher, seasonalAnalyzer, manager,
		cache.NewAnalysisCache(), scores, registry, recorder.NewNoopRecorder())

	return New(":0", adv, manager)
}

func doRequest(t *testing.T, s *Server, method, path string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var body map[string]json.RawMessage
	if w.Code == http.StatusOK {
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode %s %s: %v", method, path, err)
		}
	}
	return w, body
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)
	w, _ := doRequest(t, s, http.MethodGet, "/healthz")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestScoreEndpoint(t *testing.T) {
	s := newTestServer(t)

	w, body := doRequest(t, s, http.MethodGet, "/api/score/NVDA")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var analysis model.StockAnalysis
	if err := json.Unmarshal(body["data"], &analysis); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if analysis.Ticker != "NVDA" {
		t.Errorf("ticker = %q", analysis.Ticker)
	}
	if analysis.TotalScore < 0 || analysis.TotalScore > 1 {
		t.Errorf("total score = %v", analysis.TotalScore)
	}
}

func TestScoreEndpointRejectsBadMonth(t *testing.T) {
	s := newTestServer(t)

	w, _ := doRequest(t, s, http.MethodGet, "/api/score/NVDA?month=13")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestSeasonalEndpoint(t *testing.T) {
	s := newTestServer(t)

	w, body := doRequest(t, s, http.MethodGet, "/api/seasonal/AAPL")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var analysis model.SeasonalAnalysis
	if err := json.Unmarshal(body["data"], &analysis); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if analysis.SeasonalScore < 0 || analysis.SeasonalScore > 1 {
		t.Errorf("seasonal score = %v", analysis.SeasonalScore)
	}
}

func TestOutlookEndpoint(t *testing.T) {
	s := newTestServer(t)

	w, body := doRequest(t, s, http.MethodGet, "/api/outlook/12")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var outlook seasonal.MonthOutlook
	if err := json.Unmarshal(body["data"], &outlook); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if outlook.Month != 12 {
		t.Errorf("month = %d, want 12", outlook.Month)
	}
	if len(outlook.RiskFactors) == 0 || outlook.EntryTiming == "" {
		t.Errorf("incomplete outlook: %+v", outlook)
	}

	if w, _ := doRequest(t, s, http.MethodGet, "/api/outlook/0"); w.Code != http.StatusBadRequest {
		t.Errorf("month 0 status = %d, want 400", w.Code)
	}
}

func TestAIStatusEndpoint(t *testing.T) {
	s := newTestServer(t)

	w, body := doRequest(t, s, http.MethodGet, "/api/ai/status")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var providers []ai.ProviderStatus
	if err := json.Unmarshal(body["providers"], &providers); err != nil {
		t.Fatalf("decode providers: %v", err)
	}
	if len(providers) == 0 || providers[len(providers)-1].Name != "mock" {
		t.Errorf("providers = %+v, want mock last", providers)
	}
}

func TestCacheEndpoints(t *testing.T) {
	s := newTestServer(t)

	// Prime the caches through an analysis.
	if w, _ := doRequest(t, s, http.MethodGet, "/api/score/MSFT"); w.Code != http.StatusOK {
		t.Fatalf("score status = %d", w.Code)
	}

	w, body := doRequest(t, s, http.MethodPost, "/api/cache/clear")
	if w.Code != http.StatusOK {
		t.Fatalf("clear status = %d", w.Code)
	}
	var removed int
	if err := json.Unmarshal(body["removed"], &removed); err != nil {
		t.Fatalf("decode removed: %v", err)
	}
	if removed == 0 {
		t.Error("cache clear removed nothing after an analysis")
	}

	if w, _ := doRequest(t, s, http.MethodGet, "/api/cache/status"); w.Code != http.StatusOK {
		t.Fatalf("status endpoint = %d", w.Code)
	}
}

func TestCacheClearTickerScoped(t *testing.T) {
	s := newTestServer(t)

	for _, ticker := range []string{"NVDA", "AAPL"} {
		if w, _ := doRequest(t, s, http.MethodGet, "/api/score/"+ticker); w.Code != http.StatusOK {
			t.Fatalf("score %s status = %d", ticker, w.Code)
		}
	}

	w, body := doRequest(t, s, http.MethodPost, "/api/cache/clear?ticker=NVDA")
	if w.Code != http.StatusOK {
		t.Fatalf("clear status = %d", w.Code)
	}
	var removed int
	if err := json.Unmarshal(body["removed"], &removed); err != nil {
		t.Fatalf("decode removed: %v", err)
	}
	if removed == 0 {
		t.Error("ticker-scoped clear removed nothing")
	}

	_, body = doRequest(t, s, http.MethodGet, "/api/cache/status")
	var caches map[string]cache.CacheStatus
	if err := json.Unmarshal(body["caches"], &caches); err != nil {
		t.Fatalf("decode caches: %v", err)
	}
	if got := caches["analysis"].Size; got != 1 {
		t.Errorf("analysis cache size = %d after NVDA clear, want 1 (AAPL kept)", got)
	}
}

func TestAIRecommendationsEndpoint(t *testing.T) {
	s := newTestServer(t)

	w, body := doRequest(t, s, http.MethodGet, "/api/ai/recommendations?tickers=NVDA,MSFT")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var result ai.RecommendationResult
	if err := json.Unmarshal(body["data"], &result); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(result.Picks) != 2 {
		t.Fatalf("got %d picks, want 2", len(result.Picks))
	}
	if result.Picks[0].Ticker != "NVDA" {
		t.Errorf("first pick = %q, want NVDA", result.Picks[0].Ticker)
	}
	if result.Provider != "mock" {
		t.Errorf("provider = %q, want mock", result.Provider)
	}
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/score/NVDA", nil)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d, want 204", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("allow-origin = %q", got)
	}
}
