package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"StockCompass/internal/advisor"
	"StockCompass/internal/ai"
	"StockCompass/internal/cache"
	"StockCompass/internal/config"
	"StockCompass/internal/marketdata"
	"StockCompass/internal/news"
	"StockCompass/internal/recorder"
	"StockCompass/internal/scheduler"
	"StockCompass/internal/seasonal"
	"StockCompass/internal/server"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] StockCompass starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// AI provider chain: Claude primary, Gemini fallback, mock last.
	var primary ai.Provider
	var fallbacks []ai.Provider
	if cfg.AI.AnthropicAPIKey != "" {
		primary = ai.NewClaudeProvider(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
		log.Println("[INFO] claude provider configured")
	}
	if cfg.AI.GeminiAPIKey != "" {
		gemini, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
		if err != nil {
			log.Printf("[WARN] init gemini provider: %v", err)
		} else {
			if primary == nil {
				primary = gemini
			} else {
				fallbacks = append(fallbacks, gemini)
			}
			log.Println("[INFO] gemini provider configured")
		}
	}
	if primary == nil {
		log.Println("[WARN] no AI API keys configured, using mock provider only")
	}
	manager := ai.NewManager(primary, fallbacks...)

	// Caches
	scores := cache.NewSeasonalScoreCache()
	analyses := cache.NewAnalysisCache()
	registry := cache.NewRegistry()

	// Data sources
	fetcher := marketdata.NewYahooFetcher(cfg.Proxy)
	newsProvider := news.NewYahooProvider(cfg.Proxy)
	log.Printf("[INFO] data source: %s, news source: %s", fetcher.Name(), newsProvider.Name())

	seasonalAnalyzer := seasonal.NewAnalyzer(newsProvider, scores, registry)

	// Recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	adv := advisor.New(fetcher, seasonalAnalyzer, manager, analyses, scores, registry, rec)

	// Scheduler: cache sweeps plus the monthly refresh
	sched := scheduler.NewScheduler(ctx, adv, analyses, scores)
	if err := sched.RegisterAll(cfg.Schedule.RefreshCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if cfg.Schedule.RunOnStart {
		log.Println("[INFO] RUN_ON_START enabled, refreshing recommendations now")
		go sched.RunRefreshNow()
	}

	// HTTP server
	srv := server.New(cfg.Server.Addr, adv, manager)
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(ctx)
	}()

	log.Println("[INFO] StockCompass is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal or server failure
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
		log.Println("[INFO] shutdown signal received, stopping...")
		cancel()
		<-errCh
	case err := <-errCh:
		if err != nil {
			log.Fatalf("[FATAL] http server: %v", err)
		}
	}

	log.Println("[INFO] StockCompass stopped")
}
