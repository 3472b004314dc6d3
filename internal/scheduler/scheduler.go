package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"StockCompass/internal/advisor"
	"StockCompass/internal/cache"
)

// Scheduler manages the background cron tasks: periodic cache sweeps
// and the scheduled recommendation refresh.
type Scheduler struct {
	Cron     *cron.Cron
	Advisor  *advisor.Advisor
	Analyses *cache.AnalysisCache
	Scores   *cache.SeasonalScoreCache
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, adv *advisor.Advisor, analyses *cache.AnalysisCache, scores *cache.SeasonalScoreCache) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Advisor:  adv,
		Analyses: analyses,
		Scores:   scores,
		Ctx:      ctx,
	}
}

// RegisterAll registers the sweep and refresh tasks. refreshCron may be
// empty to disable the scheduled refresh.
func (s *Scheduler) RegisterAll(refreshCron string) error {
	// Expired cache entries are deleted lazily on read; the sweep keeps
	// memory bounded when reads stop.
	if _, err := s.Cron.AddFunc("0 */10 * * * *", s.sweepTask); err != nil {
		return fmt.Errorf("register sweep task: %w", err)
	}
	if refreshCron != "" {
		if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
			return fmt.Errorf("register refresh task: %w", err)
		}
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunRefreshNow executes the refresh immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunRefreshNow() {
	s.refreshTask()
}

func (s *Scheduler) sweepTask() {
	removed := s.Analyses.Sweep() + s.Scores.Sweep()
	if removed > 0 {
		log.Printf("[INFO] cache sweep removed %d expired entries", removed)
	}
}

func (s *Scheduler) refreshTask() {
	log.Println("[INFO] running scheduled recommendation refresh")
	report, err := s.Advisor.MonthlyRecommendations(s.Ctx, nil)
	if err != nil {
		log.Printf("[ERROR] scheduled refresh: %v", err)
		return
	}
	log.Printf("[INFO] refresh complete: %d recommendations, top pick %s, risk %s",
		len(report.Recommendations), report.Summary.TopPick, report.RiskLevel)
}
