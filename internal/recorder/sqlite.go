package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"StockCompass/internal/model"
)

// SQLiteRecorder persists analysis history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analysis_snapshots (
			id                INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp         INTEGER NOT NULL,
			ticker            TEXT NOT NULL,
			month             INTEGER,
			total_score       REAL,
			technical_score   REAL,
			seasonal_score    REAL,
			fundamental_score REAL,
			sentiment_score   REAL,
			recommendation    TEXT,
			confidence        REAL,
			ai_provider       TEXT,
			reasons           TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_analysis_ts ON analysis_snapshots(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_analysis_ticker ON analysis_snapshots(ticker)`,

		`CREATE TABLE IF NOT EXISTS monthly_runs (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp       INTEGER NOT NULL,
			month           INTEGER,
			top_pick        TEXT,
			average_score   REAL,
			risk_level      TEXT,
			stock_count     INTEGER,
			market_mood     TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_monthly_runs_ts ON monthly_runs(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordAnalysis(analysis *model.StockAnalysis) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO analysis_snapshots
		(timestamp, ticker, month, total_score, technical_score, seasonal_score,
		 fundamental_score, sentiment_score, recommendation, confidence, ai_provider, reasons)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), analysis.Ticker, analysis.Month,
		analysis.TotalScore, analysis.TechnicalScore, analysis.SeasonalScore,
		analysis.FundamentalScore, analysis.SentimentScore,
		string(analysis.Recommendation), analysis.Confidence,
		analysis.Provider, strings.Join(analysis.Reasons, "; "),
	)
	return err
}

func (r *SQLiteRecorder) RecordMonthlyRun(report *model.MonthlyReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	mood := ""
	if report.MarketSentiment != nil {
		mood = string(report.MarketSentiment.Sentiment)
	}

	topPick := ""
	if len(report.Recommendations) > 0 {
		topPick = report.Recommendations[0].Ticker
	}

	_, err := r.db.Exec(`INSERT INTO monthly_runs
		(timestamp, month, top_pick, average_score, risk_level, stock_count, market_mood)
		VALUES (?,?,?,?,?,?,?)`,
		time.Now().Unix(), report.MonthNumber, topPick,
		report.Summary.AverageScore, string(report.RiskLevel),
		len(report.Recommendations), mood,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
