package recorder

import "StockCompass/internal/model"

// Recorder persists analysis history for later review.
type Recorder interface {
	RecordAnalysis(analysis *model.StockAnalysis) error
	RecordMonthlyRun(report *model.MonthlyReport) error
	Close() error
}
