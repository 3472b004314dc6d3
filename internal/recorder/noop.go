package recorder

import "StockCompass/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordAnalysis(_ *model.StockAnalysis) error    { return nil }
func (n *NoopRecorder) RecordMonthlyRun(_ *model.MonthlyReport) error  { return nil }
func (n *NoopRecorder) Close() error                                   { return nil }
