package seasonal

import (
	"strings"
	"testing"
	"time"

	"StockCompass/internal/model"
)

func TestOutlookBundlesMonthProfile(t *testing.T) {
	o := Outlook(time.December, model.SentimentPositive, 0.8)

	if o.Month != 12 {
		t.Errorf("Month = %d, want 12", o.Month)
	}
	if o.Name != "산타 랠리" {
		t.Errorf("Name = %q", o.Name)
	}
	if o.HistoricalTrend != model.TrendPositive {
		t.Errorf("HistoricalTrend = %q", o.HistoricalTrend)
	}
	if len(o.RiskFactors) == 0 || len(o.Opportunities) == 0 || len(o.KeyFactors) == 0 {
		t.Error("expected non-empty risk factors, opportunities, and key factors")
	}
	if o.EntryTiming != "월초 적극적 진입 권장" {
		t.Errorf("EntryTiming = %q", o.EntryTiming)
	}
	if !strings.Contains(o.Strategy, "성장주") {
		t.Errorf("Strategy = %q, want growth-tilted advice", o.Strategy)
	}
}

func TestOutlookTimingRules(t *testing.T) {
	tests := []struct {
		name       string
		month      time.Month
		sentiment  model.Sentiment
		confidence float64
		wantEntry  string
		wantExit   string
	}{
		{
			name:       "volatile month splits entries",
			month:      time.February,
			sentiment:  model.SentimentNeutral,
			confidence: 0.8,
			wantEntry:  "변동성 활용한 분할 매수",
			wantExit:   "목표 수익률 달성 시 신속 청산",
		},
		{
			name:       "negative month waits for dips",
			month:      time.May,
			sentiment:  model.SentimentNegative,
			confidence: 0.8,
			wantEntry:  "하락 시 저가 매수 기회 대기",
			wantExit:   "월말 또는 추세 변화 시점",
		},
		{
			name:       "low confidence exits partially",
			month:      time.December,
			sentiment:  model.SentimentNeutral,
			confidence: 0.5,
			wantEntry:  "시장 상황 모니터링 후 진입",
			wantExit:   "불확실성 증가 시 부분 청산",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Outlook(tt.month, tt.sentiment, tt.confidence)
			if o.EntryTiming != tt.wantEntry {
				t.Errorf("EntryTiming = %q, want %q", o.EntryTiming, tt.wantEntry)
			}
			if o.ExitTiming != tt.wantExit {
				t.Errorf("ExitTiming = %q, want %q", o.ExitTiming, tt.wantExit)
			}
		})
	}
}
