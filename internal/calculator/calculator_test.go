package calculator

import (
	"math"
	"testing"

	"StockCompass/internal/model"
)

func barsFromCloses(closes []float64) []model.OHLCV {
	bars := make([]model.OHLCV, len(closes))
	for i, c := range closes {
		bars[i] = model.OHLCV{Open: c, High: c, Low: c, Close: c}
	}
	return bars
}

func TestCalculateSMA(t *testing.T) {
	tests := []struct {
		name    string
		prices  []float64
		period  int
		want    float64
		wantErr bool
	}{
		{"last five of ten", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 5, 8.0, false},
		{"whole slice", []float64{2, 4, 6}, 3, 4.0, false},
		{"not enough data", []float64{1, 2}, 5, 0, true},
		{"zero period", []float64{1, 2, 3}, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateSMA(tt.prices, tt.period)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CalculateSMA() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CalculateSMA() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCalculateRSI(t *testing.T) {
	rising := make([]float64, 30)
	falling := make([]float64, 30)
	for i := range rising {
		rising[i] = 100 + float64(i)
		falling[i] = 200 - float64(i)
	}

	tests := []struct {
		name   string
		closes []float64
		want   float64
	}{
		{"all gains pins at 100", rising, 100.0},
		{"all losses pins at 0", falling, 0.0},
		{"insufficient data defaults to 50", []float64{100, 101, 102}, 50.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateRSI(barsFromCloses(tt.closes), 14)
			if err != nil {
				t.Fatalf("CalculateRSI() error = %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CalculateRSI() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := CalculateRSI(barsFromCloses(rising), 0); err == nil {
		t.Error("CalculateRSI() with zero period should fail")
	}
}

func TestCalculateMACDFlatSeriesIsZero(t *testing.T) {
	flat := make([]float64, 40)
	for i := range flat {
		flat[i] = 150.0
	}
	got, err := CalculateMACD(barsFromCloses(flat))
	if err != nil {
		t.Fatalf("CalculateMACD() error = %v", err)
	}
	if math.Abs(got) > 1e-9 {
		t.Errorf("CalculateMACD() on flat series = %v, want 0", got)
	}

	if _, err := CalculateMACD(barsFromCloses(flat[:20])); err == nil {
		t.Error("CalculateMACD() with short history should fail")
	}
}

func TestCalculateMACDRisingSeriesIsPositive(t *testing.T) {
	rising := make([]float64, 60)
	for i := range rising {
		rising[i] = 100 + float64(i)
	}
	got, err := CalculateMACD(barsFromCloses(rising))
	if err != nil {
		t.Fatalf("CalculateMACD() error = %v", err)
	}
	if got <= 0 {
		t.Errorf("CalculateMACD() on rising series = %v, want > 0", got)
	}
}

func TestCalculateBollinger(t *testing.T) {
	flat := make([]float64, 20)
	for i := range flat {
		flat[i] = 100.0
	}
	upper, lower, err := CalculateBollinger(barsFromCloses(flat))
	if err != nil {
		t.Fatalf("CalculateBollinger() error = %v", err)
	}
	if math.Abs(upper-100) > 1e-9 || math.Abs(lower-100) > 1e-9 {
		t.Errorf("flat series bands = (%v, %v), want (100, 100)", upper, lower)
	}

	varied := append(append([]float64{}, flat...), 110, 90)
	upper, lower, err = CalculateBollinger(barsFromCloses(varied))
	if err != nil {
		t.Fatalf("CalculateBollinger() error = %v", err)
	}
	if upper <= lower {
		t.Errorf("bands inverted: upper %v <= lower %v", upper, lower)
	}

	if _, _, err := CalculateBollinger(barsFromCloses(flat[:10])); err == nil {
		t.Error("CalculateBollinger() with short history should fail")
	}
}

func TestCalculate52WeekRange(t *testing.T) {
	bars := []model.OHLCV{
		{High: 120, Low: 95},
		{High: 130, Low: 100},
		{High: 125, Low: 90},
	}
	high, low, err := Calculate52WeekRange(bars)
	if err != nil {
		t.Fatalf("Calculate52WeekRange() error = %v", err)
	}
	if high != 130 || low != 90 {
		t.Errorf("range = (%v, %v), want (130, 90)", high, low)
	}

	if _, _, err := Calculate52WeekRange(nil); err == nil {
		t.Error("Calculate52WeekRange() with no bars should fail")
	}
}

func TestCalculate52WeekRangeWindow(t *testing.T) {
	// An old spike beyond 252 bars back must not count.
	bars := make([]model.OHLCV, 300)
	for i := range bars {
		bars[i] = model.OHLCV{High: 110, Low: 100}
	}
	bars[0] = model.OHLCV{High: 500, Low: 10}
	high, low, err := Calculate52WeekRange(bars)
	if err != nil {
		t.Fatalf("Calculate52WeekRange() error = %v", err)
	}
	if high != 110 || low != 100 {
		t.Errorf("range = (%v, %v), want (110, 100)", high, low)
	}
}

func TestCalculate52WeekPosition(t *testing.T) {
	tests := []struct {
		name              string
		current, high, low float64
		want              float64
		wantErr           bool
	}{
		{"midpoint", 100, 150, 50, 0.5, false},
		{"at high", 150, 150, 50, 1.0, false},
		{"at low", 50, 150, 50, 0.0, false},
		{"clamped above", 200, 150, 50, 1.0, false},
		{"clamped below", 10, 150, 50, 0.0, false},
		{"degenerate range", 100, 100, 100, 0.5, false},
		{"inverted range", 100, 50, 150, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate52WeekPosition(tt.current, tt.high, tt.low)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Calculate52WeekPosition() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Calculate52WeekPosition() = %v, want %v", got, tt.want)
			}
		})
	}
}
