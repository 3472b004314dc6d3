package marketdata

import (
	"context"
	"fmt"
	"math"

	"StockCompass/internal/calculator"
	"StockCompass/internal/model"
)

// TechnicalAnalysis fetches two years of daily bars and condenses the
// standard indicators into an overall signal by counting how many lean
// bullish versus bearish.
func TechnicalAnalysis(ctx context.Context, fetcher Fetcher, ticker string) (*model.TechnicalSummary, error) {
	bars, err := fetcher.DailyBars(ctx, ticker, 730)
	if err != nil {
		return nil, fmt.Errorf("technical analysis %s: %w", ticker, err)
	}
	if len(bars) < 200 {
		return &model.TechnicalSummary{
			Ticker:   ticker,
			Signal:   model.SignalInsufficient,
			Analysis: "분석에 필요한 과거 데이터가 부족합니다",
		}, nil
	}

	currentPrice := bars[len(bars)-1].Close
	sma50, _ := calculator.CalculateSMA50(bars)
	sma200, _ := calculator.CalculateSMA200(bars)
	rsi, _ := calculator.CalculateRSI(bars, 14)
	macd, _ := calculator.CalculateMACD(bars)
	bollUpper, bollLower, _ := calculator.CalculateBollinger(bars)

	var signals []string
	bullish, bearish := 0, 0

	if sma50 > 0 && sma200 > 0 {
		if sma50 > sma200 {
			signals = append(signals, "골든 크로스: 단기 상승 추세")
			bullish++
		} else {
			signals = append(signals, "데스 크로스: 단기 하락 추세")
			bearish++
		}
		if currentPrice > sma50 {
			signals = append(signals, "주가가 50일 이평선 상단")
			bullish++
		} else {
			signals = append(signals, "주가가 50일 이평선 하단")
			bearish++
		}
	}

	if rsi > 70 {
		signals = append(signals, "RSI 과매수 구간 (매도 고려)")
		bearish++
	} else if rsi < 30 {
		signals = append(signals, "RSI 과매도 구간 (매수 고려)")
		bullish++
	} else {
		signals = append(signals, "RSI 중립 구간")
	}

	if bollUpper > 0 && bollLower > 0 {
		if currentPrice > bollUpper {
			signals = append(signals, "볼린저 밴드 상단 돌파 (과매수)")
			bearish++
		} else if currentPrice < bollLower {
			signals = append(signals, "볼린저 밴드 하단 돌파 (과매도)")
			bullish++
		} else {
			signals = append(signals, "볼린저 밴드 내부 유지")
		}
	}

	if macd > 0 {
		signals = append(signals, "MACD 긍정적 신호")
		bullish++
	} else {
		signals = append(signals, "MACD 부정적 신호")
		bearish++
	}

	signal := model.SignalHold
	confidence := model.ConfidenceModerate
	if bullish > bearish+1 {
		signal = model.SignalBuy
		if bullish-bearish > 2 {
			confidence = model.ConfidenceHigh
		}
	} else if bearish > bullish+1 {
		signal = model.SignalSell
		if bearish-bullish > 2 {
			confidence = model.ConfidenceHigh
		}
	}

	return &model.TechnicalSummary{
		Ticker:         ticker,
		Signal:         signal,
		Confidence:     confidence,
		TrendStrength:  trendStrength(sma50, sma200, currentPrice),
		CurrentPrice:   currentPrice,
		SMA50:          sma50,
		SMA200:         sma200,
		RSI:            rsi,
		MACD:           macd,
		BollingerUpper: bollUpper,
		BollingerLower: bollLower,
		Signals:        signals,
		Analysis: fmt.Sprintf("종합 분석: %d개 지표 중 %d개 상승, %d개 하락 신호",
			len(signals), bullish, bearish),
	}, nil
}

// trendStrength grades the SMA spread against price proximity.
func trendStrength(sma50, sma200, currentPrice float64) model.TrendStrength {
	if sma50 == 0 || sma200 == 0 || currentPrice == 0 {
		return model.TrendWeak
	}
	smaSpread := math.Abs(sma50-sma200) / sma200 * 100
	priceToSMA50 := math.Abs(currentPrice-sma50) / sma50 * 100

	if smaSpread > 5 && priceToSMA50 < 3 {
		return model.TrendStrong
	}
	if smaSpread > 2 && priceToSMA50 < 5 {
		return model.TrendModerate
	}
	return model.TrendWeak
}
