package seasonal

import (
	"time"

	"StockCompass/internal/model"
)

// MonthOutlook bundles the static month profile with mood-adjusted
// timing guidance for the outlook endpoint.
type MonthOutlook struct {
	Month           int              `json:"month"`
	Name            string           `json:"name"`
	HistoricalTrend model.MonthTrend `json:"historicalTrend"`
	KeyFactors      []string         `json:"keyFactors"`
	Sectors         []string         `json:"sectors"`
	RiskLevel       model.RiskLevel  `json:"riskLevel"`
	RiskFactors     []string         `json:"riskFactors"`
	Opportunities   []string         `json:"opportunities"`
	EntryTiming     string           `json:"entryTiming"`
	ExitTiming      string           `json:"exitTiming"`
	Strategy        string           `json:"strategy"`
}

// Outlook assembles the outlook for one month under the given market
// mood. sentiment and confidence normally come from the AI manager;
// neutral/0.6 is the degraded default.
func Outlook(month time.Month, sentiment model.Sentiment, confidence float64) MonthOutlook {
	c := Characteristic(month)
	return MonthOutlook{
		Month:           int(month),
		Name:            c.Name,
		HistoricalTrend: c.HistoricalTrend,
		KeyFactors:      c.KeyFactors,
		Sectors:         c.Sectors,
		RiskLevel:       c.RiskLevel,
		RiskFactors:     RiskFactors(month),
		Opportunities:   Opportunities(month),
		EntryTiming:     EntryTiming(month, sentiment),
		ExitTiming:      ExitTiming(month, confidence),
		Strategy:        Strategy(month, sentiment),
	}
}
