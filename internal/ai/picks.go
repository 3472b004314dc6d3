package ai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var jsonBlockRegex = regexp.MustCompile("(?s)\\{.*\\}")

func recommendPrompt(tickers []string) string {
	universe := "US tech stocks"
	if len(tickers) > 0 {
		universe = strings.Join(tickers, ", ")
	}
	return fmt.Sprintf(`Rank the following stocks for the current month: %s.
Respond with a single JSON object, no prose:
{"picks":[{"ticker":"NVDA","score":85,"signal":"Buy|Hold|Sell","confidence":"High|Medium|Low","reasoning":"one sentence"}],"reasoning":"one sentence overall"}`, universe)
}

type picksEnvelope struct {
	Picks     []StockPick `json:"picks"`
	Reasoning string      `json:"reasoning"`
}

// parsePicks extracts a ranked pick list from a provider response,
// tolerating code fences and surrounding prose.
func parsePicks(raw string) ([]StockPick, string, error) {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)

	var env picksEnvelope
	if err := json.Unmarshal([]byte(trimmed), &env); err == nil && len(env.Picks) > 0 {
		return env.Picks, env.Reasoning, nil
	}

	if match := jsonBlockRegex.FindString(trimmed); match != "" {
		if err := json.Unmarshal([]byte(match), &env); err == nil && len(env.Picks) > 0 {
			return env.Picks, env.Reasoning, nil
		}
	}

	return nil, "", fmt.Errorf("no picks found in response")
}
