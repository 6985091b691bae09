package extService

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"

	"valueScoutBot/models/external"
	"valueScoutBot/services/common"
)

const defaultStatsAPIBase = "https://api.sportsdatahub.io/v1"

// StatsClient talks to the historical averages feed used by the forecast
// estimator.
type StatsClient struct {
	BaseURL string
}

func NewStatsClient() *StatsClient {
	base := os.Getenv("STATS_API_URL")
	if base == "" {
		base = defaultStatsAPIBase
	}
	return &StatsClient{BaseURL: base}
}

// SubjectAverages fetches per-game rates for a team or player over the
// trailing window of games.
func (c *StatsClient) SubjectAverages(subject string, window int) (*external.SubjectAverages, error) {
	requestUrl := fmt.Sprintf("%s/averages?subject=%s&window=%d", c.BaseURL, url.QueryEscape(subject), window)
	resp, err := common.StatsAPIWrapper(requestUrl)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var avgs external.SubjectAverages
	err = json.NewDecoder(resp.Body).Decode(&avgs)
	if err != nil {
		return nil, err
	}
	return &avgs, nil
}
