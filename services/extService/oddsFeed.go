package extService

import (
	"encoding/json"
	"fmt"
	"log"
	"runtime/debug"
	"strconv"
	"strings"

	"valueScoutBot/models/external"
	"valueScoutBot/services/common"
)

const defaultOddsAPIBase = "https://api.the-odds-api.com/v4"

// OddsAPIClient talks to the odds feed. It implements the fixture and odds
// feed contracts consumed by the cache orchestrator.
type OddsAPIClient struct {
	BaseURL string
}

func NewOddsAPIClient() *OddsAPIClient {
	return &OddsAPIClient{BaseURL: defaultOddsAPIBase}
}

// ListFixtures fetches the upcoming fixture list for one sport key.
func (c *OddsAPIClient) ListFixtures(feedKey string) (_ []external.Fixture, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Println("Recovered in ListFixtures", r)
			debug.PrintStack()
			err = fmt.Errorf("panic recovered in ListFixtures: %v", r)
		}
	}()

	requestUrl := fmt.Sprintf("%s/sports/%s/events", c.BaseURL, feedKey)
	resp, err := common.OddsAPIWrapper(requestUrl)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var fixtures []external.Fixture
	err = json.NewDecoder(resp.Body).Decode(&fixtures)
	if err != nil {
		return nil, err
	}
	return fixtures, nil
}

// FetchOdds fetches odds for one fixture restricted to a bookmaker batch and
// normalizes the response into flat records. The feed caps bookmakers per
// request, so callers batch.
func (c *OddsAPIClient) FetchOdds(feedKey, fixtureID string, markets, bookmakers []string) (_ []external.RawOddsRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Println("Recovered in FetchOdds", r)
			debug.PrintStack()
			err = fmt.Errorf("panic recovered in FetchOdds: %v", r)
		}
	}()

	requestUrl := fmt.Sprintf("%s/sports/%s/events/%s/odds?markets=%s&bookmakers=%s&oddsFormat=decimal",
		c.BaseURL, feedKey, fixtureID, strings.Join(markets, ","), strings.Join(bookmakers, ","))
	resp, err := common.OddsAPIWrapper(requestUrl)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var event external.OddsEvent
	err = json.NewDecoder(resp.Body).Decode(&event)
	if err != nil {
		return nil, err
	}
	return FlattenEvent(&event), nil
}

// FlattenEvent is the feed adapter: it turns the nested event payload into
// canonical flat records. Team-total markets carry the team in the outcome
// description, so it moves into the TeamName field instead of the label.
func FlattenEvent(event *external.OddsEvent) []external.RawOddsRecord {
	var records []external.RawOddsRecord
	for _, book := range event.Bookmakers {
		for _, market := range book.Markets {
			for _, outcome := range market.Outcomes {
				label := outcome.Name
				teamName := ""
				if outcome.Description != "" {
					if strings.HasPrefix(market.Key, "team_") {
						teamName = outcome.Description
					} else {
						label = fmt.Sprintf("%s %s", outcome.Description, outcome.Name)
					}
				}

				line := 0.0
				if outcome.Point != nil {
					line = *outcome.Point
					label = fmt.Sprintf("%s %s", label, strconv.FormatFloat(line, 'f', -1, 64))
				}

				records = append(records, external.RawOddsRecord{
					Market:         market.Key,
					SelectionLabel: label,
					Line:           line,
					Bookmaker:      book.Key,
					Price:          outcome.Price,
					TeamName:       teamName,
				})
			}
		}
	}
	return records
}
