package external

import "time"

type OddsOutcome struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Point       *float64 `json:"point,omitempty"`
}

type OddsMarket struct {
	Key        string        `json:"key"`
	LastUpdate time.Time     `json:"last_update"`
	Outcomes   []OddsOutcome `json:"outcomes"`
}

type OddsBookmaker struct {
	Key     string       `json:"key"`
	Title   string       `json:"title"`
	Markets []OddsMarket `json:"markets"`
}

type OddsEvent struct {
	ID           string          `json:"id"`
	SportKey     string          `json:"sport_key"`
	CommenceTime time.Time       `json:"commence_time"`
	HomeTeam     string          `json:"home_team"`
	AwayTeam     string          `json:"away_team"`
	Bookmakers   []OddsBookmaker `json:"bookmakers"`
}

// RawOddsRecord is the canonical flat record every feed adapter normalizes
// into before anything downstream sees it. SelectionLabel still carries the
// feed's selection text ("Mohamed Salah Over 2.5", "Over", "Yes"); the parser
// decodes it into subject and side.
type RawOddsRecord struct {
	Market         string
	SelectionLabel string
	Line           float64
	Bookmaker      string
	Price          float64
	TeamName       string
}
