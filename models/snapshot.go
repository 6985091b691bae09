package models

import "time"

type RefreshState string

const (
	StateIdle       RefreshState = "idle"
	StateRefreshing RefreshState = "refreshing"
	StateError      RefreshState = "error"
)

// RefreshProgress reports how far a running cycle has gotten.
type RefreshProgress struct {
	CycleID string `json:"cycleId"`
	Current int    `json:"current"`
	Total   int    `json:"total"`
	Step    string `json:"step"`
	Message string `json:"message"`
}

// FixtureOdds is one upcoming fixture and the opportunities found on it.
type FixtureOdds struct {
	FixtureID     string        `json:"fixtureId"`
	HomeTeam      string        `json:"homeTeam"`
	AwayTeam      string        `json:"awayTeam"`
	StartTime     time.Time     `json:"startTime"`
	Opportunities []Opportunity `json:"opportunities"`
}

// CacheSnapshot is the complete result set for one sport as of the last
// successful refresh. The orchestrator is the only writer; everything
// handed to readers is a copy.
type CacheSnapshot struct {
	Sport         string           `json:"sport"`
	Fixtures      []FixtureOdds    `json:"fixtures"`
	Opportunities []Opportunity    `json:"opportunities"`
	State         RefreshState     `json:"state"`
	ErrorMessage  string           `json:"errorMessage,omitempty"`
	LastUpdated   time.Time        `json:"lastUpdated"`
	Progress      *RefreshProgress `json:"progress,omitempty"`
}

// RefreshStatus is the lightweight status view exposed alongside the snapshot.
type RefreshStatus struct {
	Sport        string
	LastUpdated  time.Time
	IsRefreshing bool
	ErrorMessage string
	Progress     *RefreshProgress
}
