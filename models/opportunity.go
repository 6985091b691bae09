package models

import "time"

// BookmakerPrice is one playable price that cleared the EV threshold.
type BookmakerPrice struct {
	Bookmaker string
	Price     float64
	EVPercent float64
}

// Opportunity is a proposition whose best playable price beats the fair
// probability by at least the configured edge. AllBookmakers holds every
// qualifying price sorted by EV% descending; the head is the primary price.
type Opportunity struct {
	FixtureID  string
	Sport      string
	Subject    string
	Market     string
	Line       float64
	Side       Side
	Bookmaker  string
	Price      float64
	EVPercent  float64
	FairProb   float64
	Method     ProbMethod
	SampleSize int

	AllBookmakers []BookmakerPrice
	UpdatedAt     time.Time
}
