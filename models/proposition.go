package models

import "math"

type Side string

const (
	SideOver  Side = "over"
	SideUnder Side = "under"
	SideYes   Side = "yes"
	SideNo    Side = "no"
)

// Opposite returns the other half of a two-sided market.
func (s Side) Opposite() Side {
	switch s {
	case SideOver:
		return SideUnder
	case SideUnder:
		return SideOver
	case SideYes:
		return SideNo
	case SideNo:
		return SideYes
	}
	return s
}

// Proposition is a single bettable line at one bookmaker.
// Price is decimal; anything at or below 1.0 never makes it past the parser.
type Proposition struct {
	Subject   string
	Market    string
	Line      float64
	Side      Side
	Bookmaker string
	Price     float64
}

// LineBucket holds every proposition quoted at (or rounded to) one line,
// split into prices the operator can actually take and prices that only
// feed the fair-probability estimate.
type LineBucket struct {
	Line      float64
	Playable  []Proposition
	Reference []Proposition
}

// PropositionGroup collects all propositions for one (subject, market) pair,
// bucketed by line rounded to the nearest 0.5.
type PropositionGroup struct {
	Subject string
	Market  string
	Buckets map[float64]*LineBucket
}

// BucketLine rounds a line to the nearest 0.5.
func BucketLine(line float64) float64 {
	return math.Round(line*2) / 2
}
