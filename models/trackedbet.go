package models

import (
	"time"

	"gorm.io/gorm"
)

type BetStatus string

const (
	BetSent      BetStatus = "sent"
	BetTracked   BetStatus = "tracked"
	BetDismissed BetStatus = "dismissed"
	BetWon       BetStatus = "won"
	BetLost      BetStatus = "lost"
	BetPush      BetStatus = "push"
)

// TrackedBet is the durable lifecycle record for one alerted opportunity,
// keyed by the deterministic bet key. It also snapshots the opportunity as
// it looked when the alert fired.
type TrackedBet struct {
	gorm.Model
	ID          uint   `gorm:"primaryKey"`
	BetKey      string `gorm:"uniqueIndex;size:255"`
	Sport       string `gorm:"size:32"`
	Status      string `gorm:"size:16"`
	FirstSentAt time.Time
	MessageID   *string
	ChannelID   string

	FixtureID string `gorm:"size:64"`
	Subject   string
	Market    string `gorm:"size:64"`
	Line      float64
	Side      string `gorm:"size:8"`
	Bookmaker string `gorm:"size:64"`
	Price     float64
	EVPercent float64
	FairProb  float64
}

// Terminal reports whether the bet has reached a state that accepts no
// further operator action.
func (b *TrackedBet) Terminal() bool {
	switch BetStatus(b.Status) {
	case BetDismissed, BetWon, BetLost, BetPush:
		return true
	}
	return false
}
