package alertService

import (
	"valueScoutBot/models"
)

const (
	ActionTrack   = "track"
	ActionDismiss = "dismiss"
	ActionWon     = "won"
	ActionLost    = "lost"
	ActionPush    = "push"
)

// Transition applies an operator action to a lifecycle state. The second
// return is false when the action is not legal from the current state, which
// callers treat as an idempotent no-op. Terminal states accept nothing.
func Transition(current models.BetStatus, action string) (models.BetStatus, bool) {
	switch current {
	case models.BetSent:
		switch action {
		case ActionTrack:
			return models.BetTracked, true
		case ActionDismiss:
			return models.BetDismissed, true
		}
	case models.BetTracked:
		switch action {
		case ActionWon:
			return models.BetWon, true
		case ActionLost:
			return models.BetLost, true
		case ActionPush:
			return models.BetPush, true
		}
	}
	return current, false
}
