package alertService

import (
	"fmt"
	"testing"

	"valueScoutBot/models"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		current models.BetStatus
		action  string
		want    models.BetStatus
		wantOK  bool
	}{
		{models.BetSent, ActionTrack, models.BetTracked, true},
		{models.BetSent, ActionDismiss, models.BetDismissed, true},
		{models.BetSent, ActionWon, models.BetSent, false},
		{models.BetTracked, ActionWon, models.BetWon, true},
		{models.BetTracked, ActionLost, models.BetLost, true},
		{models.BetTracked, ActionPush, models.BetPush, true},
		{models.BetTracked, ActionTrack, models.BetTracked, false},
		{models.BetTracked, ActionDismiss, models.BetTracked, false},
		{models.BetDismissed, ActionTrack, models.BetDismissed, false},
		{models.BetDismissed, ActionDismiss, models.BetDismissed, false},
		{models.BetWon, ActionLost, models.BetWon, false},
		{models.BetLost, ActionWon, models.BetLost, false},
		{models.BetPush, ActionTrack, models.BetPush, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s_%s", tt.current, tt.action), func(t *testing.T) {
			got, ok := Transition(tt.current, tt.action)
			if ok != tt.wantOK {
				t.Errorf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("state = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRecentEventsReplay(t *testing.T) {
	recent := NewRecentEvents(100)
	if recent.Seen("evt-1") {
		t.Error("first delivery should not be marked seen")
	}
	if !recent.Seen("evt-1") {
		t.Error("redelivery should be marked seen")
	}
}

func TestRecentEventsEviction(t *testing.T) {
	recent := NewRecentEvents(3)
	for i := 0; i < 4; i++ {
		recent.Seen(fmt.Sprintf("evt-%d", i))
	}

	// evt-0 aged out, so it reads as fresh again.
	if recent.Seen("evt-0") {
		t.Error("oldest id should have been evicted")
	}
	if !recent.Seen("evt-3") {
		t.Error("newest id should still be present")
	}
}
