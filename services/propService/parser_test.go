package propService

import (
	"testing"

	"valueScoutBot/models"
	"valueScoutBot/models/external"
)

func assertEqual(t *testing.T, expected, actual interface{}, msg string) {
	t.Helper()
	if expected != actual {
		t.Errorf("%s: expected %v, got %v", msg, expected, actual)
	}
}

func TestDecodeSelection(t *testing.T) {
	tests := []struct {
		name        string
		label       string
		wantSubject string
		wantSide    models.Side
		wantLine    float64
		wantOK      bool
	}{
		{
			name:        "player prop over",
			label:       "Mohamed Salah Over 2.5",
			wantSubject: "Mohamed Salah",
			wantSide:    models.SideOver,
			wantLine:    2.5,
			wantOK:      true,
		},
		{
			name:        "bare under with line",
			label:       "Under 10.5",
			wantSubject: "",
			wantSide:    models.SideUnder,
			wantLine:    10.5,
			wantOK:      true,
		},
		{
			name:     "yes token",
			label:    "Yes",
			wantSide: models.SideYes,
			wantOK:   true,
		},
		{
			name:        "mixed casing",
			label:       "LeBron James OVER 23.5",
			wantSubject: "LeBron James",
			wantSide:    models.SideOver,
			wantLine:    23.5,
			wantOK:      true,
		},
		{
			name:   "no side token",
			label:  "Liverpool -1.5",
			wantOK: false,
		},
		{
			name:   "empty label",
			label:  "",
			wantOK: false,
		},
		{
			name:        "side token without trailing line",
			label:       "Corners Over",
			wantSubject: "Corners",
			wantSide:    models.SideOver,
			wantLine:    0,
			wantOK:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, side, line, ok := DecodeSelection(tt.label)
			assertEqual(t, tt.wantOK, ok, "ok")
			if !tt.wantOK {
				return
			}
			assertEqual(t, tt.wantSubject, subject, "subject")
			assertEqual(t, tt.wantSide, side, "side")
			assertEqual(t, tt.wantLine, line, "line")
		})
	}
}

func TestParseRecordsDiscards(t *testing.T) {
	records := []external.RawOddsRecord{
		{Market: "totals", SelectionLabel: "Over 2.5", Line: 2.5, Bookmaker: "pinnacle", Price: 1.0},
		{Market: "totals", SelectionLabel: "Over 2.5", Line: 2.5, Bookmaker: "pinnacle", Price: 0},
		{Market: "spreads", SelectionLabel: "Liverpool -1.5", Line: -1.5, Bookmaker: "pinnacle", Price: 1.9},
		{Market: "totals", SelectionLabel: "Under 2.5", Line: 2.5, Bookmaker: "pinnacle", Price: 1.95},
	}

	props := ParseRecords(records)
	assertEqual(t, 1, len(props), "surviving propositions")
	assertEqual(t, models.SideUnder, props[0].Side, "side")
	assertEqual(t, 1.95, props[0].Price, "price")
}

func TestParseRecordsSubjectFallback(t *testing.T) {
	tests := []struct {
		name        string
		record      external.RawOddsRecord
		wantSubject string
	}{
		{
			name:        "player from label",
			record:      external.RawOddsRecord{Market: "player_points", SelectionLabel: "Jayson Tatum Over 26.5", Bookmaker: "draftkings", Price: 1.87},
			wantSubject: "Jayson Tatum",
		},
		{
			name:        "team name field",
			record:      external.RawOddsRecord{Market: "team_totals", SelectionLabel: "Over 1.5", Line: 1.5, Bookmaker: "draftkings", Price: 1.8, TeamName: "Arsenal"},
			wantSubject: "Arsenal",
		},
		{
			name:        "whole match fallback",
			record:      external.RawOddsRecord{Market: "totals", SelectionLabel: "Over 2.5", Line: 2.5, Bookmaker: "draftkings", Price: 1.9},
			wantSubject: "match",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props := ParseRecords([]external.RawOddsRecord{tt.record})
			assertEqual(t, 1, len(props), "proposition count")
			assertEqual(t, tt.wantSubject, props[0].Subject, "subject")
		})
	}
}

func TestParseRecordsDedupKeepsLatest(t *testing.T) {
	records := []external.RawOddsRecord{
		{Market: "totals", SelectionLabel: "Over 2.5", Line: 2.5, Bookmaker: "pinnacle", Price: 1.90},
		{Market: "totals", SelectionLabel: "Over 2.5", Line: 2.5, Bookmaker: "pinnacle", Price: 1.95},
		{Market: "totals", SelectionLabel: "Under 2.5", Line: 2.5, Bookmaker: "pinnacle", Price: 2.00},
	}

	props := ParseRecords(records)
	assertEqual(t, 2, len(props), "deduped count")
	assertEqual(t, 1.95, props[0].Price, "latest over price kept")
	assertEqual(t, 2.00, props[1].Price, "under untouched")
}
