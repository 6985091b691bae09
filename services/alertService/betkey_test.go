package alertService

import (
	"testing"

	"valueScoutBot/models"
)

func TestBetKeyDeterminism(t *testing.T) {
	a := BetKey("fx1", "Mohamed Salah", "player_shots", 2.5, models.SideOver, "draftkings")
	b := BetKey("fx1", "Mohamed Salah", "player_shots", 2.5, models.SideOver, "draftkings")
	if a != b {
		t.Errorf("identical inputs produced different keys: %q vs %q", a, b)
	}
}

func TestBetKeyNormalization(t *testing.T) {
	tests := []struct {
		name      string
		subject   string
		bookmaker string
	}{
		{"casing", "MOHAMED SALAH", "DraftKings"},
		{"whitespace", "  Mohamed   Salah ", "draftkings "},
		{"mixed", "mohamed salah", "Draftkings"},
	}

	canonical := BetKey("fx1", "Mohamed Salah", "player_shots", 2.5, models.SideOver, "draftkings")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BetKey("fx1", tt.subject, "player_shots", 2.5, models.SideOver, tt.bookmaker)
			if got != canonical {
				t.Errorf("near-duplicate inputs produced %q, want %q", got, canonical)
			}
		})
	}
}

func TestBetKeyDistinguishes(t *testing.T) {
	base := BetKey("fx1", "match", "totals", 2.5, models.SideOver, "draftkings")
	variants := []string{
		BetKey("fx2", "match", "totals", 2.5, models.SideOver, "draftkings"),
		BetKey("fx1", "match", "corners", 2.5, models.SideOver, "draftkings"),
		BetKey("fx1", "match", "totals", 3.5, models.SideOver, "draftkings"),
		BetKey("fx1", "match", "totals", 2.5, models.SideUnder, "draftkings"),
		BetKey("fx1", "match", "totals", 2.5, models.SideOver, "fanduel"),
	}
	for idx, variant := range variants {
		if variant == base {
			t.Errorf("variant %d collided with base key %q", idx, base)
		}
	}
}
