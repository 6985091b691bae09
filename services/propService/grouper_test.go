package propService

import (
	"testing"

	"valueScoutBot/models"
)

func testConfig() *models.SportConfig {
	return &models.SportConfig{
		Sport:          "soccer",
		PlayableBooks:  []string{"draftkings", "fanduel"},
		ReferenceBooks: []string{"pinnacle"},
		LineTolerance:  0.5,
	}
}

func TestGroupPropositionsPartition(t *testing.T) {
	props := []models.Proposition{
		{Subject: "match", Market: "totals", Line: 2.5, Side: models.SideOver, Bookmaker: "draftkings", Price: 2.10},
		{Subject: "match", Market: "totals", Line: 2.5, Side: models.SideOver, Bookmaker: "pinnacle", Price: 1.91},
		{Subject: "match", Market: "totals", Line: 2.5, Side: models.SideUnder, Bookmaker: "pinnacle", Price: 1.91},
		{Subject: "match", Market: "totals", Line: 2.5, Side: models.SideOver, Bookmaker: "bovada", Price: 2.50},
	}

	groups := GroupPropositions(props, testConfig())
	assertEqual(t, 1, len(groups), "group count")

	bucket := groups[0].Buckets[2.5]
	if bucket == nil {
		t.Fatal("expected bucket at 2.5")
	}
	assertEqual(t, 1, len(bucket.Playable), "playable count")
	assertEqual(t, 2, len(bucket.Reference), "reference count")
	assertEqual(t, "draftkings", bucket.Playable[0].Bookmaker, "unknown book dropped")
}

func TestGroupPropositionsLineBucketing(t *testing.T) {
	props := []models.Proposition{
		{Subject: "match", Market: "corners", Line: 9.4, Side: models.SideOver, Bookmaker: "draftkings", Price: 1.9},
		{Subject: "match", Market: "corners", Line: 9.6, Side: models.SideOver, Bookmaker: "fanduel", Price: 1.88},
		{Subject: "match", Market: "corners", Line: 10.5, Side: models.SideOver, Bookmaker: "draftkings", Price: 2.2},
	}

	groups := GroupPropositions(props, testConfig())
	group := groups[0]
	assertEqual(t, 2, len(group.Buckets), "bucket count")
	assertEqual(t, 2, len(group.Buckets[9.5].Playable), "9.4 and 9.6 share a bucket")
	assertEqual(t, 1, len(group.Buckets[10.5].Playable), "10.5 stands alone")
}

func TestGroupPropositionsSeparateSubjects(t *testing.T) {
	props := []models.Proposition{
		{Subject: "Jayson Tatum", Market: "player_points", Line: 26.5, Side: models.SideOver, Bookmaker: "draftkings", Price: 1.87},
		{Subject: "Jaylen Brown", Market: "player_points", Line: 22.5, Side: models.SideOver, Bookmaker: "draftkings", Price: 1.91},
	}

	groups := GroupPropositions(props, &models.SportConfig{
		PlayableBooks: []string{"draftkings"},
	})
	assertEqual(t, 2, len(groups), "one group per subject")
}
