package evalService

import (
	"math"
	"math/rand"
	"testing"

	"valueScoutBot/models"
)

func TestEVPercentScenario(t *testing.T) {
	ev := EVPercent(0.5, 2.10)
	if math.Abs(ev-5.0) > 1e-9 {
		t.Errorf("EV%%(0.5, 2.10) = %v, want 5.0", ev)
	}
}

func TestEVPercentMonotonicity(t *testing.T) {
	// Increasing price at fixed probability.
	prev := EVPercent(0.45, 1.10)
	for price := 1.20; price <= 5.0; price += 0.10 {
		ev := EVPercent(0.45, price)
		if ev <= prev {
			t.Fatalf("EV not increasing in price at %v: %v <= %v", price, ev, prev)
		}
		prev = ev
	}

	// Increasing probability at fixed price.
	prev = EVPercent(0.05, 2.0)
	for prob := 0.10; prob < 1.0; prob += 0.05 {
		ev := EVPercent(prob, 2.0)
		if ev <= prev {
			t.Fatalf("EV not increasing in probability at %v: %v <= %v", prob, ev, prev)
		}
		prev = ev
	}
}

// fixedEstimator returns the same probability for every slice, or nil.
type fixedEstimator struct {
	prob       float64
	sampleSize int
	skip       bool
}

func (f *fixedEstimator) Estimate(group *models.PropositionGroup, line float64, side models.Side) *models.FairProbability {
	if f.skip {
		return nil
	}
	return &models.FairProbability{
		Subject:     group.Subject,
		Market:      group.Market,
		Line:        line,
		Side:        side,
		Probability: f.prob,
		Method:      models.MethodDevig,
		SampleSize:  f.sampleSize,
	}
}

func evalConfig() *models.SportConfig {
	return &models.SportConfig{
		Sport:             "soccer",
		MinEVPercent:      3.0,
		MaxPrice:          6.0,
		MinReferenceBooks: 2,
	}
}

func groupWithPlayable(props ...models.Proposition) *models.PropositionGroup {
	group := &models.PropositionGroup{
		Subject: "match",
		Market:  "totals",
		Buckets: make(map[float64]*models.LineBucket),
	}
	for _, prop := range props {
		line := models.BucketLine(prop.Line)
		bucket, ok := group.Buckets[line]
		if !ok {
			bucket = &models.LineBucket{Line: line}
			group.Buckets[line] = bucket
		}
		bucket.Playable = append(bucket.Playable, prop)
	}
	return group
}

func TestEvaluateGroupSelectsBestPrice(t *testing.T) {
	group := groupWithPlayable(
		models.Proposition{Subject: "match", Market: "totals", Line: 2.5, Side: models.SideOver, Bookmaker: "draftkings", Price: 2.10},
		models.Proposition{Subject: "match", Market: "totals", Line: 2.5, Side: models.SideOver, Bookmaker: "fanduel", Price: 2.15},
		models.Proposition{Subject: "match", Market: "totals", Line: 2.5, Side: models.SideOver, Bookmaker: "betmgm", Price: 1.95},
	)

	opps := EvaluateGroup(group, &fixedEstimator{prob: 0.5, sampleSize: 3}, evalConfig())
	if len(opps) != 1 {
		t.Fatalf("expected 1 opportunity, got %d", len(opps))
	}

	opp := opps[0]
	if opp.Bookmaker != "fanduel" || opp.Price != 2.15 {
		t.Errorf("expected fanduel 2.15 as best price, got %s %v", opp.Bookmaker, opp.Price)
	}
	// betmgm at 1.95 is -2.5% EV and must not appear.
	if len(opp.AllBookmakers) != 2 {
		t.Fatalf("expected 2 qualifying books, got %d", len(opp.AllBookmakers))
	}
	if opp.AllBookmakers[0].EVPercent < opp.AllBookmakers[1].EVPercent {
		t.Error("qualifying books not sorted by EV descending")
	}
}

func TestEvaluateGroupGates(t *testing.T) {
	base := models.Proposition{Subject: "match", Market: "totals", Line: 2.5, Side: models.SideOver, Bookmaker: "draftkings", Price: 2.10}

	tests := []struct {
		name string
		est  *fixedEstimator
		prop models.Proposition
		want int
	}{
		{
			name: "passes all gates",
			est:  &fixedEstimator{prob: 0.5, sampleSize: 2},
			prop: base,
			want: 1,
		},
		{
			name: "no probability available",
			est:  &fixedEstimator{skip: true},
			prop: base,
			want: 0,
		},
		{
			name: "insufficient reference books",
			est:  &fixedEstimator{prob: 0.5, sampleSize: 1},
			prop: base,
			want: 0,
		},
		{
			name: "below EV threshold",
			est:  &fixedEstimator{prob: 0.5, sampleSize: 2},
			prop: models.Proposition{Subject: "match", Market: "totals", Line: 2.5, Side: models.SideOver, Bookmaker: "draftkings", Price: 2.02},
			want: 0,
		},
		{
			name: "price above cap",
			est:  &fixedEstimator{prob: 0.5, sampleSize: 2},
			prop: models.Proposition{Subject: "match", Market: "totals", Line: 2.5, Side: models.SideOver, Bookmaker: "draftkings", Price: 6.50},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opps := EvaluateGroup(groupWithPlayable(tt.prop), tt.est, evalConfig())
			if len(opps) != tt.want {
				t.Errorf("expected %d opportunities, got %d", tt.want, len(opps))
			}
		})
	}
}

func TestEvaluateGroupSidesIndependent(t *testing.T) {
	group := groupWithPlayable(
		models.Proposition{Subject: "match", Market: "totals", Line: 2.5, Side: models.SideOver, Bookmaker: "draftkings", Price: 2.20},
		models.Proposition{Subject: "match", Market: "totals", Line: 2.5, Side: models.SideUnder, Bookmaker: "fanduel", Price: 2.20},
	)

	opps := EvaluateGroup(group, &fixedEstimator{prob: 0.5, sampleSize: 2}, evalConfig())
	if len(opps) != 2 {
		t.Fatalf("both sides at +10%% EV should qualify, got %d opportunities", len(opps))
	}
	if opps[0].Side == opps[1].Side {
		t.Error("expected one opportunity per side")
	}
}

// Randomized inputs spanning the gate boundaries: an opportunity must never
// materialize with EV below threshold, price above cap, or sample size under
// the minimum.
func TestEvaluateGroupNeverViolatesGates(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	cfg := evalConfig()

	for trial := 0; trial < 1000; trial++ {
		prob := 0.05 + 0.9*rng.Float64()
		price := 1.0 + 6.0*rng.Float64()
		sampleSize := rng.Intn(4)

		group := groupWithPlayable(models.Proposition{
			Subject: "match", Market: "totals", Line: 2.5,
			Side: models.SideOver, Bookmaker: "draftkings", Price: price,
		})
		opps := EvaluateGroup(group, &fixedEstimator{prob: prob, sampleSize: sampleSize}, cfg)

		for _, opp := range opps {
			if opp.EVPercent < cfg.MinEVPercent {
				t.Fatalf("trial %d: emitted EV %v below threshold %v", trial, opp.EVPercent, cfg.MinEVPercent)
			}
			if opp.Price <= 1.0 || opp.Price > cfg.MaxPrice {
				t.Fatalf("trial %d: emitted price %v outside (1.0, %v]", trial, opp.Price, cfg.MaxPrice)
			}
			if opp.SampleSize < cfg.MinReferenceBooks {
				t.Fatalf("trial %d: emitted sample size %d below minimum %d", trial, opp.SampleSize, cfg.MinReferenceBooks)
			}
		}
	}
}
