package propService

import (
	"valueScoutBot/models"
)

// GroupPropositions buckets propositions by (subject, market) and by line
// rounded to the nearest 0.5, splitting each bucket into playable and
// reference prices per the sport's bookmaker partition. A bookmaker in
// neither set is dropped so it can never price a bet against itself.
func GroupPropositions(props []models.Proposition, cfg *models.SportConfig) []*models.PropositionGroup {
	type groupKey struct {
		subject string
		market  string
	}

	byKey := make(map[groupKey]*models.PropositionGroup)
	var order []groupKey

	for _, prop := range props {
		playable := cfg.IsPlayable(prop.Bookmaker)
		reference := cfg.IsReference(prop.Bookmaker)
		if !playable && !reference {
			continue
		}

		key := groupKey{subject: prop.Subject, market: prop.Market}
		group, exists := byKey[key]
		if !exists {
			group = &models.PropositionGroup{
				Subject: prop.Subject,
				Market:  prop.Market,
				Buckets: make(map[float64]*models.LineBucket),
			}
			byKey[key] = group
			order = append(order, key)
		}

		bucketLine := models.BucketLine(prop.Line)
		bucket, exists := group.Buckets[bucketLine]
		if !exists {
			bucket = &models.LineBucket{Line: bucketLine}
			group.Buckets[bucketLine] = bucket
		}

		if playable {
			bucket.Playable = append(bucket.Playable, prop)
		} else {
			bucket.Reference = append(bucket.Reference, prop)
		}
	}

	groups := make([]*models.PropositionGroup, 0, len(order))
	for _, key := range order {
		groups = append(groups, byKey[key])
	}
	return groups
}
