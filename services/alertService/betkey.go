package alertService

import (
	"strconv"
	"strings"

	"valueScoutBot/models"
)

// BetKey builds the deterministic key for one proposition instance. String
// parts are lowercased and whitespace-collapsed so near-duplicate selection
// labels land on the same key.
func BetKey(fixtureID, subject, market string, line float64, side models.Side, bookmaker string) string {
	parts := []string{
		normalizeKeyPart(fixtureID),
		normalizeKeyPart(subject),
		normalizeKeyPart(market),
		strconv.FormatFloat(line, 'f', 2, 64),
		normalizeKeyPart(string(side)),
		normalizeKeyPart(bookmaker),
	}
	return strings.Join(parts, "|")
}

// OpportunityKey is BetKey applied to an opportunity's primary price.
func OpportunityKey(opp *models.Opportunity) string {
	return BetKey(opp.FixtureID, opp.Subject, opp.Market, opp.Line, opp.Side, opp.Bookmaker)
}

func normalizeKeyPart(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
