package propService

import (
	"strconv"
	"strings"

	"valueScoutBot/models"
	"valueScoutBot/models/external"
)

// ParseRecords normalizes flat feed records into typed propositions.
// Records with no recognizable side token or a price at or below 1.0 are
// dropped. Duplicates on (subject, market, line, side, bookmaker) collapse
// into one proposition, keeping the most recently seen price.
func ParseRecords(records []external.RawOddsRecord) []models.Proposition {
	type propKey struct {
		subject   string
		market    string
		line      float64
		side      models.Side
		bookmaker string
	}

	byKey := make(map[propKey]models.Proposition)
	var order []propKey

	for _, rec := range records {
		if rec.Price <= 1.0 {
			continue
		}

		subject, side, line, ok := DecodeSelection(rec.SelectionLabel)
		if !ok {
			continue
		}
		if line == 0 && rec.Line != 0 {
			line = rec.Line
		}
		if subject == "" {
			subject = strings.TrimSpace(rec.TeamName)
		}
		if subject == "" {
			subject = "match"
		}

		key := propKey{
			subject:   subject,
			market:    rec.Market,
			line:      line,
			side:      side,
			bookmaker: rec.Bookmaker,
		}
		if _, exists := byKey[key]; !exists {
			order = append(order, key)
		}
		byKey[key] = models.Proposition{
			Subject:   subject,
			Market:    rec.Market,
			Line:      line,
			Side:      side,
			Bookmaker: rec.Bookmaker,
			Price:     rec.Price,
		}
	}

	props := make([]models.Proposition, 0, len(order))
	for _, key := range order {
		props = append(props, byKey[key])
	}
	return props
}

// DecodeSelection splits a feed selection label into subject, side, and line.
// "Mohamed Salah Over 2.5" -> ("Mohamed Salah", over, 2.5, true).
// "Under 10.5" -> ("", under, 10.5, true). A label with no side token is
// rejected.
func DecodeSelection(label string) (subject string, side models.Side, line float64, ok bool) {
	tokens := strings.Fields(label)
	if len(tokens) == 0 {
		return "", "", 0, false
	}

	sideIdx := -1
	for idx, tok := range tokens {
		switch strings.ToLower(tok) {
		case "over":
			side = models.SideOver
		case "under":
			side = models.SideUnder
		case "yes":
			side = models.SideYes
		case "no":
			side = models.SideNo
		default:
			continue
		}
		sideIdx = idx
		break
	}
	if sideIdx < 0 {
		return "", "", 0, false
	}

	subject = strings.TrimSpace(strings.Join(tokens[:sideIdx], " "))
	if sideIdx+1 < len(tokens) {
		if parsed, err := strconv.ParseFloat(tokens[sideIdx+1], 64); err == nil {
			line = parsed
		}
	}
	return subject, side, line, true
}
