package external

// SubjectAverages is the stats feed's per-game rates for a team or player
// over a trailing window of games.
type SubjectAverages struct {
	Subject string             `json:"subject"`
	Games   int                `json:"games"`
	Metrics map[string]float64 `json:"metrics"`
}
