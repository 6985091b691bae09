package common

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"valueScoutBot/models"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"
)

// LogError prints the error and records it in the error_logs table.
func LogError(db *gorm.DB, scope string, err error) {
	log.Printf("[%s] %v", scope, err)

	if db == nil {
		return
	}
	errLog := models.ErrorLog{
		Scope:   scope,
		Message: fmt.Sprintf("%v", err),
	}
	db.Create(&errLog)
}

// SendError responds to an interaction with an ephemeral error message and
// records the error.
func SendError(s *discordgo.Session, i *discordgo.InteractionCreate, err error, db *gorm.DB) {
	fmt.Println(err)

	scope := ""
	if i != nil {
		scope = i.GuildID
		localErr := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: fmt.Sprintf("An error occured: %v", err),
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		})
		if localErr != nil {
			log.Printf("Error sending interaction: %v", localErr)
		}
	}
	errLog := models.ErrorLog{
		Scope:   scope,
		Message: fmt.Sprintf("%v", err),
	}
	db.Create(&errLog)
}

// FormatEV renders an EV percentage with a leading sign, e.g. "+5.2%".
func FormatEV(ev float64) string {
	if ev >= 0 {
		return fmt.Sprintf("+%.1f%%", ev)
	}
	return fmt.Sprintf("%.1f%%", ev)
}

// FormatPrice renders a decimal price, trimming a trailing zero ("1.91", "2.5").
func FormatPrice(price float64) string {
	out := fmt.Sprintf("%.2f", price)
	if strings.HasSuffix(out, "0") {
		out = out[:len(out)-1]
	}
	return out
}

// FormatLine renders a line, dropping the decimal when whole ("2.5", "3").
func FormatLine(line float64) string {
	if line == float64(int(line)) {
		return fmt.Sprintf("%d", int(line))
	}
	return fmt.Sprintf("%.1f", line)
}

// OddsAPIWrapper performs a GET against the odds feed, appending the API key
// as a query parameter.
func OddsAPIWrapper(requestUrl string) (*http.Response, error) {
	apiKey := os.Getenv("ODDS_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("ODDS_API_KEY not set in environment variables")
	}

	sep := "?"
	if strings.Contains(requestUrl, "?") {
		sep = "&"
	}

	client := &http.Client{}
	req, err := http.NewRequest("GET", fmt.Sprintf("%s%sapiKey=%s", requestUrl, sep, apiKey), nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != 200 {
		resp.Body.Close()
		return nil, fmt.Errorf("odds feed returned status %d", resp.StatusCode)
	}
	return resp, nil
}

// StatsAPIWrapper performs a GET against the historical stats feed.
func StatsAPIWrapper(requestUrl string) (*http.Response, error) {
	statsKey := os.Getenv("STATS_API_KEY")
	if statsKey == "" {
		return nil, fmt.Errorf("STATS_API_KEY not set in environment variables")
	}

	client := &http.Client{}
	req, err := http.NewRequest("GET", requestUrl, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Add("X-Api-Key", fmt.Sprintf("%s", statsKey))
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != 200 {
		resp.Body.Close()
		return nil, fmt.Errorf("stats feed returned status %d", resp.StatusCode)
	}
	return resp, nil
}

func Contains[T comparable](s []T, e T) bool {
	for _, v := range s {
		if v == e {
			return true
		}
	}
	return false
}
