package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Side names which team of the fixture is expected to win.
type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

// Prediction is a single forecast for one match, as published in the feed.
type Prediction struct {
	Rank            int    `json:"rank"`
	Country         string `json:"country"`
	League          string `json:"league"`
	HomeTeam        string `json:"home_team"`
	AwayTeam        string `json:"away_team"`
	PredictedWinner string `json:"predicted_winner"`
	PredictedSide   Side   `json:"predicted_side"`
	WinProbability  int    `json:"win_probability"`
	WinnerForm      string `json:"winner_form"`
	OpponentForm    string `json:"opponent_form"`
	KickoffUTC      string `json:"kickoff_utc"`
	Verified        bool   `json:"verified"`
	SportyBetLeague string `json:"sportybet_league,omitempty"`
	MatchType       string `json:"match_type,omitempty"`
}

// UnmarshalJSON accepts fractional win probabilities such as 84.3 and rounds
// them to the nearest integer.
func (p *Prediction) UnmarshalJSON(data []byte) error {
	type plain Prediction
	aux := struct {
		*plain
		WinProbability json.Number `json:"win_probability"`
	}{plain: (*plain)(p)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.WinProbability == "" {
		p.WinProbability = 0
		return nil
	}

	prob, err := decimal.NewFromString(aux.WinProbability.String())
	if err != nil {
		return fmt.Errorf("win_probability %q: %w", aux.WinProbability, err)
	}
	p.WinProbability = int(prob.Round(0).IntPart())
	return nil
}

// Opponent returns the team the predicted winner faces.
func (p Prediction) Opponent() string {
	if p.PredictedSide == SideAway {
		return p.HomeTeam
	}
	return p.AwayTeam
}

// Feed is the rank-ordered prediction dataset plus generation metadata.
type Feed struct {
	GeneratedAt      string       `json:"generated_at"`
	Date             string       `json:"date"`
	TotalPredictions int          `json:"total_predictions"`
	Predictions      []Prediction `json:"predictions"`
}

// Timestamp layouts. Feeds keep generated_at as the text they were written
// with; these are only used to stamp new feeds and to display them.
const (
	TimestampLayout       = "2006-01-02T15:04:05.000Z07:00"
	MicroTimestampLayout  = "2006-01-02T15:04:05.000000-07:00"
	naiveTimestampLayout  = "2006-01-02T15:04:05.999999999"
	spacedTimestampLayout = "2006-01-02 15:04:05.999999999Z07:00"
)

// FormatTimestamp renders t in UTC with millisecond precision.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp reads an ISO-8601 generated_at value. Values without an
// offset are taken as UTC.
func ParseTimestamp(raw string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, naiveTimestampLayout, spacedTimestampLayout, time.DateOnly} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// EmptyFeed is served whenever the backing store cannot produce a feed.
func EmptyFeed(now time.Time) Feed {
	return Feed{
		GeneratedAt:      FormatTimestamp(now),
		Date:             "",
		TotalPredictions: 0,
		Predictions:      []Prediction{},
	}
}
