package footballdata

import "time"

// Team is the team reference embedded in most API payloads.
type Team struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	TLA       string `json:"tla"`
}

// StandingsResponse is the payload of /competitions/{code}/standings.
type StandingsResponse struct {
	Standings []StandingGroup `json:"standings"`
}

// StandingGroup is one table (TOTAL, HOME or AWAY).
type StandingGroup struct {
	Type  string     `json:"type"`
	Table []TableRow `json:"table"`
}

// TableRow is one team's line in a table.
type TableRow struct {
	Position       int  `json:"position"`
	Team           Team `json:"team"`
	PlayedGames    int  `json:"playedGames"`
	Won            int  `json:"won"`
	Draw           int  `json:"draw"`
	Lost           int  `json:"lost"`
	Points         int  `json:"points"`
	GoalsFor       int  `json:"goalsFor"`
	GoalsAgainst   int  `json:"goalsAgainst"`
	GoalDifference int  `json:"goalDifference"`
}

// ScorersResponse is the payload of /competitions/{code}/scorers.
type ScorersResponse struct {
	Scorers []Scorer `json:"scorers"`
}

// Scorer is a goalscorer entry; counters are nullable upstream.
type Scorer struct {
	Player        Player `json:"player"`
	Team          Team   `json:"team"`
	PlayedMatches *int   `json:"playedMatches"`
	Goals         *int   `json:"goals"`
	Assists       *int   `json:"assists"`
	Penalties     *int   `json:"penalties"`
}

// Player describes the scorer.
type Player struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	ShirtNumber *int   `json:"shirtNumber"`
}

// MatchesResponse is the payload of /competitions/{code}/matches.
type MatchesResponse struct {
	Matches []Match `json:"matches"`
}

// Match is a scheduled or played fixture.
type Match struct {
	ID       int       `json:"id"`
	UTCDate  time.Time `json:"utcDate"`
	Status   string    `json:"status"`
	Matchday int       `json:"matchday"`
	HomeTeam Team      `json:"homeTeam"`
	AwayTeam Team      `json:"awayTeam"`
}
